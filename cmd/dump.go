package cmd

import (
	"github.com/spf13/cobra"
)

// NewDumpCmd ...
func NewDumpCmd() *cobra.Command {
	var molecDir string

	dumpCmd := cobra.Command{
		Use:   "dump <species>",
		Short: "Print every level, line and collisional rate of a molecule.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := newCatalog(molecDir)
			if err != nil {
				return err
			}
			mol, err := catalog.Get(args[0])
			if err != nil {
				return err
			}
			return mol.Dump(cmd.OutOrStdout())
		},
	}

	addMolecDirFlag(&dumpCmd, &molecDir)
	return &dumpCmd
}

func init() {
	rootCmd.AddCommand(NewDumpCmd())
}
