package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hfhsieh/sparx-alpha/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "version show sparx version info.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
