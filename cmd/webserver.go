package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hfhsieh/sparx-alpha/pkg/common/runtime"
	"github.com/hfhsieh/sparx-alpha/pkg/envs"
	"github.com/hfhsieh/sparx-alpha/pkg/logging"
	"github.com/hfhsieh/sparx-alpha/pkg/router"
)

// NewWebServerCmd ...
func NewWebServerCmd() *cobra.Command {
	var molecDir string

	webServerCmd := cobra.Command{
		Use:   "webserver",
		Short: "webserver start molecular data query server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.InitLogger()
			logger := logging.GetSystemLogger()

			catalog, err := newCatalog(molecDir)
			if err != nil {
				return err
			}
			logger.Infof("found %d species in %s", catalog.Registry().Size(), molecDir)

			if len(envs.PreloadSpecies) != 0 {
				if err = catalog.Preload(context.Background(), envs.PreloadSpecies); err != nil {
					return err
				}
				logger.Infof("preloaded species: %v", catalog.Loaded())
			}

			if runtime.IsDebug() {
				color.Yellow("running in debug mode, do not use it in production")
			}
			color.Green("Starting server at http://0.0.0.0:%s/", envs.ServerPort)
			router.Run(catalog)
			return nil
		},
	}

	addMolecDirFlag(&webServerCmd, &molecDir)
	return &webServerCmd
}

func init() {
	rootCmd.AddCommand(NewWebServerCmd())
}
