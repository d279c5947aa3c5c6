package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hfhsieh/sparx-alpha/pkg/envs"
	"github.com/hfhsieh/sparx-alpha/pkg/registry"
	"github.com/hfhsieh/sparx-alpha/pkg/storage"
)

var rootCmd = &cobra.Command{
	Use:   "sparx",
	Short: "sparx reads LAMDA molecular data files and answers molecular physics queries.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "welcome to use sparx, use `sparx -h` for help")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red(err.Error())
		os.Exit(1)
	}
}

// 为需要读取分子数据的命令添加 --molec-dir 参数
func addMolecDirFlag(cmd *cobra.Command, dir *string) {
	cmd.Flags().StringVar(dir, "molec-dir", envs.MolecDataDir, "directory of molecular data files (*.dat)")
}

// 扫描数据目录，构建分子缓存
func newCatalog(dir string) (*storage.Catalog, error) {
	reg, err := registry.New(dir)
	if err != nil {
		return nil, err
	}
	return storage.NewCatalog(reg), nil
}
