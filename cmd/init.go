package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/euromap/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize euromap configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the map and writes the config file (.euromap.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
