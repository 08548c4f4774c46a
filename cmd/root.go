package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/euromap/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "euromap",
	Short: "Interactive region map of Europe with live factsheets",
	Long: `Euromap serves an interactive map of Europe grouped into association
regions. Hovering or clicking a region highlights it, zooms the map and
shows a factsheet built from a statistics document, with club locations
plotted as dots.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
