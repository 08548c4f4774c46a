package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/euromap/internal/assets"
	"github.com/ziadkadry99/euromap/internal/export"
	"github.com/ziadkadry99/euromap/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the region factsheets as a static site",
	Long:  `Renders one HTML page per region, a regions.json index, the grouped map and the asset files into the output directory.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "site", "output directory")
	exportCmd.Flags().Bool("no-assets", false, "skip copying the assets directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	c, err := buildCore(context.Background(), cfg, logger)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	noAssets, _ := cmd.Flags().GetBool("no-assets")

	e := &export.Exporter{
		OutputDir: output,
		Title:     cfg.Title,
		Regions:   c.regions,
		Stats:     c.stats,
		Sheets:    c.sheets,
		Map:       c.svg,
		Reporter:  progress.NewReporter(os.Stderr),
	}
	if !noAssets {
		e.Assets = &assets.Config{RootDir: cfg.AssetsDir, Include: cfg.AssetInclude}
	}

	n, err := e.Export()
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Exported %d region pages to %s in %s\n", n, output, time.Since(start).Round(time.Millisecond))
	return nil
}
