package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ziadkadry99/euromap/internal/config"
	"github.com/ziadkadry99/euromap/internal/dots"
	"github.com/ziadkadry99/euromap/internal/factsheet"
	"github.com/ziadkadry99/euromap/internal/geo"
	"github.com/ziadkadry99/euromap/internal/logging"
	"github.com/ziadkadry99/euromap/internal/regions"
	"github.com/ziadkadry99/euromap/internal/stats"
	"github.com/ziadkadry99/euromap/internal/svgmap"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `euromap init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs always go to stderr so stdout
// stays usable for MCP and command output.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logging.New(os.Stderr, logging.Config{
		Level:  level,
		Format: string(cfg.Log.Format),
	})
}

// core is the read-only state shared by every command.
type core struct {
	regions *regions.Registry
	stats   *stats.Store
	sheets  *factsheet.Renderer
	locator *geo.Locator
	overlay *dots.Overlay // nil when dots are disabled
	svg     *svgmap.Map
}

// buildCore loads the statistics document and the map geometry. A failed
// stats load is logged and the map runs with empty statistics.
func buildCore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*core, error) {
	c := &core{
		regions: regions.Default(),
		stats:   stats.NewStore(logger),
		locator: geo.DefaultLocator(),
	}

	if err := c.stats.Load(ctx, cfg.StatsSource); err != nil {
		logger.Warn("could not load statistics; factsheets will show defaults",
			"source", cfg.StatsSource, "error", err)
	} else {
		logger.Info("statistics loaded", "source", cfg.StatsSource, "regions", len(c.stats.Regions()))
	}

	svg, err := svgmap.Load(cfg.MapSVG, c.regions)
	if err != nil {
		return nil, fmt.Errorf("loading map: %w", err)
	}
	c.svg = svg
	if missing := svg.Unassigned(); len(missing) > 0 {
		logger.Debug("map countries outside any region", "countries", missing)
	}

	c.sheets = factsheet.NewRenderer(c.regions, c.stats,
		factsheet.WithFooter(cfg.Footer),
		factsheet.WithEmptyLogo(cfg.EmptyLogo),
	)
	if cfg.DotsEnabled {
		c.overlay = dots.NewOverlay(c.stats, c.locator, dots.WithLogger(logger))
	}
	return c, nil
}
