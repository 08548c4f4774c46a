package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/euromap/internal/assets"
	"github.com/ziadkadry99/euromap/internal/config"
	"github.com/ziadkadry99/euromap/internal/server"
	"github.com/ziadkadry99/euromap/internal/session"
	"github.com/ziadkadry99/euromap/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive map",
	Long:  `Starts the HTTP server hosting the map page, the grouped SVG, the region API and the WebSocket endpoint that drives each map session.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().String("stats", "", "statistics document path or URL (overrides config)")
	serveCmd.Flags().String("map", "", "country SVG map (overrides config)")
	serveCmd.Flags().String("assets-include", "", "comma-separated glob patterns of served assets (overrides config)")
	serveCmd.Flags().Bool("dev", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyServeFlags(cmd, cfg)

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := buildCore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	deps := session.Deps{
		Regions:   c.regions,
		Sheets:    c.sheets,
		Bounds:    c.svg,
		Zoom:      cfg.ZoomParams(),
		ZoomIn:    cfg.ZoomInDuration(),
		ZoomOut:   cfg.ZoomOutDuration(),
		FrameRate: cfg.FrameRate,
		Logger:    logger,
	}
	if c.overlay != nil {
		deps.Dots = c.overlay
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
	}, logger)

	web.New(web.Deps{
		Regions: c.regions,
		Stats:   c.stats,
		Map:     c.svg,
		Sheets:  c.sheets,
		Dots:    c.overlay,
		Locator: c.locator,
		Assets: assets.Config{
			RootDir: cfg.AssetsDir,
			Include: cfg.AssetInclude,
		},
		Sessions: session.NewHandler(deps),
		Title:    cfg.Title,
		Logger:   logger,
	}).RegisterRoutes(srv.Router())

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}()

	fmt.Fprintf(os.Stderr, "euromap %s starting on port %d\n", Version, cfg.Port)
	fmt.Fprintf(os.Stderr, "  Statistics: %s (%d regions)\n", cfg.StatsSource, len(c.stats.Regions()))
	fmt.Fprintf(os.Stderr, "  Assets: %s\n", cfg.AssetsDir)
	fmt.Fprintf(os.Stderr, "  Club dots: %t\n", cfg.DotsEnabled)

	return srv.Start()
}

func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}
	if src, _ := cmd.Flags().GetString("stats"); src != "" {
		cfg.StatsSource = src
	}
	if m, _ := cmd.Flags().GetString("map"); m != "" {
		cfg.MapSVG = m
	}
	if inc, _ := cmd.Flags().GetString("assets-include"); inc != "" {
		cfg.AssetInclude = config.SplitList(inc)
	}
	if dev, _ := cmd.Flags().GetBool("dev"); dev {
		cfg.AllowAllOrigins = true
	}
}
