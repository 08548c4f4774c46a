package config

import (
	"time"

	"github.com/ziadkadry99/euromap/internal/viewport"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".euromap.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		StatsSource:  "stats.json",
		AssetsDir:    "assets",
		AssetInclude: []string{"**/*.png", "**/*.svg", "**/*.jpg", "**/*.webp"},
		Port:         8080,
		DotsEnabled:  true,
		Zoom: ZoomConfig{
			Padding:   viewport.DefaultZoom.Padding,
			MinSize:   viewport.DefaultZoom.MinSize,
			Aspect:    viewport.DefaultZoom.Aspect,
			ZoomInMS:  int(viewport.ZoomInDuration / time.Millisecond),
			ZoomOutMS: int(viewport.ZoomOutDuration / time.Millisecond),
		},
		FrameRate: 60,
		Title:     "Gaelic Games Europe",
		Footer:    "Source: GGE internal databases (2026)",
		EmptyLogo: "assets/gge-crest.png",
		Log: LogConfig{
			Level:  "info",
			Format: LogText,
		},
	}
}

// ZoomParams converts the zoom section to viewport parameters.
func (c *Config) ZoomParams() viewport.ZoomParams {
	return viewport.ZoomParams{
		Padding: c.Zoom.Padding,
		MinSize: c.Zoom.MinSize,
		Aspect:  c.Zoom.Aspect,
	}
}

// ZoomInDuration is the lock animation length.
func (c *Config) ZoomInDuration() time.Duration {
	return time.Duration(c.Zoom.ZoomInMS) * time.Millisecond
}

// ZoomOutDuration is the reset animation length.
func (c *Config) ZoomOutDuration() time.Duration {
	return time.Duration(c.Zoom.ZoomOutMS) * time.Millisecond
}
