package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectFirst returns the first file in the current directory matching one
// of the patterns, or fallback.
func detectFirst(fallback string, patterns ...string) string {
	for _, p := range patterns {
		matches, _ := filepath.Glob(p)
		if len(matches) > 0 {
			return matches[0]
		}
	}
	return fallback
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to euromap! Let's configure your map.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Statistics document.
	statsPrompt := promptui.Prompt{
		Label:   "Statistics document (path or http(s) URL)",
		Default: detectFirst(cfg.StatsSource, "stats.json", "*.stats.json", "src/stats*.json"),
	}
	statsSource, err := statsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("stats source: %w", err)
	}
	cfg.StatsSource = strings.TrimSpace(statsSource)

	// 2. Map SVG.
	mapPrompt := promptui.Prompt{
		Label:   "Map SVG (leave blank for the built-in map)",
		Default: detectFirst("", "europe.svg", "assets/*.svg"),
	}
	mapSVG, err := mapPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("map svg: %w", err)
	}
	cfg.MapSVG = strings.TrimSpace(mapSVG)

	// 3. Assets directory.
	assetsPrompt := promptui.Prompt{
		Label:   "Assets directory (crests and logos)",
		Default: cfg.AssetsDir,
	}
	assetsDir, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}
	cfg.AssetsDir = strings.TrimSpace(assetsDir)

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("port must be a number between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 5. Club dots.
	dotsPrompt := promptui.Select{
		Label: "Show club location dots",
		Items: []string{"yes", "no"},
	}
	dotsIdx, _, err := dotsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("dots selection: %w", err)
	}
	cfg.DotsEnabled = dotsIdx == 0

	// 6. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"text — human readable",
			"json — for log shippers",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Log.Format = []LogFormat{LogText, LogJSON}[formatIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// SplitList splits a comma-separated string and trims whitespace, dropping
// empty entries.
func SplitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
