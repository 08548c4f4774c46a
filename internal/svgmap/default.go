package svgmap

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/ziadkadry99/euromap/internal/regions"
)

//go:embed europe.svg
var defaultSVG []byte

// Default parses the built-in schematic map.
func Default(registry *regions.Registry) (*Map, error) {
	return Parse(bytes.NewReader(defaultSVG), registry)
}

// Load parses the SVG at path, or the built-in map when path is empty.
func Load(path string, registry *regions.Registry) (*Map, error) {
	if path == "" {
		return Default(registry)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map: %w", err)
	}
	defer f.Close()
	m, err := Parse(f, registry)
	if err != nil {
		return nil, fmt.Errorf("parsing map %s: %w", path, err)
	}
	return m, nil
}
