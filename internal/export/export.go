// Package export writes the region factsheets as a static site.
package export

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/euromap/internal/assets"
	"github.com/ziadkadry99/euromap/internal/factsheet"
	"github.com/ziadkadry99/euromap/internal/progress"
	"github.com/ziadkadry99/euromap/internal/regions"
	"github.com/ziadkadry99/euromap/internal/stats"
	"github.com/ziadkadry99/euromap/internal/svgmap"
)

// Exporter renders one HTML page per region plus a JSON index.
type Exporter struct {
	OutputDir string
	Title     string
	Regions   *regions.Registry
	Stats     *stats.Store
	Sheets    *factsheet.Renderer
	Map       *svgmap.Map    // optional; written as map.svg
	Assets    *assets.Config // optional; copied under assets/
	Reporter  progress.Reporter
}

// indexEntry is one row of regions.json.
type indexEntry struct {
	*regions.Region
	CountryNames []string `json:"countryNames"`
	HasStats     bool     `json:"hasStats"`
	Events       int      `json:"events"`
	File         string   `json:"file"`
}

// pageData holds the data passed to the page template.
type pageData struct {
	Title     string
	Region    string
	Color     string
	Factsheet template.HTML
	Regions   []indexEntry
	HasMap    bool
}

// Export writes the site and returns the number of region pages written.
func (e *Exporter) Export() (int, error) {
	rep := e.Reporter
	if rep == nil {
		rep = progress.Nop{}
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	all := e.Regions.All()
	index := make([]indexEntry, 0, len(all))
	for _, r := range all {
		index = append(index, indexEntry{
			Region:       r,
			CountryNames: r.CountryNames(),
			HasStats:     e.Stats.Has(r.ID),
			Events:       len(e.Stats.Get(r.ID).Events),
			File:         r.ID + ".html",
		})
	}

	rep.Start(len(all))
	for i, r := range all {
		rep.Update(i+1, r.Name)
		if err := e.writeRegion(r, index); err != nil {
			return i, fmt.Errorf("rendering %s: %w", r.ID, err)
		}
	}
	rep.Finish()

	if err := writeJSON(filepath.Join(e.OutputDir, "regions.json"), index); err != nil {
		return len(all), fmt.Errorf("writing region index: %w", err)
	}
	if err := e.writeIndex(index); err != nil {
		return len(all), fmt.Errorf("writing index page: %w", err)
	}

	if e.Map != nil {
		f, err := os.Create(filepath.Join(e.OutputDir, "map.svg"))
		if err != nil {
			return len(all), fmt.Errorf("writing map: %w", err)
		}
		werr := e.Map.WriteGrouped(f)
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			return len(all), fmt.Errorf("writing map: %w", werr)
		}
	}

	if e.Assets != nil {
		if _, err := os.Stat(e.Assets.RootDir); err == nil {
			if _, err := assets.Copy(*e.Assets, filepath.Join(e.OutputDir, "assets")); err != nil {
				return len(all), fmt.Errorf("copying assets: %w", err)
			}
		}
	}

	return len(all), nil
}

func (e *Exporter) writeRegion(r *regions.Region, index []indexEntry) error {
	sheet, ok := e.Sheets.Render(r.ID, "")
	if !ok {
		return fmt.Errorf("unknown region %q", r.ID)
	}
	body, err := factsheet.HTML(sheet)
	if err != nil {
		return err
	}
	return e.writePage(r.ID+".html", pageData{
		Title:     e.Title,
		Region:    r.Name,
		Color:     r.Color,
		Factsheet: template.HTML(body),
		Regions:   index,
		HasMap:    e.Map != nil,
	})
}

func (e *Exporter) writeIndex(index []indexEntry) error {
	body, err := factsheet.HTML(e.Sheets.RenderEmpty())
	if err != nil {
		return err
	}
	return e.writePage("index.html", pageData{
		Title:     e.Title,
		Factsheet: template.HTML(body),
		Regions:   index,
		HasMap:    e.Map != nil,
	})
}

func (e *Exporter) writePage(name string, data pageData) error {
	f, err := os.Create(filepath.Join(e.OutputDir, name))
	if err != nil {
		return err
	}
	if err := pageTmpl.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
