package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/euromap/internal/assets"
	"github.com/ziadkadry99/euromap/internal/factsheet"
	"github.com/ziadkadry99/euromap/internal/regions"
	"github.com/ziadkadry99/euromap/internal/stats"
	"github.com/ziadkadry99/euromap/internal/svgmap"
)

type countingReporter struct {
	total, updates int
	finished       bool
}

func (r *countingReporter) Start(total int)    { r.total = total }
func (r *countingReporter) Update(int, string) { r.updates++ }
func (r *countingReporter) Finish()            { r.finished = true }

func newExporter(t *testing.T, out string) (*Exporter, *countingReporter) {
	t.Helper()
	reg := regions.Default()
	store := stats.NewStore(nil)
	doc := `{"iberia": {"kpis": {"clubs": 1500}, "events": [{"date": "2026-03-01", "title": "Iberian Cup"}]}}`
	if err := store.LoadBytes([]byte(doc)); err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	rep := &countingReporter{}
	return &Exporter{
		OutputDir: out,
		Title:     "Gaelic Games Europe",
		Regions:   reg,
		Stats:     store,
		Sheets:    factsheet.NewRenderer(reg, store),
		Reporter:  rep,
	}, rep
}

func TestExportWritesOnePagePerRegion(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")
	e, rep := newExporter(t, out)

	n, err := e.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	ids := e.Regions.IDs()
	if n != len(ids) {
		t.Errorf("pages = %d, want %d", n, len(ids))
	}
	for _, id := range ids {
		if _, err := os.Stat(filepath.Join(out, id+".html")); err != nil {
			t.Errorf("missing page for %s: %v", id, err)
		}
	}
	if rep.total != len(ids) || rep.updates != len(ids) || !rep.finished {
		t.Errorf("reporter = %+v", rep)
	}

	page, err := os.ReadFile(filepath.Join(out, "iberia.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Iberia | Gaelic Games Europe", "1,500", "Iberian Cup", `href="nordics.html"`} {
		if !strings.Contains(string(page), want) {
			t.Errorf("iberia.html missing %q", want)
		}
	}

	if _, err := os.Stat(filepath.Join(out, "index.html")); err != nil {
		t.Errorf("missing index.html: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "map.svg")); !os.IsNotExist(err) {
		t.Error("map.svg should only be written when a map is set")
	}
}

func TestExportRegionIndex(t *testing.T) {
	out := t.TempDir()
	e, _ := newExporter(t, out)
	if _, err := e.Export(); err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "regions.json"))
	if err != nil {
		t.Fatal(err)
	}
	var entries []struct {
		ID       string `json:"id"`
		HasStats bool   `json:"hasStats"`
		Events   int    `json:"events"`
		File     string `json:"file"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("regions.json: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("entries = %d, want 5", len(entries))
	}
	for _, en := range entries {
		if en.File != en.ID+".html" {
			t.Errorf("file = %q for %s", en.File, en.ID)
		}
		if en.ID == "iberia" && (!en.HasStats || en.Events != 1) {
			t.Errorf("iberia entry = %+v", en)
		}
		if en.ID == "france" && en.HasStats {
			t.Error("france has no stats in the document")
		}
	}
}

func TestExportMapAndAssets(t *testing.T) {
	out := t.TempDir()
	e, _ := newExporter(t, out)

	m, err := svgmap.Default(e.Regions)
	if err != nil {
		t.Fatalf("Default map: %v", err)
	}
	e.Map = m

	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "iberia-crest.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	e.Assets = &assets.Config{RootDir: src}

	if _, err := e.Export(); err != nil {
		t.Fatalf("Export: %v", err)
	}
	svg, err := os.ReadFile(filepath.Join(out, "map.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), `data-region="iberia"`) {
		t.Error("exported map is not grouped by region")
	}
	if _, err := os.Stat(filepath.Join(out, "assets", "iberia-crest.png")); err != nil {
		t.Errorf("asset not copied: %v", err)
	}
}

func TestExportSkipsMissingAssetsDir(t *testing.T) {
	out := t.TempDir()
	e, _ := newExporter(t, out)
	e.Assets = &assets.Config{RootDir: filepath.Join(out, "does-not-exist")}
	if _, err := e.Export(); err != nil {
		t.Fatalf("Export: %v", err)
	}
}
