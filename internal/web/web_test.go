package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/euromap/internal/assets"
	"github.com/ziadkadry99/euromap/internal/dots"
	"github.com/ziadkadry99/euromap/internal/factsheet"
	"github.com/ziadkadry99/euromap/internal/geo"
	"github.com/ziadkadry99/euromap/internal/regions"
	"github.com/ziadkadry99/euromap/internal/stats"
	"github.com/ziadkadry99/euromap/internal/svgmap"
)

const statsDoc = `{
  "france": {
    "kpis": {"clubs": 1200, "tournaments": 3},
    "byCountry": [{"country": "France", "clubCount": 2, "clubs": [
      {"name": "Paris Gaels", "location": "Paris"},
      {"name": "Paris Celts", "location": "paris"}
    ]}],
    "events": [{"date": "2026-09-12", "title": "Autumn Cup", "location": "Lyon", "host": "Lyon GAA", "sports": ["Football"]}]
  }
}`

func setupRouter(t *testing.T, withDots bool) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := regions.Default()
	store := stats.NewStore(logger)
	if err := store.LoadBytes([]byte(statsDoc)); err != nil {
		t.Fatalf("loading stats: %v", err)
	}
	m, err := svgmap.Default(reg)
	if err != nil {
		t.Fatalf("loading map: %v", err)
	}

	assetDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(assetDir, "gge-crest.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	deps := Deps{
		Regions: reg,
		Stats:   store,
		Map:     m,
		Sheets:  factsheet.NewRenderer(reg, store),
		Locator: geo.DefaultLocator(),
		Assets:  assets.Config{RootDir: assetDir},
		Logger:  logger,
	}
	if withDots {
		deps.Dots = dots.NewOverlay(store, deps.Locator, dots.WithLogger(logger))
	}

	r := chi.NewRouter()
	New(deps).RegisterRoutes(r)
	return r
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServeIndex(t *testing.T) {
	w := get(t, setupRouter(t, true), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("expected text/html content type, got %q", ct)
	}
	body := w.Body.String()
	for _, want := range []string{
		`class="legend-item" data-region="benelux"`,
		`class="legend-item" data-region="nordics"`,
		"1 events across Europe",
		`data-dot-color="#F5C518"`,
		"new WebSocket",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
}

func TestMapSVG(t *testing.T) {
	w := get(t, setupRouter(t, true), "/map.svg")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	body := w.Body.String()
	if n := strings.Count(body, `class="region-group"`); n != 5 {
		t.Errorf("region groups = %d, want 5", n)
	}
	if !strings.Contains(body, `id="country-FR"`) || !strings.Contains(body, "country-no-region") {
		t.Error("grouped svg missing ids or unassigned class")
	}
}

func TestRegionsEndpoint(t *testing.T) {
	w := get(t, setupRouter(t, true), "/api/regions")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var list []struct {
		ID       string `json:"id"`
		HasStats bool   `json:"hasStats"`
		Events   int    `json:"events"`
	}
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("expected 5 regions, got %d", len(list))
	}
	for _, r := range list {
		if (r.ID == "france") != r.HasStats {
			t.Errorf("%s hasStats = %v", r.ID, r.HasStats)
		}
		if r.ID == "france" && r.Events != 1 {
			t.Errorf("france events = %d", r.Events)
		}
	}
}

func TestRegionEndpoint(t *testing.T) {
	r := setupRouter(t, true)
	w := get(t, r, "/api/regions/iberia")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var detail struct {
		Region regions.Region `json:"region"`
		Stats  stats.Blob     `json:"stats"`
	}
	if err := json.NewDecoder(w.Body).Decode(&detail); err != nil {
		t.Fatal(err)
	}
	if detail.Region.Name != "Iberia" || detail.Stats.Notes == nil || detail.Stats.Events == nil {
		t.Errorf("detail = %+v", detail)
	}

	if w := get(t, r, "/api/regions/atlantis"); w.Code != http.StatusNotFound {
		t.Errorf("unknown region = %d, want 404", w.Code)
	}
}

func TestFactsheetEndpoint(t *testing.T) {
	r := setupRouter(t, true)
	w := get(t, r, "/api/factsheet/france")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "1,200") || strings.Contains(body, "lock-badge") {
		t.Errorf("unexpected factsheet: %s", body)
	}

	w = get(t, r, "/api/factsheet/france?locked=1")
	if !strings.Contains(w.Body.String(), "Pinned") {
		t.Error("locked factsheet should be pinned")
	}

	if w := get(t, r, "/api/factsheet/atlantis"); w.Code != http.StatusNotFound {
		t.Errorf("unknown region = %d, want 404", w.Code)
	}
}

func TestDotsEndpoint(t *testing.T) {
	w := get(t, setupRouter(t, true), "/api/dots/france")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var d []dots.Dot
	if err := json.NewDecoder(w.Body).Decode(&d); err != nil {
		t.Fatal(err)
	}
	if len(d) != 1 || d[0].Name != "Paris Gaels" {
		t.Errorf("dots = %+v", d)
	}

	w = get(t, setupRouter(t, true), "/api/dots/benelux")
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("empty region dots = %s", w.Body.String())
	}

	if w := get(t, setupRouter(t, false), "/api/dots/france"); w.Code != http.StatusNotFound {
		t.Errorf("disabled overlay = %d, want 404", w.Code)
	}
}

func TestLocateEndpoint(t *testing.T) {
	r := setupRouter(t, true)
	w := get(t, r, "/api/locate?city=Reykjavik")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var loc locateResponse
	if err := json.NewDecoder(w.Body).Decode(&loc); err != nil {
		t.Fatal(err)
	}
	if loc.X != 45 || loc.Y != 110 {
		t.Errorf("Reykjavik = %+v", loc)
	}

	if w := get(t, r, "/api/locate?city=Atlantis"); w.Code != http.StatusNotFound {
		t.Errorf("unknown city = %d", w.Code)
	}
	if w := get(t, r, "/api/locate"); w.Code != http.StatusBadRequest {
		t.Errorf("missing city = %d", w.Code)
	}
}

func TestAssets(t *testing.T) {
	r := setupRouter(t, true)
	if w := get(t, r, "/assets/gge-crest.png"); w.Code != http.StatusOK {
		t.Errorf("asset = %d, want 200", w.Code)
	}
	if w := get(t, r, "/assets/secret.txt"); w.Code != http.StatusNotFound {
		t.Errorf("filtered asset = %d, want 404", w.Code)
	}
}
