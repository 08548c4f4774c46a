package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const sampleDoc = `{
  "france": {
    "kpis": {"clubs": 12, "tournaments": 3, "players": null, "label": "n/a"},
    "notes": ["Largest region by clubs"],
    "byCountry": [
      {"country": "France", "flag": "🇫🇷", "clubCount": 2,
       "clubs": ["Paris Gaels", {"name": "Rennes", "location": "Rennes"}]}
    ],
    "events": [
      {"date": "2026-09-12", "title": "Euro Games", "location": "Paris", "host": "Paris Gaels", "sports": ["Football"], "isMajor": true}
    ],
    "spotlight": {"title": "Paris", "description": "Champions"},
    "spotlights": [{"title": "Brest", "description": "Runners-up"}]
  },
  "nordics": {"events": [{"date": "2026-05-01", "title": "Nordic Cup"}]},
  "iberia": {"notes": 42}
}`

func TestGetDefaultsMissingRegion(t *testing.T) {
	s := NewStore(nil)
	b := s.Get("benelux")
	assertComplete(t, b)
	if len(b.KPIs) != 0 || len(b.Notes) != 0 {
		t.Errorf("expected empty blob, got %+v", b)
	}
}

func TestLoadBytes(t *testing.T) {
	s := NewStore(nil)
	if err := s.LoadBytes([]byte(sampleDoc)); err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}

	fr := s.Get("france")
	assertComplete(t, fr)
	if v, ok := fr.KPIs.Lookup("clubs"); !ok || v != 12 {
		t.Errorf("clubs = %v, %v", v, ok)
	}
	if _, ok := fr.KPIs.Lookup("players"); ok {
		t.Error("null KPI should be absent")
	}
	if _, ok := fr.KPIs.Lookup("label"); ok {
		t.Error("non-numeric KPI should be absent")
	}

	clubs := fr.ByCountry[0].Clubs
	if clubs[0].Name != "Paris Gaels" || clubs[0].Location != "" {
		t.Errorf("string club decoded as %+v", clubs[0])
	}
	if clubs[1].Location != "Rennes" {
		t.Errorf("object club decoded as %+v", clubs[1])
	}

	spots := fr.AllSpotlights()
	if len(spots) != 2 || spots[0].Title != "Paris" || spots[1].Title != "Brest" {
		t.Errorf("spotlights = %+v", spots)
	}

	// Partial blob gets defaults for everything it omits.
	nordics := s.Get("nordics")
	assertComplete(t, nordics)
	if nordics.Events[0].Sports == nil {
		t.Error("event sports should default to empty")
	}

	// Malformed blob is skipped, lookups fall back to defaults.
	if s.Has("iberia") {
		t.Error("malformed iberia blob should be skipped")
	}
	assertComplete(t, s.Get("iberia"))

	if got := s.TotalEvents(); got != 2 {
		t.Errorf("TotalEvents = %d, want 2", got)
	}
	if ids := s.Regions(); len(ids) != 2 || ids[0] != "france" || ids[1] != "nordics" {
		t.Errorf("Regions = %v", ids)
	}
}

func TestLoadFailureLeavesStoreEmpty(t *testing.T) {
	s := NewStore(nil)
	if err := s.LoadBytes([]byte(sampleDoc)); err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}

	err := s.Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(s.Regions()) != 0 || s.TotalEvents() != 0 {
		t.Error("store should be empty after failed load")
	}
	assertComplete(t, s.Get("france"))
}

func TestLoadParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(nil)
	if err := s.Load(context.Background(), path); err == nil {
		t.Fatal("expected parse error")
	}
	if len(s.Regions()) != 0 {
		t.Error("store should be empty")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(nil)
	if err := s.Load(context.Background(), path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Has("france") {
		t.Error("france missing after load")
	}
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	s := NewStore(nil)
	if err := s.Load(context.Background(), srv.URL+"/stats.json"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Has("nordics") {
		t.Error("nordics missing after HTTP load")
	}

	if err := s.Load(context.Background(), srv.URL+"/nope.json"); err == nil {
		t.Error("expected error for 404")
	}
	if s.Has("nordics") {
		t.Error("store should be empty after failed HTTP load")
	}
}

func assertComplete(t *testing.T, b *Blob) {
	t.Helper()
	if b == nil {
		t.Fatal("nil blob")
	}
	if b.KPIs == nil || b.Notes == nil || b.ByCountry == nil || b.Events == nil {
		t.Errorf("blob has nil top-level field: %+v", b)
	}
}
