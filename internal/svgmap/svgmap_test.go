package svgmap

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/ziadkadry99/euromap/internal/regions"
)

const testSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" class="europe-map" viewBox="0 0 700 700">
  <g id="countries">
    <path data-iso2="FR" id="fr-main" d="M100 100 L200 100 L200 220 Z"/>
    <path data-iso2="FR" d="m300,300 l10,10 z"><title>Corsica</title></path>
    <path data-iso2="ES" d="M 50 300 H 150 V 380 H 50 Z"/>
    <path data-iso2="GB" class="land" d="M80 20 L120 60 Z"/>
    <path d="M0 0 L1 1"/>
  </g>
</svg>`

func parseTest(t *testing.T) *Map {
	t.Helper()
	m, err := Parse(strings.NewReader(testSVG), regions.Default())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

func TestParseIndexesCountries(t *testing.T) {
	m := parseTest(t)
	got := m.Countries()
	want := []string{"ES", "FR", "GB"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Countries = %v, want %v", got, want)
	}
	if m.ViewBox() != "0 0 700 700" {
		t.Errorf("ViewBox = %q", m.ViewBox())
	}
	if u := m.Unassigned(); len(u) != 1 || u[0] != "GB" {
		t.Errorf("Unassigned = %v", u)
	}
}

func TestCountryBoundsUnion(t *testing.T) {
	m := parseTest(t)
	b, ok := m.CountryBounds("FR")
	if !ok {
		t.Fatal("FR bounds missing")
	}
	want := orb.Bound{Min: orb.Point{100, 100}, Max: orb.Point{310, 310}}
	if b != want {
		t.Errorf("FR bounds = %v, want %v", b, want)
	}
}

func TestRegionBounds(t *testing.T) {
	m := parseTest(t)
	b, ok := m.RegionBounds("iberia")
	if !ok {
		t.Fatal("iberia bounds missing")
	}
	want := orb.Bound{Min: orb.Point{50, 300}, Max: orb.Point{150, 380}}
	if b != want {
		t.Errorf("iberia = %v, want %v", b, want)
	}
	if _, ok := m.RegionBounds("nordics"); ok {
		t.Error("nordics has no shapes in the test map")
	}
	if _, ok := m.RegionBounds("atlantis"); ok {
		t.Error("unknown region should have no bounds")
	}
}

func TestWriteGrouped(t *testing.T) {
	m := parseTest(t)
	var buf bytes.Buffer
	if err := m.WriteGrouped(&buf); err != nil {
		t.Fatalf("WriteGrouped: %v", err)
	}
	out := buf.String()

	if n := strings.Count(out, `class="region-group"`); n != 5 {
		t.Errorf("region groups = %d, want 5", n)
	}
	if !strings.Contains(out, `data-region="france" tabindex="0" role="button"`) {
		t.Error("missing france group attributes")
	}
	if !strings.Contains(out, `id="country-FR"`) || strings.Contains(out, `id="fr-main"`) {
		t.Error("FR paths should be re-identified as country-FR")
	}
	if !strings.Contains(out, `<title>Corsica</title></path>`) {
		t.Error("path children should be preserved")
	}
	if !strings.Contains(out, `class="land country-no-region"`) {
		t.Error("unassigned country should gain country-no-region")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</g></svg>") {
		t.Errorf("groups should be appended before </svg>: %q", out[len(out)-40:])
	}

	// The grouped output is still a parseable map with the same shapes.
	again, err := Parse(strings.NewReader(out), regions.Default())
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	b1, _ := m.RegionBounds("france")
	b2, _ := again.RegionBounds("france")
	if b1 != b2 {
		t.Errorf("bounds changed after grouping: %v vs %v", b1, b2)
	}
}

func TestPathBounds(t *testing.T) {
	tests := []struct {
		d    string
		want orb.Bound
	}{
		{"M10 10 L20 30", orb.Bound{Min: orb.Point{10, 10}, Max: orb.Point{20, 30}}},
		{"m10,10 5,5 5-20", orb.Bound{Min: orb.Point{10, -5}, Max: orb.Point{20, 15}}},
		// The curve peaks at ±5/√3, well inside its control points.
		{"M0 0 C 10 -10 20 10 30 0", orb.Bound{Min: orb.Point{0, -5 / math.Sqrt(3)}, Max: orb.Point{30, 5 / math.Sqrt(3)}}},
		{"M0 0 C0 -10 10 -10 10 0 S20 10 20 0", orb.Bound{Min: orb.Point{0, -7.5}, Max: orb.Point{20, 7.5}}},
		{"M0 0 c0 -10 10 -10 10 0", orb.Bound{Min: orb.Point{0, -7.5}, Max: orb.Point{10, 0}}},
		{"M0 0 h10 v10 h-10 z m5 5 l1 1", orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}},
		{"M1.5.5 2e1 3", orb.Bound{Min: orb.Point{1.5, 0.5}, Max: orb.Point{20, 3}}},
		// Half circle swept through the top of the circle.
		{"M0 0 A5 5 0 0110 0", orb.Bound{Min: orb.Point{0, -5}, Max: orb.Point{10, 0}}},
		{"M0 0 A5 5 0 0010 0", orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 5}}},
		// Radii too small are scaled up to reach the endpoint.
		{"M0 0 a1 1 0 0 1 10 0", orb.Bound{Min: orb.Point{0, -5}, Max: orb.Point{10, 0}}},
		{"M0 0 A0 5 0 0 1 10 0", orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 0}}},
		{"M0 0 Q5 -5 10 0 T20 0", orb.Bound{Min: orb.Point{0, -2.5}, Max: orb.Point{20, 2.5}}},
		{"M0 0 L10 0 T20 0", orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{20, 0}}},
	}
	for _, tt := range tests {
		b, ok, err := pathBounds(tt.d)
		if err != nil || !ok {
			t.Errorf("pathBounds(%q) err=%v ok=%v", tt.d, err, ok)
			continue
		}
		if !boundsEqual(b, tt.want) {
			t.Errorf("pathBounds(%q) = %v, want %v", tt.d, b, tt.want)
		}
	}
}

func TestPathBoundsErrors(t *testing.T) {
	for _, d := range []string{"10 10", "M10", "M0 0 X5 5", "M0 0 A5 5 0 2 0 1 1"} {
		if _, _, err := pathBounds(d); err == nil {
			t.Errorf("pathBounds(%q) should fail", d)
		}
	}
	if _, ok, err := pathBounds(""); ok || err != nil {
		t.Errorf("empty path: ok=%v err=%v", ok, err)
	}
}

func boundsEqual(a, b orb.Bound) bool {
	const eps = 1e-9
	return math.Abs(a.Min[0]-b.Min[0]) < eps && math.Abs(a.Min[1]-b.Min[1]) < eps &&
		math.Abs(a.Max[0]-b.Max[0]) < eps && math.Abs(a.Max[1]-b.Max[1]) < eps
}

func TestDefaultMapCoversRegistry(t *testing.T) {
	reg := regions.Default()
	m, err := Default(reg)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for _, code := range reg.Countries() {
		if _, ok := m.CountryBounds(code); !ok {
			t.Errorf("built-in map has no shape for %s", code)
		}
	}
	for _, id := range reg.IDs() {
		if _, ok := m.RegionBounds(id); !ok {
			t.Errorf("region %s has no bounds", id)
		}
	}
	if got := m.Unassigned(); len(got) != 2 {
		t.Errorf("unassigned = %v, want GB and IE", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/map.svg", regions.Default()); err == nil {
		t.Error("expected error for missing file")
	}
}
