package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestProjectFormula(t *testing.T) {
	tests := []struct {
		lat, lng float64
	}{
		{48.86, 2.35},
		{0, 0},
		{59.33, 18.07},
		{38.72, -9.14},
	}
	for _, tt := range tests {
		p := Project(tt.lat, tt.lng)
		wantX := (22.07-0.1896*tt.lat)*tt.lng + 68.51 + 1.931*tt.lat
		wantY := -687.3*math.Log(math.Tan(math.Pi/4+tt.lat*math.Pi/360)) + 1132.5
		if math.Abs(p.X()-wantX) > 1e-9 || math.Abs(p.Y()-wantY) > 1e-9 {
			t.Errorf("Project(%v, %v) = %v, want (%v, %v)", tt.lat, tt.lng, p, wantX, wantY)
		}
	}
}

func TestProjectEquator(t *testing.T) {
	p := Project(0, 0)
	if math.Abs(p.X()-68.51) > 1e-9 {
		t.Errorf("x = %v, want 68.51", p.X())
	}
	if math.Abs(p.Y()-1132.5) > 1e-9 {
		t.Errorf("y = %v, want 1132.5", p.Y())
	}
}

func TestLocateOverrideWins(t *testing.T) {
	l := DefaultLocator()
	p, ok := l.Locate("Reykjavik")
	if !ok {
		t.Fatal("Reykjavik not found")
	}
	if p != (orb.Point{45, 110}) {
		t.Errorf("Reykjavik = %v, want override (45, 110)", p)
	}
}

func TestLocateProjectsCity(t *testing.T) {
	l := DefaultLocator()
	p, ok := l.Locate("Paris")
	if !ok {
		t.Fatal("Paris not found")
	}
	if p != Project(48.86, 2.35) {
		t.Errorf("Paris = %v, want %v", p, Project(48.86, 2.35))
	}
}

func TestLocateUnknown(t *testing.T) {
	l := DefaultLocator()
	if _, ok := l.Locate("Atlantis"); ok {
		t.Error("unknown city should not resolve")
	}
	if l.Known("paris") {
		t.Error("lookup is case-sensitive")
	}
}

func TestCustomOverrides(t *testing.T) {
	l := NewLocator(
		map[string]LatLng{"A": {10, 10}, "B": {20, 20}},
		map[string]orb.Point{"B": {1, 2}, "C": {3, 4}},
	)
	if p, _ := l.Locate("B"); p != (orb.Point{1, 2}) {
		t.Errorf("B = %v", p)
	}
	if p, ok := l.Locate("C"); !ok || p != (orb.Point{3, 4}) {
		t.Errorf("C = %v, %v", p, ok)
	}
	if p, _ := l.Locate("A"); p != Project(10, 10) {
		t.Errorf("A = %v", p)
	}
}
