package viewport

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func bound(x0, y0, x1, y1 float64) orb.Bound {
	return orb.Bound{Min: orb.Point{x0, y0}, Max: orb.Point{x1, y1}}
}

func TestComputeZoomSquareAndMinimum(t *testing.T) {
	tests := []struct {
		name string
		b    orb.Bound
	}{
		{"degenerate", bound(100, 100, 100, 100)},
		{"origin point", bound(0, 0, 0, 0)},
		{"wide", bound(10, 200, 410, 260)},
		{"tall", bound(300, 10, 330, 500)},
		{"square", bound(50, 50, 250, 250)},
		{"tiny", bound(5, 5, 7, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputeZoom(tt.b, DefaultZoom)
			if math.Abs(r.W-r.H) > 1e-9 {
				t.Errorf("not square: %+v", r)
			}
			if r.W < DefaultZoom.MinSize || r.H < DefaultZoom.MinSize {
				t.Errorf("below minimum: %+v", r)
			}
			// Never crops the padded bounds.
			if r.X > tt.b.Min.X()-DefaultZoom.Padding+1e-9 || r.Y > tt.b.Min.Y()-DefaultZoom.Padding+1e-9 {
				t.Errorf("origin crops padded box: %+v", r)
			}
			if r.X+r.W < tt.b.Max.X()+DefaultZoom.Padding-1e-9 || r.Y+r.H < tt.b.Max.Y()+DefaultZoom.Padding-1e-9 {
				t.Errorf("extent crops padded box: %+v", r)
			}
		})
	}
}

func TestComputeZoomDegenerateCentred(t *testing.T) {
	r := ComputeZoom(bound(100, 100, 100, 100), DefaultZoom)
	want := Rect{X: 40, Y: 40, W: 120, H: 120}
	if r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}
}

func TestComputeZoomWideGrowsHeight(t *testing.T) {
	// padded: x=-30 y=160 w=480 h=140 -> h grows to 480, centred.
	r := ComputeZoom(bound(10, 200, 410, 260), DefaultZoom)
	want := Rect{X: -30, Y: 160 - 170, W: 480, H: 480}
	if r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}
}

func TestComputeZoomAspect(t *testing.T) {
	p := ZoomParams{Padding: 0, MinSize: 0, Aspect: 2}
	r := ComputeZoom(bound(0, 0, 100, 100), p)
	if r.W/r.H != 2 {
		t.Errorf("aspect = %v, want 2 (%+v)", r.W/r.H, r)
	}
	if r.H != 100 {
		t.Errorf("height should be kept, got %+v", r)
	}
}

func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{0.25, 0.0625},
		{0.5, 0.5},
		{0.75, 0.9375},
		{1, 1},
	}
	for _, tt := range tests {
		if got := EaseInOutCubic(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("EaseInOutCubic(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
	// Symmetry: f(t) + f(1-t) == 1.
	for _, x := range []float64{0.1, 0.2, 0.33, 0.45} {
		if s := EaseInOutCubic(x) + EaseInOutCubic(1-x); math.Abs(s-1) > 1e-12 {
			t.Errorf("f(%v)+f(1-%v) = %v", x, x, s)
		}
	}
}

func TestRectStringAndParse(t *testing.T) {
	r := Rect{X: 12.345, Y: -3, W: 120, H: 99.96}
	if got := r.String(); got != "12.3 -3.0 120.0 100.0" {
		t.Errorf("String() = %q", got)
	}

	parsed, err := ParseRect("0 0 700 700")
	if err != nil {
		t.Fatalf("ParseRect: %v", err)
	}
	if parsed != Default {
		t.Errorf("parsed %+v, want %+v", parsed, Default)
	}

	if _, err := ParseRect("1 2 3"); err == nil {
		t.Error("expected error for 3 fields")
	}
	if _, err := ParseRect("1 2 x 4"); err == nil {
		t.Error("expected error for non-number")
	}
}

func TestRounded(t *testing.T) {
	r := Rect{X: 1.04, Y: 1.05, W: -2.36, H: 7}.Rounded()
	want := Rect{X: 1.0, Y: 1.1, W: -2.4, H: 7}
	if math.Abs(r.X-want.X) > 1e-9 || math.Abs(r.Y-want.Y) > 1e-9 || math.Abs(r.W-want.W) > 1e-9 || r.H != want.H {
		t.Errorf("Rounded = %+v, want %+v", r, want)
	}
}
