// Package viewport computes zoom viewports for map regions and animates the
// map's viewBox between them.
package viewport

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Rect is an SVG viewBox: origin plus width and height in map units.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Default is the full-map viewBox.
var Default = Rect{X: 0, Y: 0, W: 700, H: 700}

// ZoomParams controls how a region's bounds are inflated into a viewport.
type ZoomParams struct {
	Padding float64 // added on every side
	MinSize float64 // minimum width and height after padding
	Aspect  float64 // target width/height
}

// DefaultZoom is the configuration used by the map.
var DefaultZoom = ZoomParams{Padding: 40, MinSize: 120, Aspect: 1}

// ComputeZoom turns a region's tight bounding box into the viewport to zoom
// to. The box is padded, each edge is raised to the minimum size around its
// centre, and the shorter side is then grown symmetrically until the target
// aspect ratio holds. The result never crops the padded box.
func ComputeZoom(b orb.Bound, p ZoomParams) Rect {
	if p.Aspect <= 0 {
		p.Aspect = 1
	}

	x := b.Min.X() - p.Padding
	y := b.Min.Y() - p.Padding
	w := (b.Max.X() - b.Min.X()) + p.Padding*2
	h := (b.Max.Y() - b.Min.Y()) + p.Padding*2

	if w < p.MinSize {
		x -= (p.MinSize - w) / 2
		w = p.MinSize
	}
	if h < p.MinSize {
		y -= (p.MinSize - h) / 2
		h = p.MinSize
	}

	if w/h > p.Aspect {
		newH := w / p.Aspect
		y -= (newH - h) / 2
		h = newH
	} else {
		newW := h * p.Aspect
		x -= (newW - w) / 2
		w = newW
	}

	return Rect{X: x, Y: y, W: w, H: h}
}

// Lerp interpolates each component independently by t.
func Lerp(from, to Rect, t float64) Rect {
	return Rect{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
		W: from.W + (to.W-from.W)*t,
		H: from.H + (to.H-from.H)*t,
	}
}

// Rounded returns r with every component rounded to one decimal place, the
// precision at which viewBoxes are applied.
func (r Rect) Rounded() Rect {
	return Rect{X: round1(r.X), Y: round1(r.Y), W: round1(r.W), H: round1(r.H)}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// String formats r as a viewBox attribute value with one decimal place.
func (r Rect) String() string {
	parts := []string{
		strconv.FormatFloat(r.X, 'f', 1, 64),
		strconv.FormatFloat(r.Y, 'f', 1, 64),
		strconv.FormatFloat(r.W, 'f', 1, 64),
		strconv.FormatFloat(r.H, 'f', 1, 64),
	}
	return strings.Join(parts, " ")
}

// ParseRect parses a viewBox attribute ("x y w h", space or comma separated).
func ParseRect(s string) (Rect, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' })
	if len(fields) != 4 {
		return Rect{}, fmt.Errorf("viewBox %q: want 4 numbers, got %d", s, len(fields))
	}
	var vals [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Rect{}, fmt.Errorf("viewBox %q: %w", s, err)
		}
		vals[i] = v
	}
	return Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

// EaseInOutCubic is the symmetric cubic easing curve used for zooms.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
