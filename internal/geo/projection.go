// Package geo maps named city locations onto the map's SVG coordinate
// space. The projection coefficients are fitted to one specific map and are
// not a general geographic projection.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// Project converts latitude/longitude in degrees to SVG coordinates. The
// x axis is affine in longitude with a latitude-dependent slope; the y axis
// is Mercator in latitude.
func Project(lat, lng float64) orb.Point {
	x := (22.07-0.1896*lat)*lng + 68.51 + 1.931*lat
	latRad := lat * math.Pi / 180
	mercY := math.Log(math.Tan(math.Pi/4 + latRad/2))
	y := -687.3*mercY + 1132.5
	return orb.Point{x, y}
}

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// Locator resolves location names to SVG coordinates. Overrides take
// precedence over projected city coordinates.
type Locator struct {
	cities    map[string]LatLng
	overrides map[string]orb.Point
}

// NewLocator builds a Locator from a city table and an override table.
// Either may be nil.
func NewLocator(cities map[string]LatLng, overrides map[string]orb.Point) *Locator {
	l := &Locator{
		cities:    make(map[string]LatLng, len(cities)),
		overrides: make(map[string]orb.Point, len(overrides)),
	}
	for k, v := range cities {
		l.cities[k] = v
	}
	for k, v := range overrides {
		l.overrides[k] = v
	}
	return l
}

// DefaultLocator returns a Locator over the built-in city and override
// tables.
func DefaultLocator() *Locator {
	return NewLocator(cityLatLng, cityOverrides)
}

// Locate returns the SVG position for a named location. Names are matched
// exactly; unknown names report false.
func (l *Locator) Locate(name string) (orb.Point, bool) {
	if p, ok := l.overrides[name]; ok {
		return p, true
	}
	ll, ok := l.cities[name]
	if !ok {
		return orb.Point{}, false
	}
	return Project(ll.Lat, ll.Lng), true
}

// Known reports whether name resolves to a position.
func (l *Locator) Known(name string) bool {
	_, ok := l.Locate(name)
	return ok
}
