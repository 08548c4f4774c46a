// Package regions holds the fixed region table used by the map and the
// reverse index from ISO-2 country code to region id.
package regions

import (
	"fmt"
	"sort"
	"strings"
)

// Region is one geographic grouping of countries. Regions are defined once
// at startup and never mutated.
type Region struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Color     string   `json:"color"`
	ColorAlt  string   `json:"colorAlt"`
	Crest     string   `json:"crest"`
	Countries []string `json:"countries"`
}

// LegendEntry is the swatch + label shown for a region in the map legend.
type LegendEntry struct {
	RegionID string `json:"region"`
	Name     string `json:"name"`
	Color    string `json:"color"`
}

// Registry is the read-only region table plus its derived country index.
type Registry struct {
	order     []string
	regions   map[string]*Region
	byCountry map[string]string
}

// New builds a Registry from the given definitions. Definition order is
// preserved for legend and grouping output. A region without countries, a
// duplicate region id, or a country claimed by two regions is an error.
func New(defs []Region) (*Registry, error) {
	r := &Registry{
		regions:   make(map[string]*Region, len(defs)),
		byCountry: make(map[string]string),
	}
	for i := range defs {
		def := defs[i]
		if def.ID == "" {
			return nil, fmt.Errorf("region %d has no id", i)
		}
		if _, dup := r.regions[def.ID]; dup {
			return nil, fmt.Errorf("duplicate region id %q", def.ID)
		}
		if len(def.Countries) == 0 {
			return nil, fmt.Errorf("region %q has no countries", def.ID)
		}
		countries := make([]string, len(def.Countries))
		for j, code := range def.Countries {
			code = strings.ToUpper(strings.TrimSpace(code))
			if owner, taken := r.byCountry[code]; taken {
				return nil, fmt.Errorf("country %s assigned to both %q and %q", code, owner, def.ID)
			}
			r.byCountry[code] = def.ID
			countries[j] = code
		}
		def.Countries = countries
		r.regions[def.ID] = &def
		r.order = append(r.order, def.ID)
	}
	return r, nil
}

// Default returns the registry built from the built-in region table.
func Default() *Registry {
	r, err := New(defaultRegions)
	if err != nil {
		panic(fmt.Sprintf("regions: invalid built-in table: %v", err))
	}
	return r
}

// Get returns the region with the given id.
func (r *Registry) Get(id string) (*Region, bool) {
	reg, ok := r.regions[id]
	return reg, ok
}

// Has reports whether id names a known region.
func (r *Registry) Has(id string) bool {
	_, ok := r.regions[id]
	return ok
}

// RegionFor returns the region id owning the given ISO-2 country code.
func (r *Registry) RegionFor(code string) (string, bool) {
	id, ok := r.byCountry[strings.ToUpper(strings.TrimSpace(code))]
	return id, ok
}

// IDs returns region ids in definition order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns the regions in definition order.
func (r *Registry) All() []*Region {
	out := make([]*Region, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.regions[id])
	}
	return out
}

// Countries returns every assigned country code, sorted.
func (r *Registry) Countries() []string {
	out := make([]string, 0, len(r.byCountry))
	for code := range r.byCountry {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Legend returns one legend entry per region in definition order.
func (r *Registry) Legend() []LegendEntry {
	out := make([]LegendEntry, 0, len(r.order))
	for _, reg := range r.All() {
		out = append(out, LegendEntry{RegionID: reg.ID, Name: reg.Name, Color: reg.Color})
	}
	return out
}

// CountryNames maps the region's member codes to display names, keeping the
// raw code where no name is known.
func (reg *Region) CountryNames() []string {
	names := make([]string, 0, len(reg.Countries))
	for _, code := range reg.Countries {
		names = append(names, CountryName(code))
	}
	return names
}
