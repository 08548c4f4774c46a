// Package dots derives the club-location markers drawn over a region.
package dots

import (
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ziadkadry99/euromap/internal/geo"
	"github.com/ziadkadry99/euromap/internal/stats"
)

// Color is the fill used for club dots.
const Color = "#F5C518"

// DefaultStagger is the entrance delay added per dot.
const DefaultStagger = 60 * time.Millisecond

// Dot is one plotted club location.
type Dot struct {
	Name     string        `json:"name"`
	Location string        `json:"location"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	Delay    time.Duration `json:"delay"`
}

// StatsSource looks up a region's statistics.
type StatsSource interface {
	Get(regionID string) *stats.Blob
}

// Overlay computes dots for a region.
type Overlay struct {
	stats   StatsSource
	locator *geo.Locator
	rng     *rand.Rand
	stagger time.Duration
	logger  *slog.Logger
}

// Option configures an Overlay.
type Option func(*Overlay)

// WithRand sets the random source used to order dots. Tests pass a seeded
// source for a stable order.
func WithRand(r *rand.Rand) Option { return func(o *Overlay) { o.rng = r } }

// WithStagger sets the per-dot entrance delay.
func WithStagger(d time.Duration) Option { return func(o *Overlay) { o.stagger = d } }

// WithLogger sets the logger used for unknown-location warnings.
func WithLogger(l *slog.Logger) Option { return func(o *Overlay) { o.logger = l } }

// NewOverlay returns an Overlay reading from src and projecting with loc.
func NewOverlay(src StatsSource, loc *geo.Locator, opts ...Option) *Overlay {
	o := &Overlay{
		stats:   src,
		locator: loc,
		stagger: DefaultStagger,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Compute returns the dots for regionID. Clubs without a location are
// skipped; clubs sharing a location (compared case-insensitively) collapse
// to the first one listed. The survivors are shuffled and each gets a delay
// of stagger times its shuffled position; locations without known
// coordinates are then dropped, leaving gaps in the delays.
func (o *Overlay) Compute(regionID string) []Dot {
	blob := o.stats.Get(regionID)

	seen := make(map[string]bool)
	var candidates []Dot
	for _, country := range blob.ByCountry {
		for _, club := range country.Clubs {
			loc := club.Location
			if loc == "" {
				continue
			}
			key := strings.ToLower(loc)
			if seen[key] {
				continue
			}
			seen[key] = true
			candidates = append(candidates, Dot{Name: club.Name, Location: loc})
		}
	}

	shuffle := rand.Shuffle
	if o.rng != nil {
		shuffle = o.rng.Shuffle
	}
	shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	out := make([]Dot, 0, len(candidates))
	for i, c := range candidates {
		p, ok := o.locator.Locate(c.Location)
		if !ok {
			o.logger.Warn("no coordinates for club location", "region", regionID, "location", c.Location, "club", c.Name)
			continue
		}
		c.X, c.Y = p.X(), p.Y()
		c.Delay = time.Duration(i) * o.stagger
		out = append(out, c)
	}
	return out
}
