package factsheet

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/ziadkadry99/euromap/internal/regions"
	"github.com/ziadkadry99/euromap/internal/stats"
)

// RegionSource resolves region definitions.
type RegionSource interface {
	Get(id string) (*regions.Region, bool)
}

// StatsSource looks up a region's statistics.
type StatsSource interface {
	Get(regionID string) *stats.Blob
}

// kpiSpec describes one KPI tile candidate. Optional tiles are shown only
// when the value is positive; the others whenever the key is present.
type kpiSpec struct {
	key      string
	label    string
	optional bool
}

var kpiOrder = []kpiSpec{
	{"clubs", "Clubs", false},
	{"countries", "Countries", false},
	{"calendarEvents", "Calendar Events", false},
	{"tournaments", "Tournaments", false},
	{"players", "Players", true},
	{"matchesYTD", "Matches YTD", true},
	{"tournamentsYTD", "Tournaments YTD", true},
	{"youthTeams", "Youth Teams", true},
	{"fixtures", "Fixtures", true},
	{"calendarInterests", "Calendar Interests", true},
}

// Renderer builds sheets from the registry and statistics.
type Renderer struct {
	regions RegionSource
	stats   StatsSource
	md      goldmark.Markdown
	footer  string
	logo    string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFooter overrides the footer text.
func WithFooter(s string) Option { return func(r *Renderer) { r.footer = s } }

// WithEmptyLogo overrides the image shown on the empty sheet.
func WithEmptyLogo(s string) Option { return func(r *Renderer) { r.logo = s } }

// NewRenderer returns a Renderer.
func NewRenderer(reg RegionSource, src StatsSource, opts ...Option) *Renderer {
	r := &Renderer{
		regions: reg,
		stats:   src,
		// Notes are authored content and may carry inline HTML. Only
		// paragraphs are parsed so "1. ", "# " or "- " stay literal text.
		md: goldmark.New(
			goldmark.WithParser(parser.NewParser(
				parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
				parser.WithInlineParsers(parser.DefaultInlineParsers()...),
				parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
			)),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
		footer: DefaultFooter,
		logo:   DefaultEmptyLogo,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderEmpty returns the placeholder sheet shown when no region is active.
func (r *Renderer) RenderEmpty() *Sheet {
	return &Sheet{Empty: true, Logo: r.logo}
}

// Render builds the sheet for regionID. The Pinned badge is set when locked
// names the same region. Unknown regions report false.
func (r *Renderer) Render(regionID, locked string) (*Sheet, bool) {
	region, ok := r.regions.Get(regionID)
	if !ok {
		return nil, false
	}
	blob := r.stats.Get(regionID)

	s := &Sheet{
		RegionID:     region.ID,
		Name:         region.Name,
		Crest:        region.Crest,
		CountryCount: len(region.Countries),
		Pinned:       locked != "" && locked == regionID,
		Tiles:        buildTiles(blob.KPIs),
		Footer:       r.footer,
	}

	for _, n := range blob.Notes {
		s.Notes = append(s.Notes, r.inline(n))
	}

	for i, sp := range blob.AllSpotlights() {
		s.Spotlights = append(s.Spotlights, SpotlightCard{
			ID:          fmt.Sprintf("spotlight-body-%d", i),
			Title:       sp.Title,
			Crest:       sp.Crest,
			Flag:        sp.Flag,
			Accolade:    sp.Accolade,
			Description: r.inline(sp.Description),
			Stats:       sp.Stats,
			Collapsed:   true,
		})
	}

	if n := len(blob.Events); n > 0 {
		list := &EventList{
			ID:        EventsSectionID,
			Summary:   eventSummary(n),
			Collapsed: true,
		}
		for _, e := range blob.Events {
			list.Items = append(list.Items, EventItem{
				Date:   FormatDate(e.Date),
				Title:  e.Title,
				Meta:   e.Location + " · " + e.Host,
				Sports: e.Sports,
				Major:  e.IsMajor,
			})
		}
		s.Events = list
	}

	if len(blob.ByCountry) > 0 {
		for i, c := range blob.ByCountry {
			sec := CountrySection{
				ID:        fmt.Sprintf("country-%d", i),
				Flag:      c.Flag,
				Country:   c.Country,
				ClubCount: humanize.Commaf(c.ClubCount),
				Collapsed: true,
			}
			for _, cl := range c.Clubs {
				sec.Clubs = append(sec.Clubs, ClubChip{Name: cl.Name, Location: cl.Location})
			}
			s.Breakdown = append(s.Breakdown, sec)
		}
	} else {
		s.CountryTags = region.CountryNames()
	}

	return s, true
}

func buildTiles(kpis stats.KPIs) []Tile {
	var tiles []Tile
	for _, k := range kpiOrder {
		v, ok := kpis.Lookup(k.key)
		if !ok || (k.optional && v <= 0) {
			continue
		}
		tiles = append(tiles, Tile{Label: k.label, Value: v})
	}
	if len(tiles) == 0 {
		tiles = []Tile{{Label: "Clubs"}, {Label: "Events"}}
	}
	for i := range tiles {
		tiles[i].Display = humanize.Commaf(tiles[i].Value)
	}
	if len(tiles)%2 == 1 {
		tiles[len(tiles)-1].FullWidth = true
	}
	return tiles
}

func eventSummary(n int) string {
	if n == 1 {
		return "1 event on the calendar"
	}
	return fmt.Sprintf("%d events on the calendar", n)
}

// FormatDate renders an ISO date as "12 Sep 2026". Values that do not
// parse are returned unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return t.Format("2 Jan 2006")
}

// inline renders a Markdown fragment and strips the wrapping paragraph so
// the result sits inside list items and cards.
func (r *Renderer) inline(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out)
}
