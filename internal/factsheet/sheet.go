// Package factsheet builds the side-panel summary for a region and renders
// it to HTML.
package factsheet

import "html/template"

// DefaultFooter is the attribution printed under every factsheet.
const DefaultFooter = "Source: GGE internal databases (2026)"

// DefaultEmptyLogo is the image shown when no region is active.
const DefaultEmptyLogo = "assets/gge-crest.png"

// Section ids used by collapsible blocks.
const (
	EventsSectionID = "events-list"
)

// Sheet is the view model of one factsheet. An empty sheet (no active
// region) only carries Empty and Logo.
type Sheet struct {
	Empty bool   `json:"empty"`
	Logo  string `json:"logo,omitempty"`

	RegionID     string `json:"regionId,omitempty"`
	Name         string `json:"name,omitempty"`
	Crest        string `json:"crest,omitempty"`
	CountryCount int    `json:"countryCount,omitempty"`
	Pinned       bool   `json:"pinned,omitempty"`

	Tiles       []Tile           `json:"tiles,omitempty"`
	Notes       []template.HTML  `json:"notes,omitempty"`
	Spotlights  []SpotlightCard  `json:"spotlights,omitempty"`
	Events      *EventList       `json:"events,omitempty"`
	Breakdown   []CountrySection `json:"breakdown,omitempty"`
	CountryTags []string         `json:"countryTags,omitempty"`
	Footer      string           `json:"footer,omitempty"`
}

// Tile is one KPI box.
type Tile struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Display   string  `json:"display"`
	FullWidth bool    `json:"fullWidth,omitempty"`
}

// SpotlightCard is a collapsible featured highlight.
type SpotlightCard struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Crest       string        `json:"crest,omitempty"`
	Flag        string        `json:"flag,omitempty"`
	Accolade    string        `json:"accolade,omitempty"`
	Description template.HTML `json:"description"`
	Stats       []string      `json:"stats,omitempty"`
	Collapsed   bool          `json:"collapsed"`
}

// EventList is the collapsible calendar block.
type EventList struct {
	ID        string      `json:"id"`
	Summary   string      `json:"summary"`
	Items     []EventItem `json:"items"`
	Collapsed bool        `json:"collapsed"`
}

// EventItem is one calendar row.
type EventItem struct {
	Date   string   `json:"date"`
	Title  string   `json:"title"`
	Meta   string   `json:"meta"`
	Sports []string `json:"sports"`
	Major  bool     `json:"major,omitempty"`
}

// CountrySection lists one country's clubs.
type CountrySection struct {
	ID        string     `json:"id"`
	Flag      string     `json:"flag,omitempty"`
	Country   string     `json:"country"`
	ClubCount string     `json:"clubCount"`
	Clubs     []ClubChip `json:"clubs"`
	Collapsed bool       `json:"collapsed"`
}

// ClubChip is a club name with an optional location tooltip.
type ClubChip struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// Toggle flips the collapsed state of the section with the given id and
// reports whether such a section exists.
func (s *Sheet) Toggle(id string) bool {
	if s == nil || id == "" {
		return false
	}
	if s.Events != nil && s.Events.ID == id {
		s.Events.Collapsed = !s.Events.Collapsed
		return true
	}
	for i := range s.Spotlights {
		if s.Spotlights[i].ID == id {
			s.Spotlights[i].Collapsed = !s.Spotlights[i].Collapsed
			return true
		}
	}
	for i := range s.Breakdown {
		if s.Breakdown[i].ID == id {
			s.Breakdown[i].Collapsed = !s.Breakdown[i].Collapsed
			return true
		}
	}
	return false
}
