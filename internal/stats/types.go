package stats

import (
	"bytes"
	"encoding/json"
)

// Blob is the statistics record for one region. Every field is optional in
// the source document; Store.Get fills the collection fields with empty
// values so callers never see nil.
type Blob struct {
	KPIs       KPIs           `json:"kpis"`
	Notes      []string       `json:"notes"`
	ByCountry  []CountryClubs `json:"byCountry"`
	Events     []Event        `json:"events"`
	Spotlight  *Spotlight     `json:"spotlight,omitempty"`
	Spotlights []Spotlight    `json:"spotlights,omitempty"`
}

// KPIs maps a metric name to its value. Null and non-numeric entries are
// dropped while decoding, so a key is present only when it holds a number.
type KPIs map[string]float64

// UnmarshalJSON implements json.Unmarshaler.
func (k *KPIs) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not an object: treat as absent.
		*k = KPIs{}
		return nil
	}
	out := make(KPIs, len(raw))
	for key, v := range raw {
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}
		var n float64
		if err := json.Unmarshal(v, &n); err != nil {
			continue
		}
		out[key] = n
	}
	*k = out
	return nil
}

// Lookup returns the value for key and whether it was present.
func (k KPIs) Lookup(key string) (float64, bool) {
	v, ok := k[key]
	return v, ok
}

// CountryClubs is one country entry of a region's club breakdown.
type CountryClubs struct {
	Country   string  `json:"country"`
	Flag      string  `json:"flag,omitempty"`
	ClubCount float64 `json:"clubCount"`
	Clubs     []Club  `json:"clubs"`
}

// Club is either a bare name or a name with a location. In the document it
// appears as a JSON string or as {"name": ..., "location": ...}.
type Club struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Club) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*c = Club{Name: name}
		return nil
	}
	type plain Club
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Club(p)
	return nil
}

// Event is one calendar entry. Date is an ISO date (YYYY-MM-DD).
type Event struct {
	Date     string   `json:"date"`
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Host     string   `json:"host"`
	Sports   []string `json:"sports"`
	IsMajor  bool     `json:"isMajor,omitempty"`
}

// Spotlight is a featured highlight card.
type Spotlight struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Crest       string   `json:"crest,omitempty"`
	Flag        string   `json:"flag,omitempty"`
	Accolade    string   `json:"accolade,omitempty"`
	Stats       []string `json:"stats,omitempty"`
}

// AllSpotlights merges the singular and plural spotlight fields, singular
// first.
func (b *Blob) AllSpotlights() []Spotlight {
	var out []Spotlight
	if b.Spotlight != nil {
		out = append(out, *b.Spotlight)
	}
	return append(out, b.Spotlights...)
}

// normalize replaces nil collections with empty ones.
func (b *Blob) normalize() {
	if b.KPIs == nil {
		b.KPIs = KPIs{}
	}
	if b.Notes == nil {
		b.Notes = []string{}
	}
	if b.ByCountry == nil {
		b.ByCountry = []CountryClubs{}
	}
	if b.Events == nil {
		b.Events = []Event{}
	}
	for i := range b.ByCountry {
		if b.ByCountry[i].Clubs == nil {
			b.ByCountry[i].Clubs = []Club{}
		}
	}
	for i := range b.Events {
		if b.Events[i].Sports == nil {
			b.Events[i].Sports = []string{}
		}
	}
}

// Empty returns a fully defaulted blob.
func Empty() *Blob {
	b := &Blob{}
	b.normalize()
	return b
}
