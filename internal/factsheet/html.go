package factsheet

import (
	"bytes"
	"html/template"
	"io"
)

var sheetTmpl = template.Must(template.New("factsheet").Parse(sheetTemplate))

// Write renders s as an HTML fragment.
func Write(w io.Writer, s *Sheet) error {
	return sheetTmpl.Execute(w, s)
}

// HTML renders s to a string.
func HTML(s *Sheet) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const sheetTemplate = `{{- define "icon"}}{{if .}}+{{else}}&minus;{{end}}{{end -}}
{{- if .Empty -}}
<div class="factsheet-empty">
  <img class="gge-logo-large" src="{{.Logo}}" alt="Gaelic Games Europe">
  <p>Hover a region to preview<br>Click to pin, zoom and scroll stats</p>
</div>
{{- else -}}
<div class="factsheet-content" data-region="{{.RegionID}}">
  <div class="factsheet-header">
    <img class="region-crest" src="{{.Crest}}" alt="{{.Name}} crest">
    <div>
      <h2>{{.Name}}</h2>
      <p class="country-count">{{.CountryCount}} countries{{if .Pinned}} &middot; <span class="lock-badge">Pinned</span>{{end}}</p>
    </div>
  </div>

  <div class="kpi-grid">
    {{- range .Tiles}}
    <div class="kpi-tile{{if .FullWidth}} full-width{{end}}">
      <div class="kpi-value">{{.Display}}</div>
      <div class="kpi-label">{{.Label}}</div>
    </div>
    {{- end}}
  </div>
  {{- if .Notes}}

  <div class="factsheet-notes">
    <h3>Highlights</h3>
    <ul>{{range .Notes}}<li>{{.}}</li>{{end}}</ul>
  </div>
  {{- end}}
  {{- if .Spotlights}}

  <div class="spotlight">
    <h3>Spotlight</h3>
    {{- range .Spotlights}}
    <div class="spotlight-card" data-expand-card="{{.ID}}">
      <div class="spotlight-card-header">
        {{- if .Crest}}<img class="spotlight-crest" src="{{.Crest}}" alt="{{.Title}}">{{end}}
        {{- if .Flag}}<span class="spotlight-flag">{{.Flag}}</span>{{end}}
        <div>
          <div class="spotlight-title">{{.Title}}</div>
          {{- if .Accolade}}
          <div class="spotlight-accolade">{{.Accolade}}</div>
          {{- end}}
        </div>
        <span class="spotlight-expand-icon">{{template "icon" .Collapsed}}</span>
      </div>
      <div class="spotlight-body{{if .Collapsed}} collapsed{{end}}" id="{{.ID}}">
        <div class="spotlight-desc">{{.Description}}</div>
        {{- if .Stats}}
        <div class="spotlight-stats">{{range .Stats}}<span class="spotlight-stat">{{.}}</span>{{end}}</div>
        {{- end}}
      </div>
    </div>
    {{- end}}
  </div>
  {{- end}}
  {{- with .Events}}

  <div class="events-timeline">
    <div class="events-header" data-expand-events="{{.ID}}">
      <div>
        <h3>Upcoming Events</h3>
        <div class="events-summary">{{.Summary}}</div>
      </div>
      <span class="events-expand-icon">{{template "icon" .Collapsed}}</span>
    </div>
    <div class="events-list{{if .Collapsed}} collapsed{{end}}" id="{{.ID}}">
    {{- range .Items}}
      <div class="event-card{{if .Major}} event-major{{end}}">
        <div class="event-date">{{.Date}}</div>
        <div class="event-details">
          <div class="event-title">{{.Title}}</div>
          <div class="event-meta">{{.Meta}}</div>
          <div class="event-sports">{{range .Sports}}<span class="sport-tag">{{.}}</span>{{end}}</div>
        </div>
      </div>
    {{- end}}
    </div>
  </div>
  {{- end}}

  {{- if .Breakdown}}

  <div class="country-breakdown">
    <h3>Clubs by Country</h3>
    {{- range .Breakdown}}
    <div class="country-section">
      <div class="country-header" data-expand="{{.ID}}">
        <span class="country-flag">{{.Flag}}</span>
        <span class="country-name">{{.Country}}</span>
        <span class="country-club-count">{{.ClubCount}}</span>
        <span class="expand-icon">{{template "icon" .Collapsed}}</span>
      </div>
      <div class="club-list{{if .Collapsed}} collapsed{{end}}" id="{{.ID}}">
        {{- range .Clubs}}<span class="club-chip"{{if .Location}} title="{{.Location}}"{{end}}>{{.Name}}</span>{{end}}
      </div>
    </div>
    {{- end}}
  </div>
  {{- else}}

  <div class="countries-list">
    <h3>Countries</h3>
    <div class="country-tags">{{range .CountryTags}}<span class="country-tag">{{.}}</span>{{end}}</div>
  </div>
  {{- end}}

  <div class="factsheet-footer">
    {{.Footer}}
  </div>
</div>
{{- end}}
`
