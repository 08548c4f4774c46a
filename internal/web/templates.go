package web

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/ziadkadry99/euromap/internal/dots"
	"github.com/ziadkadry99/euromap/internal/regions"
)

//go:embed static/index.html
var indexSource string

//go:embed static/map.css
var mapCSS string

//go:embed static/map.js
var mapJS string

var indexTmpl = template.Must(template.New("index").Parse(indexSource))

// pageData feeds the index template.
type pageData struct {
	Title       string
	Legend      []regions.LegendEntry
	TotalEvents int
	DotColor    string
	CSS         template.CSS
	JS          template.JS
}

// ServeIndex renders the map page.
func (h *Web) ServeIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:       h.deps.Title,
		Legend:      h.deps.Regions.Legend(),
		TotalEvents: h.deps.Stats.TotalEvents(),
		DotColor:    dots.Color,
		CSS:         template.CSS(mapCSS),
		JS:          template.JS(mapJS),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		h.logger.Error("rendering index", "error", err)
	}
}
