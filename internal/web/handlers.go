package web

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/euromap/internal/dots"
	"github.com/ziadkadry99/euromap/internal/factsheet"
	"github.com/ziadkadry99/euromap/internal/regions"
	"github.com/ziadkadry99/euromap/internal/stats"
)

// regionSummary is one entry of the region list.
type regionSummary struct {
	*regions.Region
	CountryNames []string `json:"countryNames"`
	HasStats     bool     `json:"hasStats"`
	Events       int      `json:"events"`
}

// regionDetail is the response for a single region.
type regionDetail struct {
	Region *regions.Region `json:"region"`
	Stats  *stats.Blob     `json:"stats"`
}

// locateResponse is the projected position of a city.
type locateResponse struct {
	City string  `json:"city"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func (h *Web) handleRegions(w http.ResponseWriter, r *http.Request) {
	all := h.deps.Regions.All()
	out := make([]regionSummary, 0, len(all))
	for _, reg := range all {
		out = append(out, regionSummary{
			Region:       reg,
			CountryNames: reg.CountryNames(),
			HasStats:     h.deps.Stats.Has(reg.ID),
			Events:       len(h.deps.Stats.Get(reg.ID).Events),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Web) handleRegion(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.region(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, regionDetail{Region: reg, Stats: h.deps.Stats.Get(reg.ID)})
}

func (h *Web) handleFactsheet(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.region(w, r)
	if !ok {
		return
	}
	locked := ""
	if v := r.URL.Query().Get("locked"); v == "1" || v == "true" {
		locked = reg.ID
	}
	sheet, _ := h.deps.Sheets.Render(reg.ID, locked)

	var buf bytes.Buffer
	if err := factsheet.Write(&buf, sheet); err != nil {
		h.logger.Error("rendering factsheet", "region", reg.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "rendering factsheet failed"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (h *Web) handleDots(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.region(w, r)
	if !ok {
		return
	}
	if h.deps.Dots == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "club dots are disabled"})
		return
	}
	d := h.deps.Dots.Compute(reg.ID)
	if d == nil {
		d = []dots.Dot{}
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Web) handleLocate(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "city is required"})
		return
	}
	p, ok := h.deps.Locator.Locate(city)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown city: " + city})
		return
	}
	writeJSON(w, http.StatusOK, locateResponse{City: city, X: p.X(), Y: p.Y()})
}

func (h *Web) handleMapSVG(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.deps.Map.WriteGrouped(&buf); err != nil {
		h.logger.Error("writing map", "error", err)
		http.Error(w, "map unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

// region resolves the {id} URL parameter, answering 404 itself when the id
// is unknown.
func (h *Web) region(w http.ResponseWriter, r *http.Request) (*regions.Region, bool) {
	id := chi.URLParam(r, "id")
	reg, ok := h.deps.Regions.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown region: " + id})
		return nil, false
	}
	return reg, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
