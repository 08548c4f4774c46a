// Package web serves the map page, the grouped SVG, static assets and the
// JSON API over the region data.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ziadkadry99/euromap/internal/assets"
	"github.com/ziadkadry99/euromap/internal/dots"
	"github.com/ziadkadry99/euromap/internal/factsheet"
	"github.com/ziadkadry99/euromap/internal/geo"
	"github.com/ziadkadry99/euromap/internal/regions"
	"github.com/ziadkadry99/euromap/internal/stats"
	"github.com/ziadkadry99/euromap/internal/svgmap"
)

// APITimeout bounds every non-websocket request.
const APITimeout = 30 * time.Second

// Deps are the collaborators the handlers read from.
type Deps struct {
	Regions  *regions.Registry
	Stats    *stats.Store
	Map      *svgmap.Map
	Sheets   *factsheet.Renderer
	Dots     *dots.Overlay // nil when the overlay is disabled
	Locator  *geo.Locator
	Assets   assets.Config
	Sessions http.Handler // websocket endpoint; nil disables it
	Title    string
	Logger   *slog.Logger
}

// Web holds the route handlers.
type Web struct {
	deps   Deps
	logger *slog.Logger
}

// New creates the handlers.
func New(deps Deps) *Web {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Locator == nil {
		deps.Locator = geo.DefaultLocator()
	}
	if deps.Title == "" {
		deps.Title = "Gaelic Games Europe"
	}
	return &Web{deps: deps, logger: deps.Logger}
}

// RegisterRoutes mounts all routes onto r. The websocket route sits outside
// the request timeout.
func (h *Web) RegisterRoutes(r chi.Router) {
	if h.deps.Sessions != nil {
		r.Handle("/ws/map", h.deps.Sessions)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(APITimeout))

		r.Get("/", h.ServeIndex)
		r.Get("/map.svg", h.handleMapSVG)
		r.Handle("/assets/*", http.StripPrefix("/assets", assets.Handler(h.deps.Assets)))

		r.Route("/api", func(r chi.Router) {
			r.Get("/regions", h.handleRegions)
			r.Get("/regions/{id}", h.handleRegion)
			r.Get("/factsheet/{id}", h.handleFactsheet)
			r.Get("/dots/{id}", h.handleDots)
			r.Get("/locate", h.handleLocate)
		})
	})
}
