package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/euromap/internal/factsheet"
	"github.com/ziadkadry99/euromap/internal/geo"
	"github.com/ziadkadry99/euromap/internal/regions"
	"github.com/ziadkadry99/euromap/internal/stats"
)

// Version is set via ldflags at build time.
var Version = "dev"

// StatsSource looks up a region's statistics.
type StatsSource interface {
	Get(regionID string) *stats.Blob
}

// Server wraps an MCP server that exposes the region map to agents.
type Server struct {
	regions *regions.Registry
	stats   StatsSource
	sheets  *factsheet.Renderer
	locator *geo.Locator
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(reg *regions.Registry, src StatsSource, sheets *factsheet.Renderer, loc *geo.Locator) *Server {
	s := &Server{
		regions: reg,
		stats:   src,
		sheets:  sheets,
		locator: loc,
	}

	s.mcp = server.NewMCPServer(
		"euromap",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listRegionsTool, s.handleListRegions)
	s.mcp.AddTool(getFactsheetTool, s.handleGetFactsheet)
	s.mcp.AddTool(regionForCountryTool, s.handleRegionForCountry)
	s.mcp.AddTool(locateCityTool, s.handleLocateCity)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
