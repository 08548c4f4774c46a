package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/euromap/internal/factsheet"
	"github.com/ziadkadry99/euromap/internal/regions"
)

// handleListRegions lists every region in registry order.
func (s *Server) handleListRegions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	all := s.regions.All()
	sb.WriteString(fmt.Sprintf("%d region(s):\n", len(all)))
	for _, r := range all {
		sb.WriteString(fmt.Sprintf("\n%s (%s)\n", r.Name, r.ID))
		sb.WriteString(fmt.Sprintf("Colour: %s\n", r.Color))
		sb.WriteString(fmt.Sprintf("Countries: %s\n", strings.Join(r.CountryNames(), ", ")))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetFactsheet renders a region's factsheet as plain text.
func (s *Server) handleGetFactsheet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("region_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: region_id"), nil
	}

	sheet, ok := s.sheets.Render(id, "")
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Unknown region %q. Use list_regions to see the available ids.", id,
		)), nil
	}

	return mcp.NewToolResultText(formatSheet(sheet, s.stats.Get(id).Notes)), nil
}

// handleRegionForCountry resolves a country code to its region.
func (s *Server) handleRegionForCountry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: code"), nil
	}
	code = strings.ToUpper(strings.TrimSpace(code))

	id, ok := s.regions.RegionFor(code)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf(
			"%s (%s) is not part of any region.", regions.CountryName(code), code,
		)), nil
	}
	r, _ := s.regions.Get(id)
	return mcp.NewToolResultText(fmt.Sprintf(
		"%s (%s) belongs to %s (%s).", regions.CountryName(code), code, r.Name, r.ID,
	)), nil
}

// handleLocateCity projects a location name onto the map.
func (s *Server) handleLocateCity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}

	p, ok := s.locator.Locate(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No coordinates known for %q.", name)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s: x=%.1f y=%.1f", name, p.X(), p.Y())), nil
}

// formatSheet converts a factsheet into a text layout for agent consumption.
// Notes are taken from the source text rather than the rendered HTML.
func formatSheet(s *factsheet.Sheet, notes []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n", s.Name))
	sb.WriteString(fmt.Sprintf("%d countries\n", s.CountryCount))

	sb.WriteString("\n## Key figures\n")
	for _, t := range s.Tiles {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", t.Label, t.Display))
	}

	if len(notes) > 0 {
		sb.WriteString("\n## Notes\n")
		for _, n := range notes {
			sb.WriteString(fmt.Sprintf("- %s\n", n))
		}
	}

	for _, sp := range s.Spotlights {
		sb.WriteString(fmt.Sprintf("\n## Spotlight: %s\n", sp.Title))
		if sp.Accolade != "" {
			sb.WriteString(sp.Accolade + "\n")
		}
		for _, st := range sp.Stats {
			sb.WriteString(fmt.Sprintf("- %s\n", st))
		}
	}

	if s.Events != nil {
		sb.WriteString(fmt.Sprintf("\n## Events (%s)\n", s.Events.Summary))
		for _, e := range s.Events.Items {
			line := fmt.Sprintf("- %s: %s", e.Date, e.Title)
			if e.Meta != "" {
				line += " (" + e.Meta + ")"
			}
			if e.Major {
				line += " [major]"
			}
			sb.WriteString(line + "\n")
		}
	}

	if len(s.Breakdown) > 0 {
		sb.WriteString("\n## Clubs\n")
		for _, c := range s.Breakdown {
			names := make([]string, 0, len(c.Clubs))
			for _, club := range c.Clubs {
				if club.Location != "" {
					names = append(names, club.Name+" ("+club.Location+")")
				} else {
					names = append(names, club.Name)
				}
			}
			sb.WriteString(fmt.Sprintf("- %s, %s: %s\n", c.Country, c.ClubCount, strings.Join(names, ", ")))
		}
	} else if len(s.CountryTags) > 0 {
		sb.WriteString("\n## Countries\n")
		sb.WriteString(strings.Join(s.CountryTags, ", ") + "\n")
	}

	if s.Footer != "" {
		sb.WriteString("\n" + s.Footer + "\n")
	}
	return sb.String()
}
