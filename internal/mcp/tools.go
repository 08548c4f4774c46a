package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listRegionsTool defines the list_regions MCP tool.
var listRegionsTool = mcp.NewTool("list_regions",
	mcp.WithDescription("List the map regions with their colours and member countries."),
)

// getFactsheetTool defines the get_factsheet MCP tool.
var getFactsheetTool = mcp.NewTool("get_factsheet",
	mcp.WithDescription("Get the factsheet for a region: KPIs, notes, spotlights, upcoming events and clubs per country."),
	mcp.WithString("region_id",
		mcp.Required(),
		mcp.Description("Region id, for example \"iberia\" or \"nordics\""),
	),
)

// regionForCountryTool defines the region_for_country MCP tool.
var regionForCountryTool = mcp.NewTool("region_for_country",
	mcp.WithDescription("Find which region a country belongs to."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("ISO 3166-1 alpha-2 country code, for example \"ES\""),
	),
)

// locateCityTool defines the locate_city MCP tool.
var locateCityTool = mcp.NewTool("locate_city",
	mcp.WithDescription("Resolve a club location to its position on the map."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("City name exactly as used in club listings"),
	),
)
