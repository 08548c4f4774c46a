package regions

var defaultRegions = []Region{
	{
		ID:        "benelux",
		Name:      "Benelux",
		Color:     "#4DBFBF",
		ColorAlt:  "#C0392B",
		Crest:     "assets/benelux-crest.png",
		Countries: []string{"BE", "NL", "LU"},
	},
	{
		ID:       "central-east",
		Name:     "Central East",
		Color:    "#2E6CC4",
		ColorAlt: "#F5C518",
		Crest:    "assets/central-east-crest.png",
		Countries: []string{
			"DE", "AT", "CH", "IT", "CZ", "PL", "HU", "HR", "SI", "RO", "BG",
			"GR", "TR", "SK", "LV", "LT", "EE", "SM", "VA", "LI", "MC",
		},
	},
	{
		ID:        "france",
		Name:      "France",
		Color:     "#2956A3",
		ColorAlt:  "#D63031",
		Crest:     "assets/france-crest.png",
		Countries: []string{"FR"},
	},
	{
		ID:        "iberia",
		Name:      "Iberia",
		Color:     "#D63031",
		ColorAlt:  "#E8A838",
		Crest:     "assets/iberia-crest.png",
		Countries: []string{"ES", "PT", "AD"},
	},
	{
		ID:        "nordics",
		Name:      "Nordics",
		Color:     "#1B3A6B",
		ColorAlt:  "#D63031",
		Crest:     "assets/nordic-crest.png",
		Countries: []string{"SE", "NO", "DK", "FI", "IS", "FO"},
	},
}

// countryNames is the display-name table for member countries.
var countryNames = map[string]string{
	"BE": "Belgium",
	"NL": "Netherlands",
	"LU": "Luxembourg",
	"DE": "Germany",
	"AT": "Austria",
	"CH": "Switzerland",
	"IT": "Italy",
	"CZ": "Czechia",
	"PL": "Poland",
	"HU": "Hungary",
	"HR": "Croatia",
	"SI": "Slovenia",
	"RO": "Romania",
	"BG": "Bulgaria",
	"GR": "Greece",
	"TR": "Turkey",
	"SK": "Slovakia",
	"LV": "Latvia",
	"LT": "Lithuania",
	"EE": "Estonia",
	"SM": "San Marino",
	"VA": "Vatican City",
	"LI": "Liechtenstein",
	"MC": "Monaco",
	"FR": "France",
	"ES": "Spain",
	"PT": "Portugal",
	"AD": "Andorra",
	"SE": "Sweden",
	"NO": "Norway",
	"DK": "Denmark",
	"FI": "Finland",
	"IS": "Iceland",
	"FO": "Faroe Islands",
}

// CountryName returns the display name for an ISO-2 code, or the code itself.
func CountryName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}
