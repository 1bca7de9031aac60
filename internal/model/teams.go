package model

// teamNames maps franchise abbreviations to full display names. Used for
// breadcrumb labels and anywhere a team must be named without a Provider
// round trip.
var teamNames = map[string]string{
	"ANA": "Anaheim Ducks",
	"BOS": "Boston Bruins",
	"BUF": "Buffalo Sabres",
	"CAR": "Carolina Hurricanes",
	"CBJ": "Columbus Blue Jackets",
	"CGY": "Calgary Flames",
	"CHI": "Chicago Blackhawks",
	"COL": "Colorado Avalanche",
	"DAL": "Dallas Stars",
	"DET": "Detroit Red Wings",
	"EDM": "Edmonton Oilers",
	"FLA": "Florida Panthers",
	"LAK": "Los Angeles Kings",
	"MIN": "Minnesota Wild",
	"MTL": "Montreal Canadiens",
	"NJD": "New Jersey Devils",
	"NSH": "Nashville Predators",
	"NYI": "New York Islanders",
	"NYR": "New York Rangers",
	"OTT": "Ottawa Senators",
	"PHI": "Philadelphia Flyers",
	"PIT": "Pittsburgh Penguins",
	"SEA": "Seattle Kraken",
	"SJS": "San Jose Sharks",
	"STL": "St. Louis Blues",
	"TBL": "Tampa Bay Lightning",
	"TOR": "Toronto Maple Leafs",
	"UTA": "Utah Mammoth",
	"VAN": "Vancouver Canucks",
	"VGK": "Vegas Golden Knights",
	"WPG": "Winnipeg Jets",
	"WSH": "Washington Capitals",
}

// TeamName resolves an abbreviation to a full team name, falling back to the
// abbreviation itself for unknown teams.
func TeamName(abbrev string) string {
	if name, ok := teamNames[abbrev]; ok {
		return name
	}
	return abbrev
}
