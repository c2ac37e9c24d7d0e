package utils

import "strings"

// airportCities maps IATA airport codes to city names. Built once, never mutated.
var airportCities = map[string]string{
	"LHR": "London",
	"JFK": "New York",
	"FRA": "Frankfurt",
	"CDG": "Paris",
	"LAX": "Los Angeles",
	"ORD": "Chicago",
	"DXB": "Dubai",
	"NRT": "Tokyo",
	"SYD": "Sydney",
	"SIN": "Singapore",
	"HKG": "Hong Kong",
	"BOM": "Mumbai",
	"DEL": "Delhi",
	"PEK": "Beijing",
	"PVG": "Shanghai",
}

// knownAirlines is the closed set recognised by the query parser, in match priority order
var knownAirlines = []string{
	"british airways",
	"lufthansa",
	"american airlines",
	"emirates",
	"air france",
	"united airlines",
	"delta",
	"qatar airways",
	"singapore airlines",
	"cathay pacific",
}

// CityName resolves an airport code to its city. Unknown codes resolve to themselves.
func CityName(code string) string {
	if city, ok := airportCities[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return city
	}
	return code
}

// KnownAirlines returns a copy of the airline names the parser recognises
func KnownAirlines() []string {
	airlines := make([]string, len(knownAirlines))
	copy(airlines, knownAirlines)
	return airlines
}
