package tz

import "strings"

// cityZones maps common city names to IANA zone identifiers. The table
// only backs up form input; callers holding a real IANA name never
// reach it.
var cityZones = map[string]string{
	"amsterdam":      "Europe/Amsterdam",
	"auckland":       "Pacific/Auckland",
	"bangkok":        "Asia/Bangkok",
	"barcelona":      "Europe/Madrid",
	"beijing":        "Asia/Shanghai",
	"berlin":         "Europe/Berlin",
	"boston":         "America/New_York",
	"chicago":        "America/Chicago",
	"delhi":          "Asia/Kolkata",
	"denver":         "America/Denver",
	"dubai":          "Asia/Dubai",
	"dublin":         "Europe/Dublin",
	"hong kong":      "Asia/Hong_Kong",
	"honolulu":       "Pacific/Honolulu",
	"istanbul":       "Europe/Istanbul",
	"johannesburg":   "Africa/Johannesburg",
	"lisbon":         "Europe/Lisbon",
	"london":         "Europe/London",
	"los angeles":    "America/Los_Angeles",
	"madrid":         "Europe/Madrid",
	"melbourne":      "Australia/Melbourne",
	"mexico city":    "America/Mexico_City",
	"miami":          "America/New_York",
	"moscow":         "Europe/Moscow",
	"mumbai":         "Asia/Kolkata",
	"new york":       "America/New_York",
	"paris":          "Europe/Paris",
	"rio de janeiro": "America/Sao_Paulo",
	"rome":           "Europe/Rome",
	"san francisco":  "America/Los_Angeles",
	"sao paulo":      "America/Sao_Paulo",
	"seattle":        "America/Los_Angeles",
	"seoul":          "Asia/Seoul",
	"shanghai":       "Asia/Shanghai",
	"singapore":      "Asia/Singapore",
	"sydney":         "Australia/Sydney",
	"tokyo":          "Asia/Tokyo",
	"toronto":        "America/Toronto",
	"vancouver":      "America/Vancouver",
	"zurich":         "Europe/Zurich",
}

// ZoneForCity looks up the IANA zone for a city name, case-insensitive.
func ZoneForCity(city string) (string, bool) {
	z, ok := cityZones[strings.ToLower(strings.TrimSpace(city))]
	return z, ok
}
