package domain

import "strings"

// stateCodes maps lower-cased full state names to USPS codes.
var stateCodes = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT",
	"delaware": "DE", "district of columbia": "DC", "florida": "FL",
	"georgia": "GA", "hawaii": "HI", "idaho": "ID", "illinois": "IL",
	"indiana": "IN", "iowa": "IA", "kansas": "KS", "kentucky": "KY",
	"louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN",
	"mississippi": "MS", "missouri": "MO", "montana": "MT",
	"nebraska": "NE", "nevada": "NV", "new hampshire": "NH",
	"new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA",
	"rhode island": "RI", "south carolina": "SC", "south dakota": "SD",
	"tennessee": "TN", "texas": "TX", "utah": "UT", "vermont": "VT",
	"virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
}

// validCodes is the reverse index of stateCodes.
var validCodes = func() map[string]bool {
	codes := make(map[string]bool, len(stateCodes))
	for _, code := range stateCodes {
		codes[code] = true
	}
	return codes
}()

// ResolveState normalises a state input to its 2-letter USPS code.
// It accepts either a code or a full name, case-insensitive and trimmed.
// Unresolvable input is passed through as-is rather than rejected; the
// server decides what to do with it.
func ResolveState(input string) string {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) == 2 {
		upper := strings.ToUpper(trimmed)
		if validCodes[upper] {
			return upper
		}
	}
	if code, ok := stateCodes[strings.ToLower(trimmed)]; ok {
		return code
	}
	return trimmed
}
