// Package countries is the closed-set country table used by band pages and
// search filters. Codes follow ISO 3166-1 alpha-2, plus the site's own
// "International" and "Unknown" pseudo-countries (XX and ZZ).
package countries

import (
	"fmt"
	"strings"
)

// A Country is a two-letter country code, like "SE".
type Country string

// String returns the display name, like "Sweden".
func (c Country) String() string {
	return names[c]
}

// Code returns the two-letter code as a plain string.
func (c Country) Code() string {
	return string(c)
}

// ByName maps a free-text country name from a page onto its code. The match
// is case-insensitive and ignores surrounding whitespace.
func ByName(name string) (Country, error) {
	c, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown country: '%s'", name)
	}
	return c, nil
}

var names = map[Country]string{
	"AD": "Andorra",
	"AE": "United Arab Emirates",
	"AF": "Afghanistan",
	"AL": "Albania",
	"AM": "Armenia",
	"AO": "Angola",
	"AR": "Argentina",
	"AT": "Austria",
	"AU": "Australia",
	"AZ": "Azerbaijan",
	"BA": "Bosnia and Herzegovina",
	"BB": "Barbados",
	"BD": "Bangladesh",
	"BE": "Belgium",
	"BG": "Bulgaria",
	"BH": "Bahrain",
	"BO": "Bolivia",
	"BR": "Brazil",
	"BW": "Botswana",
	"BY": "Belarus",
	"CA": "Canada",
	"CH": "Switzerland",
	"CL": "Chile",
	"CN": "China",
	"CO": "Colombia",
	"CR": "Costa Rica",
	"CU": "Cuba",
	"CY": "Cyprus",
	"CZ": "Czechia",
	"DE": "Germany",
	"DK": "Denmark",
	"DO": "Dominican Republic",
	"DZ": "Algeria",
	"EC": "Ecuador",
	"EE": "Estonia",
	"EG": "Egypt",
	"ES": "Spain",
	"FI": "Finland",
	"FO": "Faroe Islands",
	"FR": "France",
	"GE": "Georgia",
	"GB": "United Kingdom",
	"GL": "Greenland",
	"GR": "Greece",
	"GT": "Guatemala",
	"HK": "Hong Kong",
	"HN": "Honduras",
	"HR": "Croatia",
	"HU": "Hungary",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IL": "Israel",
	"IN": "India",
	"IQ": "Iraq",
	"IR": "Iran",
	"IS": "Iceland",
	"IT": "Italy",
	"JM": "Jamaica",
	"JO": "Jordan",
	"JP": "Japan",
	"KE": "Kenya",
	"KG": "Kyrgyzstan",
	"KH": "Cambodia",
	"KR": "South Korea",
	"KW": "Kuwait",
	"KZ": "Kazakhstan",
	"LB": "Lebanon",
	"LI": "Liechtenstein",
	"LK": "Sri Lanka",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"LV": "Latvia",
	"MA": "Morocco",
	"MD": "Moldova",
	"ME": "Montenegro",
	"MG": "Madagascar",
	"MK": "North Macedonia",
	"MM": "Myanmar",
	"MN": "Mongolia",
	"MO": "Macau",
	"MT": "Malta",
	"MV": "Maldives",
	"MX": "Mexico",
	"MY": "Malaysia",
	"NA": "Namibia",
	"NC": "New Caledonia",
	"NL": "Netherlands",
	"NO": "Norway",
	"NP": "Nepal",
	"NZ": "New Zealand",
	"OM": "Oman",
	"PA": "Panama",
	"PE": "Peru",
	"PH": "Philippines",
	"PK": "Pakistan",
	"PL": "Poland",
	"PR": "Puerto Rico",
	"PT": "Portugal",
	"PY": "Paraguay",
	"QA": "Qatar",
	"RO": "Romania",
	"RS": "Serbia",
	"RU": "Russia",
	"SA": "Saudi Arabia",
	"SE": "Sweden",
	"SG": "Singapore",
	"SI": "Slovenia",
	"SK": "Slovakia",
	"SM": "San Marino",
	"SV": "El Salvador",
	"SY": "Syria",
	"TH": "Thailand",
	"TJ": "Tajikistan",
	"TM": "Turkmenistan",
	"TN": "Tunisia",
	"TR": "Turkey",
	"TT": "Trinidad and Tobago",
	"TW": "Taiwan",
	"UA": "Ukraine",
	"US": "United States",
	"UY": "Uruguay",
	"UZ": "Uzbekistan",
	"VE": "Venezuela",
	"VN": "Vietnam",
	"ZA": "South Africa",
	"ZW": "Zimbabwe",
	"XX": "International",
	"ZZ": "Unknown",
}

var byName = func() map[string]Country {
	m := make(map[string]Country, len(names))
	for code, name := range names {
		m[strings.ToLower(name)] = code
	}
	// Older pages use spellings the current site has moved away from.
	m["czech republic"] = "CZ"
	m["macedonia"] = "MK"
	m["korea, south"] = "KR"
	return m
}()
