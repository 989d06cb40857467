package address

import "strings"

// stateNames maps USPS state codes to full names. Covers the 50 states and DC.
var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"DC": "District of Columbia", "FL": "Florida", "GA": "Georgia", "HI": "Hawaii",
	"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
	"NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island",
	"SC": "South Carolina", "SD": "South Dakota", "TN": "Tennessee", "TX": "Texas",
	"UT": "Utah", "VT": "Vermont", "VA": "Virginia", "WA": "Washington",
	"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}

// provinceNames maps Canada Post province and territory codes to names.
var provinceNames = map[string]string{
	"AB": "Alberta", "BC": "British Columbia", "MB": "Manitoba",
	"NB": "New Brunswick", "NL": "Newfoundland and Labrador", "NS": "Nova Scotia",
	"NT": "Northwest Territories", "NU": "Nunavut", "ON": "Ontario",
	"PE": "Prince Edward Island", "QC": "Québec", "SK": "Saskatchewan",
	"YT": "Yukon",
}

// StateName returns the full name for a state code. Unknown codes are
// returned unchanged.
func StateName(code string) string {
	if name, ok := stateNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// IsState reports whether code is one of the 51 US jurisdictions.
func IsState(code string) bool {
	_, ok := stateNames[strings.ToUpper(code)]
	return ok
}

// StateCodes returns every known state code.
func StateCodes() []string {
	codes := make([]string, 0, len(stateNames))
	for code := range stateNames {
		codes = append(codes, code)
	}
	return codes
}

// ProvinceName returns the full name for a Canadian province code. Unknown
// codes are returned unchanged.
func ProvinceName(code string) string {
	if name, ok := provinceNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// IsProvince reports whether code is a Canadian province or territory.
func IsProvince(code string) bool {
	_, ok := provinceNames[strings.ToUpper(code)]
	return ok
}
