// Package address extracts city, state, and postal code from free-form
// address strings. Extraction is best effort: fields that cannot be found are
// left empty and never cause an error.
package address

import (
	"regexp"
	"strings"
)

// Country hints derived from the postal code format.
const (
	CountryUS = "US"
	CountryCA = "CA"
)

// Parsed holds the components extracted from an address. Empty fields were
// not found and are omitted from JSON so callers can fall through to other
// sources such as a geocoder.
type Parsed struct {
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	StateCode  string `json:"stateCode,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Empty reports whether nothing was extracted.
func (p Parsed) Empty() bool {
	return p.City == "" && p.StateCode == "" && p.PostalCode == ""
}

// Parse extracts what it can from raw.
func Parse(raw string) Parsed {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Parsed{}
	}

	var p Parsed
	if zip := ExtractZip(s); zip != "" {
		p.PostalCode = zip
		p.Country = CountryUS
	} else if postal := ExtractCanadianPostal(s); postal != "" {
		p.PostalCode = postal
		p.Country = CountryCA
	}

	if code := ExtractStateCode(s); code != "" {
		p.StateCode = code
		if IsProvince(code) && !IsState(code) {
			p.State = ProvinceName(code)
			p.Country = CountryCA
		} else {
			p.State = StateName(code)
		}
		p.City = ExtractCity(s, code)
	}

	return p
}

// ExtractZip returns the first ZIP found by ZipPatterns, in order.
func ExtractZip(s string) string {
	zip, _ := matchZip(s)
	return zip
}

// matchZip also reports which pattern produced the match.
func matchZip(s string) (string, string) {
	for _, p := range ZipPatterns {
		if m := p.Re.FindStringSubmatch(s); m != nil {
			return m[1], p.Name
		}
	}
	return "", ""
}

// ExtractStateCode returns the two-letter code that follows a comma and is
// followed by a postal code, a comma, or the end of input. StatePatterns are
// tried in order; within a pattern the last match wins, since the state sits
// at the tail of an address and earlier tokens are usually directionals or
// unit designators.
func ExtractStateCode(s string) string {
	code, _ := matchState(s)
	return code
}

// matchState also reports which pattern produced the match.
func matchState(s string) (string, string) {
	for _, p := range StatePatterns {
		codes := captures(p.Re, s)
		if len(codes) == 0 {
			continue
		}
		code := codes[len(codes)-1]
		// A country code closing the address is not the state when another
		// candidate precedes it.
		if countryCodes[code] && len(codes) > 1 && strings.HasSuffix(strings.TrimSpace(s), code) {
			code = codes[len(codes)-2]
		}
		return code, p.Name
	}
	return "", ""
}

// captures returns every first-group capture of re in s. Scanning resumes
// right after each capture, so a delimiter that ends one match can start the
// next (", TX, US").
func captures(re *regexp.Regexp, s string) []string {
	var out []string
	for pos := 0; pos < len(s); {
		loc := re.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		out = append(out, s[pos+loc[2]:pos+loc[3]])
		pos += loc[3]
	}
	return out
}

// ExtractCity returns the city preceding stateCode, or "" if none is found.
func ExtractCity(s, stateCode string) string {
	if stateCode == "" {
		return ""
	}
	for _, p := range cityPatterns(stateCode) {
		if m := p.Re.FindStringSubmatch(s); m != nil {
			city := strings.TrimSpace(m[1])
			if city != "" {
				return city
			}
		}
	}
	return ""
}

// ExtractCanadianPostal returns an uppercase "A1A 1A1" postal code or "".
func ExtractCanadianPostal(s string) string {
	m := canadianPostalPattern.Re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1] + " " + m[2])
}

// LooksCanadian reports whether raw carries a Canadian marker: a province
// code, a Canadian postal code, or the country / Québec name.
func LooksCanadian(raw string) bool {
	p := Parse(raw)
	if p.Country == CountryCA {
		return true
	}
	lower := strings.ToLower(raw)
	return strings.Contains(lower, "canada") ||
		strings.Contains(lower, "québec") ||
		strings.Contains(lower, "quebec")
}
