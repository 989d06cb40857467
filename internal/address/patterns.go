package address

import "regexp"

// Pattern is a named regular expression whose first capture group holds the
// extracted value.
type Pattern struct {
	Name string
	Re   *regexp.Regexp
}

const (
	zipExpr            = `\d{5}(?:-\d{4})?`
	canadianPostalExpr = `[A-Z]\d[A-Z]\s?\d[A-Z]\d`
)

// ZipPatterns are tried in order and the first match wins. Earlier patterns
// anchor the ZIP to a state code so a five-digit house number is never taken
// for a postal code.
var ZipPatterns = []Pattern{
	{Name: "after_state", Re: regexp.MustCompile(`\b[A-Z]{2}\s+(` + zipExpr + `)\b`)},
	{Name: "after_comma_state", Re: regexp.MustCompile(`,\s*[A-Z]{2}\s*,\s*(` + zipExpr + `)\b`)},
	{Name: "end_of_string", Re: regexp.MustCompile(`\b(` + zipExpr + `)\s*$`)},
	{Name: "after_trailing_comma", Re: regexp.MustCompile(`,\s*(` + zipExpr + `)\s*(?:,|$)`)},
}

// StatePatterns are tried in order. Each wants a comma before the code. A
// code followed by a ZIP or Canadian postal code outranks one followed only
// by a comma or the end of input, which is also where a trailing country
// code ("US", "CA") sits.
var StatePatterns = []Pattern{
	{Name: "before_postal", Re: regexp.MustCompile(`,\s*([A-Z]{2})\s+(?:` + zipExpr + `|` + canadianPostalExpr + `)\b`)},
	{Name: "before_comma_or_end", Re: regexp.MustCompile(`,\s*([A-Z]{2})\s*(?:,|$)`)},
}

// countryCodes are two-letter country tokens that can trail an address.
var countryCodes = map[string]bool{"US": true, "CA": true}

// canadianPostalPattern matches "A1A 1A1" with or without the space.
var canadianPostalPattern = Pattern{
	Name: "canadian_postal",
	Re:   regexp.MustCompile(`(?i)\b([A-Z]\d[A-Z])\s?(\d[A-Z]\d)\b`),
}

// cityPatterns build the city expressions for a resolved state code. The
// strict form wants the city between two commas with the state right after
// the second one; the loose form only wants a word boundary before the code.
func cityPatterns(stateCode string) []Pattern {
	code := regexp.QuoteMeta(stateCode)
	return []Pattern{
		{Name: "between_commas", Re: regexp.MustCompile(`,\s*([^,]+?)\s*,\s*` + code + `\b`)},
		{Name: "before_state", Re: regexp.MustCompile(`\b([A-Za-z][A-Za-z .'\-]*[A-Za-z])\s*,?\s+` + code + `\b`)},
	}
}
