package pricing

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Questionnaire answers for pitch complexity and property access.
const (
	ComplexitySimple   = "simple"
	ComplexityModerate = "moderate"
	ComplexityComplex  = "complex"

	AccessEasy      = "easy"
	AccessModerate  = "moderate"
	AccessDifficult = "difficult"
)

// Factors are the three independent adjustments applied to a base price.
type Factors struct {
	Complexity float64 `json:"complexity"`
	Access     float64 `json:"access"`
	Condition  float64 `json:"condition"`
}

// NeutralFactors leaves prices unadjusted.
var NeutralFactors = Factors{Complexity: 1, Access: 1, Condition: 1}

// Combined returns the product of the three factors.
func (f Factors) Combined() float64 {
	return f.Complexity * f.Access * f.Condition
}

// ComplexityFactor maps a pitch-complexity answer to its factor. Anything
// other than simple or complex, including an empty answer, counts as 1.1.
func ComplexityFactor(answer string) float64 {
	switch fold(answer) {
	case ComplexitySimple:
		return 0.9
	case ComplexityComplex:
		return 1.3
	default:
		return 1.1
	}
}

// AccessFactor maps a property-access answer to its factor.
func AccessFactor(answer string) float64 {
	switch fold(answer) {
	case AccessEasy:
		return 1.0
	case AccessDifficult:
		return 1.2
	default:
		return 1.1
	}
}

// ConditionFactor maps the selected special-condition flags to a factor and
// returns the number of distinct flags counted. Blank entries and "none" are
// not flags.
func ConditionFactor(conditions []string) (float64, int) {
	flags := lo.Uniq(lo.FilterMap(conditions, func(c string, _ int) (string, bool) {
		c = fold(c)
		return c, c != "" && c != "none"
	}))
	n := len(flags)
	switch {
	case n > 2:
		return 1.15, n
	case n > 0:
		return 1.05, n
	default:
		return 1.0, 0
	}
}

// DeriveFactors builds Factors from raw questionnaire answers.
func DeriveFactors(complexity, access string, conditions []string) (Factors, int) {
	condition, n := ConditionFactor(conditions)
	return Factors{
		Complexity: ComplexityFactor(complexity),
		Access:     AccessFactor(access),
		Condition:  condition,
	}, n
}

// catalogComplexity is the complexity-only multiplier baked into the catalog
// base price.
func catalogComplexity(answer string) float64 {
	switch fold(answer) {
	case ComplexitySimple:
		return 0.9
	case ComplexityComplex:
		return 1.3
	default:
		return 1.0
	}
}

// usChoices maps folded user-facing material choices to state-table materials.
var usChoices = map[string]Material{
	"asphalt":          MaterialAsphaltShingles,
	"asphalt_shingles": MaterialAsphaltShingles,
	"shingles":         MaterialAsphaltShingles,
	"bardeaux":         MaterialAsphaltShingles,
	"metal":            MaterialMetal,
	"steel":            MaterialMetal,
	"tole":             MaterialMetal,
	"tile":             MaterialTile,
	"tuile":            MaterialTile,
	"slate":            MaterialTile,
	"ardoise":          MaterialTile,
	"cedar":            MaterialCedar,
	"wood":             MaterialCedar,
	"cedre":            MaterialCedar,
	"elastomeric":      MaterialMembrane,
	"elastomere":       MaterialMembrane,
	"membrane":         MaterialMembrane,
	"tpo":              MaterialMembrane,
	"epdm":             MaterialMembrane,
}

// catalogChoices maps folded user-facing material choices to catalog IDs.
var catalogChoices = map[string]string{
	"asphalt":     CatalogAsphaltShingle,
	"shingles":    CatalogAsphaltShingle,
	"bardeaux":    CatalogAsphaltShingle,
	"metal":       CatalogSteel,
	"tole":        CatalogSteel,
	"acier":       CatalogSteel,
	"tile":        CatalogClayTile,
	"tuile":       CatalogClayTile,
	"cedar":       CatalogCedarShake,
	"cedre":       CatalogCedarShake,
	"slate":       CatalogSlate,
	"ardoise":     CatalogSlate,
	"elastomeric": CatalogElastomeric,
	"elastomere":  CatalogElastomeric,
	"membrane":    CatalogElastomeric,
}

// NormalizeRoofType folds roof-type answers to RoofTypeFlat or
// RoofTypeSloped. Empty input stays empty.
func NormalizeRoofType(roofType string) string {
	switch fold(roofType) {
	case "":
		return ""
	case RoofTypeFlat, "plat", "toit plat", "low-slope", "low slope":
		return RoofTypeFlat
	default:
		return RoofTypeSloped
	}
}

// ResolveUSMaterial maps a material choice to a state-table material.
// Unrecognized choices, including "other", fall back by roof type: membrane
// for flat roofs, asphalt shingles for everything else.
func ResolveUSMaterial(choice, roofType string) Material {
	if m, ok := usChoices[fold(choice)]; ok {
		return m
	}
	if NormalizeRoofType(roofType) == RoofTypeFlat {
		return MaterialMembrane
	}
	return MaterialAsphaltShingles
}

// ResolveCatalogMaterial maps a material choice to a catalog ID. Catalog IDs
// pass through unchanged. Unrecognized choices fall back like
// ResolveUSMaterial.
func ResolveCatalogMaterial(choice, roofType string) string {
	key := fold(choice)
	if _, ok := catalogByID[key]; ok {
		return key
	}
	if id, ok := catalogChoices[key]; ok {
		return id
	}
	rt := NormalizeRoofType(roofType)
	if rt == "" {
		rt = RoofTypeSloped
	}
	for _, id := range catalogDefaults {
		if catalogByID[id].Suits(rt) {
			return id
		}
	}
	return CatalogAsphaltShingle
}

// catalogDefaults are the fallback catalog materials in preference order;
// the first one suited to the roof type is used.
var catalogDefaults = []string{CatalogAsphaltShingle, CatalogElastomeric}

// fold lowercases, trims, and strips diacritics so "Élastomère" and
// "elastomere" compare equal.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
