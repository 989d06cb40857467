package pricing

import (
	"slices"
	"strings"
)

// Roof types used for material suitability and default material selection.
const (
	RoofTypeFlat   = "flat"
	RoofTypeSloped = "sloped"
)

// CatalogEntry is a region-agnostic material definition. Prices are per
// square foot in CatalogCurrency and carry no regional multiplier.
type CatalogEntry struct {
	ID            string     `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	NameFr        string     `json:"nameFr" yaml:"name_fr"`
	Price         PriceRange `json:"price" yaml:"price"`
	LifetimeYears int        `json:"lifetimeYears" yaml:"lifetime_years"`
	RoofTypes     []string   `json:"roofTypes" yaml:"roof_types"`
}

// Suits reports whether the material is suitable for roofType.
func (e CatalogEntry) Suits(roofType string) bool {
	return slices.Contains(e.RoofTypes, strings.ToLower(roofType))
}

// CatalogCurrency is the currency of the region-agnostic catalog.
const CatalogCurrency = "CAD"

// CatalogRegionName is reported for estimates priced from the catalog.
const CatalogRegionName = "Québec"

// Catalog material identifiers.
const (
	CatalogAsphaltShingle       = "asphalt_shingle"
	CatalogArchitecturalShingle = "architectural_shingle"
	CatalogSteel                = "steel"
	CatalogAluminum             = "aluminum"
	CatalogElastomeric          = "elastomeric"
	CatalogTPO                  = "tpo"
	CatalogEPDM                 = "epdm"
	CatalogCedarShake           = "cedar_shake"
	CatalogSlate                = "slate"
	CatalogClayTile             = "clay_tile"
)

var catalog = []CatalogEntry{
	{
		ID: CatalogAsphaltShingle, Name: "Asphalt Shingles", NameFr: "Bardeaux d'asphalte",
		Price: PriceRange{Min: 4.50, Max: 7.00}, LifetimeYears: 25,
		RoofTypes: []string{RoofTypeSloped},
	},
	{
		ID: CatalogArchitecturalShingle, Name: "Architectural Shingles", NameFr: "Bardeaux architecturaux",
		Price: PriceRange{Min: 5.50, Max: 8.50}, LifetimeYears: 30,
		RoofTypes: []string{RoofTypeSloped},
	},
	{
		ID: CatalogSteel, Name: "Steel Roofing", NameFr: "Toiture en acier",
		Price: PriceRange{Min: 9.00, Max: 15.00}, LifetimeYears: 50,
		RoofTypes: []string{RoofTypeSloped, RoofTypeFlat},
	},
	{
		ID: CatalogAluminum, Name: "Aluminum Roofing", NameFr: "Toiture en aluminium",
		Price: PriceRange{Min: 11.00, Max: 17.00}, LifetimeYears: 50,
		RoofTypes: []string{RoofTypeSloped},
	},
	{
		ID: CatalogElastomeric, Name: "Elastomeric Membrane", NameFr: "Membrane élastomère",
		Price: PriceRange{Min: 8.00, Max: 12.00}, LifetimeYears: 30,
		RoofTypes: []string{RoofTypeFlat},
	},
	{
		ID: CatalogTPO, Name: "TPO Membrane", NameFr: "Membrane TPO",
		Price: PriceRange{Min: 7.50, Max: 11.00}, LifetimeYears: 25,
		RoofTypes: []string{RoofTypeFlat},
	},
	{
		ID: CatalogEPDM, Name: "EPDM Membrane", NameFr: "Membrane EPDM",
		Price: PriceRange{Min: 7.00, Max: 10.50}, LifetimeYears: 25,
		RoofTypes: []string{RoofTypeFlat},
	},
	{
		ID: CatalogCedarShake, Name: "Cedar Shakes", NameFr: "Bardeaux de cèdre",
		Price: PriceRange{Min: 10.00, Max: 16.00}, LifetimeYears: 35,
		RoofTypes: []string{RoofTypeSloped},
	},
	{
		ID: CatalogSlate, Name: "Slate", NameFr: "Ardoise",
		Price: PriceRange{Min: 20.00, Max: 35.00}, LifetimeYears: 100,
		RoofTypes: []string{RoofTypeSloped},
	},
	{
		ID: CatalogClayTile, Name: "Clay Tile", NameFr: "Tuiles d'argile",
		Price: PriceRange{Min: 15.00, Max: 25.00}, LifetimeYears: 75,
		RoofTypes: []string{RoofTypeSloped},
	},
}

var catalogByID = func() map[string]CatalogEntry {
	m := make(map[string]CatalogEntry, len(catalog))
	for _, e := range catalog {
		m[e.ID] = e
	}
	return m
}()

// CatalogMaterial looks up a catalog entry by identifier.
func CatalogMaterial(id string) (CatalogEntry, bool) {
	e, ok := catalogByID[id]
	if !ok {
		return CatalogEntry{}, false
	}
	e.RoofTypes = slices.Clone(e.RoofTypes)
	return e, true
}

// Catalog returns every catalog entry in display order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	for i, e := range catalog {
		e.RoofTypes = slices.Clone(e.RoofTypes)
		out[i] = e
	}
	return out
}
