// Package pricing holds the static roofing price tables and the estimator
// that turns a roof area, material, region, and adjustment factors into a
// price band.
package pricing

import (
	"maps"
	"slices"
	"strings"
)

// Material identifies a material in the US state table.
type Material string

// US state-table materials.
const (
	MaterialAsphaltShingles Material = "asphalt_shingles"
	MaterialMetal           Material = "metal"
	MaterialMembrane        Material = "membrane"
	MaterialCedar           Material = "cedar"
	MaterialTile            Material = "tile"
)

// USMaterials lists the state-table materials in display order.
var USMaterials = []Material{
	MaterialAsphaltShingles,
	MaterialMetal,
	MaterialMembrane,
	MaterialCedar,
	MaterialTile,
}

var usMaterialNames = map[Material]string{
	MaterialAsphaltShingles: "Asphalt Shingles",
	MaterialMetal:           "Metal Roofing",
	MaterialMembrane:        "Flat Roof Membrane",
	MaterialCedar:           "Cedar Shakes",
	MaterialTile:            "Tile Roofing",
}

// DisplayName returns the customer-facing name of m.
func (m Material) DisplayName() string {
	if name, ok := usMaterialNames[m]; ok {
		return name
	}
	return string(m)
}

// PriceRange is an installed price per square foot.
type PriceRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Mid returns the midpoint of the range.
func (r PriceRange) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// RegionRate is the price table for one US jurisdiction.
type RegionRate struct {
	Code       string                  `json:"code" yaml:"code"`
	Name       string                  `json:"name" yaml:"name"`
	Prices     map[Material]PriceRange `json:"prices" yaml:"prices"`
	Multiplier float64                 `json:"multiplier" yaml:"multiplier"`
}

// nationalAverage is used for every material when the state is not in the
// table.
var nationalAverage = map[Material]PriceRange{
	MaterialAsphaltShingles: {Min: 4.00, Max: 6.50},
	MaterialMetal:           {Min: 8.00, Max: 14.00},
	MaterialMembrane:        {Min: 5.50, Max: 9.50},
	MaterialCedar:           {Min: 7.50, Max: 12.50},
	MaterialTile:            {Min: 10.00, Max: 18.00},
}

// NationalAverageName is the region name reported for unrecognized states.
const NationalAverageName = "National Average"

// StatePricing returns the table entry for a state code. The returned value
// owns its Prices map. ok is false for unrecognized codes; callers fall back
// to NationalAverage.
func StatePricing(code string) (RegionRate, bool) {
	rate, ok := stateRates[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return RegionRate{}, false
	}
	rate.Prices = maps.Clone(rate.Prices)
	return rate, true
}

// NationalAverage returns the fallback range for m.
func NationalAverage(m Material) (PriceRange, bool) {
	r, ok := nationalAverage[m]
	return r, ok
}

// States returns every state entry sorted by code.
func States() []RegionRate {
	codes := slices.Sorted(maps.Keys(stateRates))
	out := make([]RegionRate, 0, len(codes))
	for _, code := range codes {
		rate, _ := StatePricing(code)
		out = append(out, rate)
	}
	return out
}
