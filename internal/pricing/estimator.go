package pricing

import (
	"math"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ErrInvalidArea is returned when the roof area is not a positive, finite
// number. No estimate is produced in that case.
var ErrInvalidArea = eris.New("pricing: roof area must be a positive number")

// ErrInvalidFactors is returned when an adjustment factor is not positive.
var ErrInvalidFactors = eris.New("pricing: adjustment factors must be positive")

// Currencies reported on estimates.
const (
	CurrencyUSD = "USD"
	CurrencyCAD = CatalogCurrency
)

// Catalog band spread around the single adjusted catalog price.
const (
	catalogLowBand  = 0.9
	catalogHighBand = 1.1
)

// Estimate is the priced result of one request.
type Estimate struct {
	LowEstimate    int64   `json:"lowEstimate"`
	HighEstimate   int64   `json:"highEstimate"`
	PricePerSqFt   float64 `json:"pricePerSqFt"`
	RegionName     string  `json:"regionName"`
	RegionCode     string  `json:"regionCode,omitempty"`
	MaterialID     string  `json:"materialId"`
	MaterialName   string  `json:"materialName"`
	MaterialNameFr string  `json:"materialNameFr,omitempty"`
	Combined       float64 `json:"combinedMultiplier"`
	Currency       string  `json:"currency"`
	NationalAvg    bool    `json:"nationalAverage,omitempty"`
}

// UnableToPrice reports whether e is the zero sentinel produced for a catalog
// material that does not exist.
func (e Estimate) UnableToPrice() bool {
	return e.LowEstimate == 0 && e.HighEstimate == 0 && e.PricePerSqFt == 0
}

// ValidateArea rejects missing, zero, negative, and non-finite areas.
func ValidateArea(area float64) error {
	if math.IsNaN(area) || math.IsInf(area, 0) || area <= 0 {
		return ErrInvalidArea
	}
	return nil
}

func validateInputs(area float64, f Factors) error {
	if err := ValidateArea(area); err != nil {
		return err
	}
	for _, v := range []float64{f.Complexity, f.Access, f.Condition} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return ErrInvalidFactors
		}
	}
	return nil
}

// EstimateUSState prices a roof from the state table. material may be a
// state-table identifier or a user-facing choice; it is resolved with
// ResolveUSMaterial. An unrecognized state is priced from the national
// average range for the material.
func EstimateUSState(area float64, material, stateCode string, f Factors) (Estimate, error) {
	if err := validateInputs(area, f); err != nil {
		return Estimate{}, err
	}

	m := ResolveUSMaterial(material, "")
	rng, regionName, regionCode, national := usRange(m, stateCode)

	combined := f.Combined()
	adjustedMin := rng.Min * combined
	adjustedMax := rng.Max * combined

	return Estimate{
		LowEstimate:  int64(math.Round(adjustedMin * area)),
		HighEstimate: int64(math.Round(adjustedMax * area)),
		PricePerSqFt: (adjustedMin + adjustedMax) / 2,
		RegionName:   regionName,
		RegionCode:   regionCode,
		MaterialID:   string(m),
		MaterialName: m.DisplayName(),
		Combined:     combined,
		Currency:     CurrencyUSD,
		NationalAvg:  national,
	}, nil
}

// usRange resolves the price range for m in a state, falling back to the
// national average.
func usRange(m Material, stateCode string) (PriceRange, string, string, bool) {
	if rate, ok := StatePricing(stateCode); ok {
		if rng, ok := rate.Prices[m]; ok {
			return rng, rate.Name, rate.Code, false
		}
	}
	zap.L().Debug("pricing: state not in table, using national average",
		zap.String("state", stateCode),
		zap.String("material", string(m)),
	)
	rng, ok := NationalAverage(m)
	if !ok {
		rng = nationalAverage[MaterialAsphaltShingles]
	}
	return rng, NationalAverageName, "", true
}

// EstimateCatalog prices a roof from the region-agnostic catalog. materialID
// must be a catalog identifier; an unknown one yields the zero sentinel
// rather than an error. complexity is the raw pitch-complexity answer.
//
// The complexity answer is applied twice: once as a complexity-only
// multiplier on the base price and again inside f.Combined(). Existing
// estimates depend on this, so it is kept.
func EstimateCatalog(area float64, materialID, complexity string, f Factors) (Estimate, error) {
	if err := validateInputs(area, f); err != nil {
		return Estimate{}, err
	}

	entry, ok := CatalogMaterial(materialID)
	if !ok {
		return Estimate{
			RegionName: CatalogRegionName,
			MaterialID: materialID,
			Currency:   CurrencyCAD,
		}, nil
	}

	reference := entry.Price.Mid() * catalogComplexity(complexity)
	combined := f.Combined()
	adjusted := reference * combined

	return Estimate{
		LowEstimate:    int64(math.Round(adjusted * catalogLowBand * area)),
		HighEstimate:   int64(math.Round(adjusted * catalogHighBand * area)),
		PricePerSqFt:   adjusted,
		RegionName:     CatalogRegionName,
		MaterialID:     entry.ID,
		MaterialName:   entry.Name,
		MaterialNameFr: entry.NameFr,
		Combined:       combined,
		Currency:       CurrencyCAD,
	}, nil
}
