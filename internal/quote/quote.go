package quote

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"

	"github.com/sells-group/roofquote/internal/address"
	"github.com/sells-group/roofquote/internal/pricing"
)

// Region paths.
const (
	RegionUS = "US"
	RegionCA = "CA"
)

// DefaultProvince is used on the CA path when no province was found.
const DefaultProvince = "QC"

// Material names the priced material.
type Material struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameFr string `json:"nameFr,omitempty"`
}

// Factors reports the adjustment factors behind an estimate.
type Factors struct {
	Complexity     float64 `json:"complexity"`
	Access         float64 `json:"access"`
	Conditions     float64 `json:"conditions"`
	Combined       float64 `json:"combined"`
	ConditionCount int     `json:"conditionCount"`
}

// Response is the estimate response body.
type Response struct {
	LowEstimate     int64          `json:"lowEstimate"`
	HighEstimate    int64          `json:"highEstimate"`
	PricePerSqFt    float64        `json:"pricePerSqFt"`
	Material        Material       `json:"material"`
	Region          string         `json:"region"`
	StateCode       string         `json:"stateCode,omitempty"`
	Province        string         `json:"province,omitempty"`
	// RegionName names the price table used, which on the CA path is the
	// catalog regardless of Province.
	RegionName      string         `json:"regionName"`
	Currency        string         `json:"currency"`
	ComplexityScore float64        `json:"complexityScore"`
	Factors         Factors        `json:"factors"`
	NationalAverage bool           `json:"nationalAverage,omitempty"`
	UnableToPrice   bool           `json:"unableToPrice,omitempty"`
	Address         address.Parsed `json:"address"`
}

// Resolution is the pricing region chosen for an address.
type Resolution struct {
	Region string
	Code   string
	Parsed address.Parsed
}

// ResolveRegion picks the pricing path for a request. A province code, a
// Canadian postal code, or a Canadian place name selects the CA path; any
// other two-letter code selects the US path, where unknown codes price at
// national averages. With no code at all the CA path is used.
func ResolveRegion(rawAddress, stateOverride string) Resolution {
	parsed := address.Parse(rawAddress)

	code := parsed.StateCode
	if o := strings.ToUpper(strings.TrimSpace(stateOverride)); o != "" {
		code = o
	}

	canadian := parsed.Country == address.CountryCA || address.LooksCanadian(rawAddress)
	switch {
	case address.IsProvince(code):
		return Resolution{Region: RegionCA, Code: code, Parsed: parsed}
	case address.IsState(code) && parsed.Country != address.CountryCA:
		return Resolution{Region: RegionUS, Code: code, Parsed: parsed}
	case canadian:
		return Resolution{Region: RegionCA, Code: DefaultProvince, Parsed: parsed}
	case len(code) == 2:
		return Resolution{Region: RegionUS, Code: code, Parsed: parsed}
	default:
		return Resolution{Region: RegionCA, Code: DefaultProvince, Parsed: parsed}
	}
}

// Estimate validates req and prices it.
func Estimate(req Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := ResolveRegion(req.Address, req.StateCode)
	factors, count := pricing.DeriveFactors(req.PitchComplexity, req.PropertyAccess, req.RoofConditions)
	area := float64(req.RoofArea)

	var (
		est pricing.Estimate
		err error
	)
	if res.Region == RegionUS {
		material := pricing.ResolveUSMaterial(req.MaterialPreference, req.RoofType)
		est, err = pricing.EstimateUSState(area, string(material), res.Code, factors)
	} else {
		material := pricing.ResolveCatalogMaterial(req.MaterialPreference, req.RoofType)
		est, err = pricing.EstimateCatalog(area, material, req.PitchComplexity, factors)
	}
	if err != nil {
		return nil, eris.Wrap(err, "quote: estimate")
	}

	out := &Response{
		LowEstimate:  est.LowEstimate,
		HighEstimate: est.HighEstimate,
		PricePerSqFt: roundTo(est.PricePerSqFt, 2),
		Material: Material{
			ID:     est.MaterialID,
			Name:   est.MaterialName,
			NameFr: est.MaterialNameFr,
		},
		Region:          res.Region,
		RegionName:      est.RegionName,
		Currency:        est.Currency,
		ComplexityScore: roundTo(est.Combined, 3),
		Factors: Factors{
			Complexity:     factors.Complexity,
			Access:         factors.Access,
			Conditions:     factors.Condition,
			Combined:       roundTo(factors.Combined(), 3),
			ConditionCount: count,
		},
		NationalAverage: est.NationalAvg,
		UnableToPrice:   est.UnableToPrice(),
		Address:         res.Parsed,
	}
	if res.Region == RegionUS {
		out.StateCode = res.Code
	} else {
		// Every province prices from the one catalog; RegionName names it.
		out.Province = res.Code
	}
	return out, nil
}

func roundTo(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
