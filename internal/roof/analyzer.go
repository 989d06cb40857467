// Package roof produces a roof analysis for an address from satellite
// building data, falling back to a fixed heuristic when that is unavailable.
package roof

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/roofquote/internal/cost"
	"github.com/sells-group/roofquote/internal/pricing"
	"github.com/sells-group/roofquote/pkg/anthropic"
	"github.com/sells-group/roofquote/pkg/geocode"
	"github.com/sells-group/roofquote/pkg/solar"
)

// Analysis sources.
const (
	SourceSolar     = "solar"
	SourceHeuristic = "heuristic"
)

// Heuristic defaults used when no building data is available.
const (
	HeuristicAreaSqFt   = 2000
	HeuristicComplexity = "moderate"
)

// Analysis describes a roof.
type Analysis struct {
	Address         string  `json:"address"`
	Latitude        float64 `json:"latitude,omitempty"`
	Longitude       float64 `json:"longitude,omitempty"`
	StateCode       string  `json:"stateCode,omitempty"`
	RoofAreaSqFt    float64 `json:"roofArea"`
	SegmentCount    int     `json:"segmentCount"`
	AveragePitch    float64 `json:"averagePitchDegrees"`
	PitchComplexity string  `json:"pitchComplexity"`
	RoofType        string  `json:"roofType"`
	ImageryDate     string  `json:"imageryDate,omitempty"`
	ImageryQuality  string  `json:"imageryQuality,omitempty"`
	Source          string  `json:"source"`
	Summary         string  `json:"summary,omitempty"`
	// CostUSD is the paid-API spend behind this analysis.
	CostUSD float64 `json:"-"`
}

// Heuristic returns the fallback analysis for address.
func Heuristic(address string) *Analysis {
	return &Analysis{
		Address:         address,
		RoofAreaSqFt:    HeuristicAreaSqFt,
		PitchComplexity: HeuristicComplexity,
		RoofType:        pricing.RoofTypeSloped,
		Source:          SourceHeuristic,
	}
}

// PitchComplexity classifies a roof from its segment count and mean pitch.
func PitchComplexity(segments int, pitchDegrees float64) string {
	switch {
	case segments > 8 || pitchDegrees > 35:
		return "complex"
	case segments <= 4 && pitchDegrees < 20:
		return "simple"
	default:
		return "moderate"
	}
}

// RoofType returns flat for roofs averaging under 10 degrees of pitch.
func RoofType(pitchDegrees float64) string {
	if pitchDegrees < 10 {
		return pricing.RoofTypeFlat
	}
	return pricing.RoofTypeSloped
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSummarizer enables the written summary.
func WithSummarizer(c anthropic.Client, model string, maxTokens int64) Option {
	return func(a *Analyzer) {
		a.ai = c
		a.model = model
		a.maxTokens = maxTokens
	}
}

// WithCosts sets the rates used to price each analysis.
func WithCosts(c *cost.Calculator) Option {
	return func(a *Analyzer) { a.costs = c }
}

// Analyzer runs roof analysis.
type Analyzer struct {
	geo       geocode.Client
	solar     solar.Client
	ai        anthropic.Client
	model     string
	maxTokens int64
	costs     *cost.Calculator
}

// NewAnalyzer creates an Analyzer. solarClient may be nil, in which case
// every analysis is heuristic.
func NewAnalyzer(geo geocode.Client, solarClient solar.Client, opts ...Option) *Analyzer {
	a := &Analyzer{
		geo:       geo,
		solar:     solarClient,
		maxTokens: 200,
		costs:     cost.NewCalculator(cost.DefaultRates()),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze never fails for lookup problems: any geocode or imagery failure
// yields the heuristic analysis. Only an empty address is an error.
func (a *Analyzer) Analyze(ctx context.Context, address string) (*Analysis, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, eris.New("roof: address is required")
	}

	out, spent := a.measure(ctx, address)
	if a.ai != nil {
		var summaryCost float64
		out.Summary, summaryCost = a.summarize(ctx, out)
		spent += summaryCost
	}
	out.CostUSD = spent
	if spent > 0 {
		zap.L().Debug("roof: analysis cost",
			zap.String("source", out.Source),
			zap.Float64("cost_usd", spent),
		)
	}
	return out, nil
}

// measure returns the analysis and the solar spend it took.
func (a *Analyzer) measure(ctx context.Context, address string) (*Analysis, float64) {
	log := zap.L().With(zap.String("address", address))

	if a.geo == nil || a.solar == nil {
		return Heuristic(address), 0
	}

	loc, err := a.geo.Geocode(ctx, address)
	if err != nil {
		log.Warn("roof: geocode failed, using heuristic", zap.Error(err))
		return Heuristic(address), 0
	}
	if !loc.Matched {
		log.Info("roof: address not geocoded, using heuristic")
		return Heuristic(address), 0
	}

	fallback := Heuristic(address)
	fallback.Latitude, fallback.Longitude, fallback.StateCode = loc.Latitude, loc.Longitude, loc.StateCode

	b, err := a.solar.FindClosest(ctx, loc.Latitude, loc.Longitude)
	spent := a.costs.SolarLookup()
	if err != nil {
		if eris.Is(err, solar.ErrNotFound) {
			log.Info("roof: no building data, using heuristic")
		} else {
			log.Warn("roof: solar lookup failed, using heuristic", zap.Error(err))
		}
		return fallback, spent
	}

	area := b.RoofAreaSqFt()
	if area <= 0 {
		log.Info("roof: building has no roof area, using heuristic")
		return fallback, spent
	}

	pitch := b.AveragePitch()
	segments := len(b.SolarPotential.RoofSegmentStats)
	return &Analysis{
		Address:         address,
		Latitude:        loc.Latitude,
		Longitude:       loc.Longitude,
		StateCode:       loc.StateCode,
		RoofAreaSqFt:    math.Round(area),
		SegmentCount:    segments,
		AveragePitch:    math.Round(pitch*10) / 10,
		PitchComplexity: PitchComplexity(segments, pitch),
		RoofType:        RoofType(pitch),
		ImageryDate:     b.ImageryDate.String(),
		ImageryQuality:  b.ImageryQuality,
		Source:          SourceSolar,
	}, spent
}

const summarySystem = "You write short, friendly notes for homeowners requesting a roof replacement quote. " +
	"Write exactly two sentences. Do not mention prices."

func (a *Analyzer) summarize(ctx context.Context, an *Analysis) (string, float64) {
	prompt := fmt.Sprintf(
		"Roof at %s: about %s square feet, %s roof, %s pitch complexity across %d segments (data source: %s).",
		an.Address, humanize.Comma(int64(an.RoofAreaSqFt)), an.RoofType, an.PitchComplexity,
		an.SegmentCount, an.Source,
	)

	resp, err := a.ai.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System:    summarySystem,
		Messages:  []anthropic.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		zap.L().Warn("roof: summary failed", zap.Error(err))
		return "", 0
	}
	resp.Usage.Log(a.model, "roof_summary")
	return resp.Text(), a.costs.Claude(a.model, resp.Usage.InputTokens, resp.Usage.OutputTokens)
}
