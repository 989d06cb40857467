// Package geocode resolves free-form addresses to coordinates via the Census
// Geocoder (primary) and Google (fallback).
package geocode

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Sources reported on results.
const (
	SourceCensus = "census"
	SourceGoogle = "google"
)

// Client geocodes addresses.
type Client interface {
	Geocode(ctx context.Context, address string) (*Result, error)
}

// Result holds the geocoding output for an address.
type Result struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formattedAddress,omitempty"`
	City             string  `json:"city,omitempty"`
	StateCode        string  `json:"stateCode,omitempty"`
	PostalCode       string  `json:"postalCode,omitempty"`
	Country          string  `json:"country,omitempty"`
	Source           string  `json:"source"`  // "census" or "google"
	Quality          string  `json:"quality"` // "rooftop", "range", "centroid", "approximate"
	Matched          bool    `json:"matched"`
}

// Option configures the geocoder.
type Option func(*geocoder)

// WithGoogleAPIKey enables the Google Geocoding API as a fallback.
func WithGoogleAPIKey(key string) Option {
	return func(g *geocoder) {
		g.googleKey = key
	}
}

// WithHTTPClient sets the HTTP client used for both providers.
func WithHTTPClient(hc *http.Client) Option {
	return func(g *geocoder) {
		g.httpClient = hc
	}
}

// WithRateLimit sets the shared requests-per-second limit.
func WithRateLimit(rps float64) Option {
	return func(g *geocoder) {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

type geocoder struct {
	httpClient *http.Client
	googleKey  string
	limiter    *rate.Limiter
}

// NewClient creates a geocoding Client with the given options.
func NewClient(opts ...Option) Client {
	g := &geocoder{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(10, 10),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Geocode tries Census first, then Google when configured. An address no
// provider can match returns an unmatched Result, not an error. An error is
// returned only when every attempted provider failed outright.
func (g *geocoder) Geocode(ctx context.Context, address string) (*Result, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, eris.New("geocode: empty address")
	}

	result, censusErr := g.geocodeCensus(ctx, address)
	if censusErr == nil && result.Matched {
		return result, nil
	}
	if censusErr != nil {
		zap.L().Debug("geocode: census failed", zap.Error(censusErr))
	}

	if g.googleKey == "" {
		if censusErr != nil {
			return nil, censusErr
		}
		return &Result{Matched: false}, nil
	}

	googleResult, googleErr := g.geocodeGoogle(ctx, address)
	switch {
	case googleErr == nil && googleResult.Matched:
		return googleResult, nil
	case googleErr != nil && censusErr != nil:
		return nil, eris.Wrap(googleErr, "geocode: all providers failed")
	default:
		return &Result{Matched: false}, nil
	}
}
