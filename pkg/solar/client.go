// Package solar reads building roof geometry from the Google Solar API.
package solar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/roofquote/internal/resilience"
)

const (
	defaultBaseURL  = "https://solar.googleapis.com/v1"
	findClosestPath = "/buildingInsights:findClosest"
	defaultQuality  = "MEDIUM"
	sqFtPerSqMeter  = 10.7639
)

// ErrNotFound is returned when no building is close enough to the location.
var ErrNotFound = eris.New("solar: no building found")

// Client looks up building insights.
type Client interface {
	FindClosest(ctx context.Context, lat, lng float64) (*BuildingInsights, error)
}

// BuildingInsights is the subset of the findClosest response used for roof
// analysis.
type BuildingInsights struct {
	Name           string         `json:"name"`
	ImageryDate    ImageryDate    `json:"imageryDate"`
	ImageryQuality string         `json:"imageryQuality"`
	SolarPotential SolarPotential `json:"solarPotential"`
}

// ImageryDate is the capture date of the imagery.
type ImageryDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String formats the date as YYYY-MM-DD, or "" when unset.
func (d ImageryDate) String() string {
	if d.Year == 0 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// SolarPotential holds roof statistics.
type SolarPotential struct {
	WholeRoofStats   SizeStats     `json:"wholeRoofStats"`
	RoofSegmentStats []RoofSegment `json:"roofSegmentStats"`
}

// SizeStats is an area measurement.
type SizeStats struct {
	AreaMeters2       float64 `json:"areaMeters2"`
	GroundAreaMeters2 float64 `json:"groundAreaMeters2"`
}

// RoofSegment is one planar section of the roof.
type RoofSegment struct {
	PitchDegrees   float64   `json:"pitchDegrees"`
	AzimuthDegrees float64   `json:"azimuthDegrees"`
	Stats          SizeStats `json:"stats"`
}

// RoofAreaSqFt converts the whole-roof area to square feet.
func (b *BuildingInsights) RoofAreaSqFt() float64 {
	return b.SolarPotential.WholeRoofStats.AreaMeters2 * sqFtPerSqMeter
}

// AveragePitch returns the area-weighted mean pitch across segments. Segments
// without an area count equally.
func (b *BuildingInsights) AveragePitch() float64 {
	segs := b.SolarPotential.RoofSegmentStats
	if len(segs) == 0 {
		return 0
	}
	var sum, weight float64
	for _, s := range segs {
		w := s.Stats.AreaMeters2
		if w <= 0 {
			w = 1
		}
		sum += s.PitchDegrees * w
		weight += w
	}
	return sum / weight
}

// Option configures the client.
type Option func(*client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *client) { c.baseURL = u }
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) { c.httpClient = hc }
}

// WithRequiredQuality sets the minimum imagery quality (LOW, MEDIUM, HIGH).
func WithRequiredQuality(q string) Option {
	return func(c *client) {
		if q != "" {
			c.quality = q
		}
	}
}

// WithRateLimit sets the requests-per-second limit.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithRetry sets the retry policy for transient failures.
func WithRetry(cfg resilience.RetryConfig) Option {
	return func(c *client) { c.retry = cfg }
}

type client struct {
	apiKey     string
	baseURL    string
	quality    string
	httpClient *http.Client
	limiter    *rate.Limiter
	retry      resilience.RetryConfig
}

// NewClient creates a Solar API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		quality:    defaultQuality,
		httpClient: &http.Client{Timeout: 20 * time.Second},
		limiter:    rate.NewLimiter(5, 5),
		retry:      resilience.DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.retry.OnRetry = resilience.RetryLogger("solar", "findClosest")
	return c
}

// FindClosest returns the building nearest to lat/lng. ErrNotFound is
// returned when the API has no building there.
func (c *client) FindClosest(ctx context.Context, lat, lng float64) (*BuildingInsights, error) {
	return resilience.DoVal(ctx, c.retry, func(ctx context.Context) (*BuildingInsights, error) {
		return c.findClosest(ctx, lat, lng)
	})
}

func (c *client) findClosest(ctx context.Context, lat, lng float64) (*BuildingInsights, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "solar: rate limit")
	}

	params := url.Values{
		"location.latitude":  {strconv.FormatFloat(lat, 'f', 6, 64)},
		"location.longitude": {strconv.FormatFloat(lng, 'f', 6, 64)},
		"requiredQuality":    {c.quality},
		"key":                {c.apiKey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+findClosestPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "solar: build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "solar: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if err := resilience.CheckStatus("solar", resp.StatusCode); err != nil {
		return nil, err
	}

	var out BuildingInsights
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, eris.Wrap(err, "solar: parse response")
	}
	return &out, nil
}
