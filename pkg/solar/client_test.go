package solar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/roofquote/internal/resilience"
)

const insightsJSON = `{
  "name": "buildings/ChIJ123",
  "imageryDate": {"year": 2023, "month": 7, "day": 4},
  "imageryQuality": "HIGH",
  "solarPotential": {
    "wholeRoofStats": {"areaMeters2": 185.8, "groundAreaMeters2": 160.2},
    "roofSegmentStats": [
      {"pitchDegrees": 20, "azimuthDegrees": 180, "stats": {"areaMeters2": 100}},
      {"pitchDegrees": 30, "azimuthDegrees": 0, "stats": {"areaMeters2": 50}}
    ]
  }
}`

func fastRetry() resilience.RetryConfig {
	return resilience.RetryConfig{MaxAttempts: 3, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond}
}

func TestFindClosest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/buildingInsights:findClosest", r.URL.Path)
		assert.Equal(t, "33.493600", r.URL.Query().Get("location.latitude"))
		assert.Equal(t, "-117.148400", r.URL.Query().Get("location.longitude"))
		assert.Equal(t, "HIGH", r.URL.Query().Get("requiredQuality"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(insightsJSON))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL), WithRequiredQuality("HIGH"), WithRetry(fastRetry()))
	b, err := c.FindClosest(context.Background(), 33.4936, -117.1484)
	require.NoError(t, err)

	assert.Equal(t, "HIGH", b.ImageryQuality)
	assert.Equal(t, "2023-07-04", b.ImageryDate.String())
	assert.InDelta(t, 185.8*10.7639, b.RoofAreaSqFt(), 1e-9)
	assert.InDelta(t, (20.0*100+30.0*50)/150, b.AveragePitch(), 1e-9)
	assert.Len(t, b.SolarPotential.RoofSegmentStats, 2)
}

func TestFindClosest_NotFound(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL), WithRetry(fastRetry()))
	_, err := c.FindClosest(context.Background(), 1, 2)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, 1, calls)
}

func TestFindClosest_RetriesTransient(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(insightsJSON))
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL), WithRetry(fastRetry()))
	b, err := c.FindClosest(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "buildings/ChIJ123", b.Name)
	assert.Equal(t, 3, calls)
}

func TestFindClosest_PermanentError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL), WithRetry(fastRetry()))
	_, err := c.FindClosest(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, 1, calls)
}

func TestAveragePitch_NoSegments(t *testing.T) {
	b := &BuildingInsights{}
	assert.Zero(t, b.AveragePitch())
	assert.Empty(t, b.ImageryDate.String())
}

func TestAveragePitch_ZeroAreaSegmentsCountEqually(t *testing.T) {
	b := &BuildingInsights{SolarPotential: SolarPotential{RoofSegmentStats: []RoofSegment{
		{PitchDegrees: 10}, {PitchDegrees: 30},
	}}}
	assert.InDelta(t, 20, b.AveragePitch(), 1e-9)
}
