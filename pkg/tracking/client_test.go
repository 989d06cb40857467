package tracking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/roofquote/internal/resilience"
)

func TestNewClient_NoopWhenUnconfigured(t *testing.T) {
	assert.True(t, IsNoop(NewClient(Config{})))
	assert.True(t, IsNoop(NewClient(Config{PixelID: "123"})))
	assert.True(t, IsNoop(NewClient(Config{AccessToken: "tok"})))
	assert.False(t, IsNoop(NewClient(Config{PixelID: "123", AccessToken: "tok"})))

	assert.NoError(t, NewClient(Config{}).Track(context.Background(), Event{Name: EventLead}))
}

func TestHash(t *testing.T) {
	assert.Empty(t, Hash("  "))
	assert.Equal(t, Hash("jane@example.com"), Hash("  Jane@Example.COM "))
	assert.Len(t, Hash("x"), 64)
}

func TestTrack_PostsHashedEvent(t *testing.T) {
	var got payload
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/px1/events", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("access_token"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"events_received":1}`))
	}))
	defer ts.Close()

	c := NewClient(Config{PixelID: "px1", AccessToken: "secret", BaseURL: ts.URL})
	err := c.Track(context.Background(), Event{
		Name:     EventLead,
		ID:       "lead-1",
		Time:     time.Unix(1700000000, 0),
		Email:    "Jane@Example.com",
		Phone:    "(512) 555-0100",
		Value:    11550,
		Currency: "USD",
	})
	require.NoError(t, err)

	require.Len(t, got.Data, 1)
	ev := got.Data[0]
	assert.Equal(t, EventLead, ev.EventName)
	assert.Equal(t, "lead-1", ev.EventID)
	assert.Equal(t, int64(1700000000), ev.EventTime)
	assert.Equal(t, "website", ev.ActionSource)
	assert.Equal(t, []string{Hash("jane@example.com")}, ev.UserData.Email)
	assert.Equal(t, []string{Hash("5125550100")}, ev.UserData.Phone)
	require.NotNil(t, ev.CustomData)
	assert.InDelta(t, 11550, ev.CustomData.Value, 0.001)
	assert.Equal(t, "USD", ev.CustomData.Currency)
}

func TestTrack_DefaultsEventID(t *testing.T) {
	w := toWire(Event{Name: EventViewContent})
	assert.NotEmpty(t, w.EventID)
	assert.NotZero(t, w.EventTime)
	assert.Nil(t, w.CustomData)
	assert.Empty(t, w.UserData.Email)
}

func TestTrack_ServerErrorIsTransient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewClient(Config{PixelID: "px1", AccessToken: "secret", BaseURL: ts.URL})
	err := c.Track(context.Background(), Event{Name: EventLead})
	require.Error(t, err)
	assert.True(t, resilience.IsTransient(err))
}

func TestTrack_BadRequestIsPermanent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	c := NewClient(Config{PixelID: "px1", AccessToken: "secret", BaseURL: ts.URL})
	err := c.Track(context.Background(), Event{Name: EventLead})
	require.Error(t, err)
	assert.False(t, resilience.IsTransient(err))
}
