// Package tracking sends server-side conversion events to a Conversions API
// style endpoint.
package tracking

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/roofquote/internal/resilience"
)

const defaultBaseURL = "https://graph.facebook.com/v19.0"

// Event names.
const (
	EventLead        = "Lead"
	EventViewContent = "ViewContent"
)

// Event is a single conversion event.
type Event struct {
	Name      string
	ID        string
	Time      time.Time
	Email     string
	Phone     string
	StateCode string
	Value     float64
	Currency  string
	SourceURL string
	ClientIP  string
	UserAgent string
}

// Client sends conversion events.
type Client interface {
	Track(ctx context.Context, ev Event) error
}

// Config configures the tracking client.
type Config struct {
	PixelID     string
	AccessToken string
	BaseURL     string
	HTTPClient  *http.Client
}

// NewClient returns an HTTP client, or a no-op client when the pixel or token
// is missing.
func NewClient(cfg Config) Client {
	if cfg.PixelID == "" || cfg.AccessToken == "" {
		return noopClient{}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &httpClient{cfg: cfg}
}

type noopClient struct{}

func (noopClient) Track(context.Context, Event) error { return nil }

// IsNoop reports whether c drops every event.
func IsNoop(c Client) bool {
	_, ok := c.(noopClient)
	return ok
}

type httpClient struct {
	cfg Config
}

type userData struct {
	Email     []string `json:"em,omitempty"`
	Phone     []string `json:"ph,omitempty"`
	State     []string `json:"st,omitempty"`
	ClientIP  string   `json:"client_ip_address,omitempty"`
	UserAgent string   `json:"client_user_agent,omitempty"`
}

type customData struct {
	Value    float64 `json:"value,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

type wireEvent struct {
	EventName      string      `json:"event_name"`
	EventTime      int64       `json:"event_time"`
	EventID        string      `json:"event_id"`
	ActionSource   string      `json:"action_source"`
	EventSourceURL string      `json:"event_source_url,omitempty"`
	UserData       userData    `json:"user_data"`
	CustomData     *customData `json:"custom_data,omitempty"`
}

type payload struct {
	Data []wireEvent `json:"data"`
}

func (c *httpClient) Track(ctx context.Context, ev Event) error {
	body, err := json.Marshal(payload{Data: []wireEvent{toWire(ev)}})
	if err != nil {
		return eris.Wrap(err, "tracking: marshal event")
	}

	endpoint := fmt.Sprintf("%s/%s/events?access_token=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(c.cfg.PixelID), url.QueryEscape(c.cfg.AccessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return eris.Wrap(err, "tracking: create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return eris.Wrap(err, "tracking: send event")
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := resilience.CheckStatus("tracking", resp.StatusCode); err != nil {
		return err
	}
	zap.L().Debug("tracking: event sent", zap.String("event", ev.Name), zap.String("event_id", ev.ID))
	return nil
}

func toWire(ev Event) wireEvent {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	w := wireEvent{
		EventName:      ev.Name,
		EventTime:      ev.Time.Unix(),
		EventID:        ev.ID,
		ActionSource:   "website",
		EventSourceURL: ev.SourceURL,
		UserData: userData{
			ClientIP:  ev.ClientIP,
			UserAgent: ev.UserAgent,
		},
	}
	if h := Hash(ev.Email); h != "" {
		w.UserData.Email = []string{h}
	}
	if h := Hash(digitsOnly(ev.Phone)); h != "" {
		w.UserData.Phone = []string{h}
	}
	if h := Hash(ev.StateCode); h != "" {
		w.UserData.State = []string{h}
	}
	if ev.Value > 0 {
		w.CustomData = &customData{Value: ev.Value, Currency: ev.Currency}
	}
	return w
}

// Hash normalizes s (trimmed, lowercase) and returns its hex SHA-256, or ""
// for empty input.
func Hash(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
