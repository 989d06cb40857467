package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/roofquote/internal/config"
	"github.com/sells-group/roofquote/internal/model"
	"github.com/sells-group/roofquote/internal/pricing"
	"github.com/sells-group/roofquote/internal/quote"
	"github.com/sells-group/roofquote/internal/roof"
	"github.com/sells-group/roofquote/pkg/tracking"
)

type fakeAnalyzer struct {
	panicWith any
}

func (f *fakeAnalyzer) Analyze(_ context.Context, addr string) (*roof.Analysis, error) {
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	return roof.Heuristic(addr), nil
}

type fakeDispatcher struct {
	mu   sync.Mutex
	got  []model.Lead
	err  error
	keep bool
}

func (f *fakeDispatcher) Dispatch(_ context.Context, l model.Lead) (*model.LeadRecord, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.got = append(f.got, l)
	f.mu.Unlock()
	l.ID = "lead-1"
	rec := &model.LeadRecord{
		Lead:       l,
		Deliveries: []model.DeliveryResult{{Sink: "crm", Status: model.DeliveryDelivered, Attempts: 1}},
	}
	if f.err != nil && !f.keep {
		return nil, f.err
	}
	return rec, f.err
}

type fakeTracker struct {
	events chan tracking.Event
}

func (f *fakeTracker) Track(_ context.Context, ev tracking.Event) error {
	f.events <- ev
	return nil
}

func newTestServer(t *testing.T) (*Server, *fakeDispatcher, *fakeTracker) {
	t.Helper()
	d := &fakeDispatcher{}
	tr := &fakeTracker{events: make(chan tracking.Event, 4)}
	s := New(config.ServerConfig{AllowedOrigins: []string{"*"}, WriteTimeoutSecs: 5}, &fakeAnalyzer{}, d, tr)
	return s, d, tr
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func waitEvent(t *testing.T, tr *fakeTracker) tracking.Event {
	t.Helper()
	select {
	case ev := <-tr.events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no tracking event")
		return tracking.Event{}
	}
}

func TestHealth(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestEstimate(t *testing.T) {
	s, _, tr := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/estimate", map[string]any{
		"roofArea":           "2000",
		"materialPreference": "asphalt",
		"address":            "44932 Bellflower Ln, Temecula, CA 92592",
		"pitchComplexity":    "moderate",
		"propertyAccess":     "easy",
		"roofConditions":     []string{"moss"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp quote.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11550), resp.LowEstimate)
	assert.Equal(t, int64(18711), resp.HighEstimate)
	assert.Equal(t, quote.RegionUS, resp.Region)
	assert.Equal(t, "CA", resp.StateCode)

	ev := waitEvent(t, tr)
	assert.Equal(t, tracking.EventViewContent, ev.Name)
	assert.InDelta(t, 11550, ev.Value, 0.001)
}

func TestEstimate_ValidationErrors(t *testing.T) {
	s, _, _ := newTestServer(t)
	tests := []struct {
		name string
		body any
		want string
	}{
		{"missing area", map[string]any{"materialPreference": "metal", "address": "Austin, TX"}, "roofArea is required"},
		{"negative area", map[string]any{"roofArea": -5, "materialPreference": "metal", "address": "Austin, TX"}, "roofArea must be a positive number"},
		{"non-numeric area", map[string]any{"roofArea": "big", "materialPreference": "metal", "address": "Austin, TX"}, "roofArea must be a number"},
		{"bad pitch", map[string]any{"roofArea": 1500, "materialPreference": "metal", "address": "Austin, TX", "pitchComplexity": "vertical"}, "pitchComplexity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/estimate", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			e := decodeError(t, rec)
			assert.Equal(t, CodeValidation, e.Code)
			assert.Contains(t, e.Message, tt.want)
		})
	}
}

func TestEstimate_InvalidJSON(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/estimate", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeInvalidJSON, decodeError(t, rec).Code)
}

func TestParseAddress(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/address/parse", map[string]string{"address": "100 Main St, Austin, TX 78701"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ParseAddressResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "TX", resp.Parsed.StateCode)
	assert.Equal(t, "78701", resp.Parsed.PostalCode)
	assert.Equal(t, quote.RegionUS, resp.Region)
	assert.Equal(t, "TX", resp.RegionCode)

	rec = do(t, s, http.MethodPost, "/api/address/parse", map[string]string{"address": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoofAnalysis(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/roof-analysis", map[string]string{"address": "100 Main St, Austin, TX"})
	require.Equal(t, http.StatusOK, rec.Code)

	var an roof.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &an))
	assert.Equal(t, roof.SourceHeuristic, an.Source)
	assert.InDelta(t, roof.HeuristicAreaSqFt, an.RoofAreaSqFt, 0.001)

	rec = do(t, s, http.MethodPost, "/api/roof-analysis", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecoverer_ReturnsGeneric500(t *testing.T) {
	s := New(config.ServerConfig{}, &fakeAnalyzer{panicWith: "nil map write"}, &fakeDispatcher{}, nil)
	rec := do(t, s, http.MethodPost, "/api/roof-analysis", map[string]string{"address": "x"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	e := decodeError(t, rec)
	assert.Equal(t, CodeInternal, e.Code)
	assert.Equal(t, "internal server error", e.Message)
	assert.NotContains(t, rec.Body.String(), "nil map")
}

func TestLead_Accepted(t *testing.T) {
	s, d, tr := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/leads", map[string]any{
		"name":    "Dana Smith",
		"email":   "dana@example.com",
		"address": "44932 Bellflower Ln, Temecula, CA 92592",
		"estimate": map[string]any{
			"roofArea":           2000,
			"materialPreference": "asphalt",
			"pitchComplexity":    "moderate",
			"propertyAccess":     "easy",
			"roofConditions":     []string{"moss"},
		},
	})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var resp LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "lead-1", resp.ID)
	assert.Equal(t, "accepted", resp.Status)
	require.NotNil(t, resp.Quote)
	assert.Equal(t, int64(11550), resp.Quote.LowEstimate)
	require.Len(t, resp.Deliveries, 1)
	assert.Equal(t, model.DeliveryDelivered, resp.Deliveries[0].Status)

	require.Len(t, d.got, 1)
	assert.Equal(t, "Dana Smith", d.got[0].Name)
	require.NotNil(t, d.got[0].Quote)

	ev := waitEvent(t, tr)
	assert.Equal(t, tracking.EventLead, ev.Name)
	assert.Equal(t, "lead-1", ev.ID)
	assert.Equal(t, "dana@example.com", ev.Email)
}

func TestLead_Validation(t *testing.T) {
	s, d, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/leads", map[string]any{"email": "dana@example.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidation, decodeError(t, rec).Code)

	rec = do(t, s, http.MethodPost, "/api/leads", map[string]any{
		"name":     "Dana",
		"email":    "dana@example.com",
		"estimate": map[string]any{"roofArea": 0, "materialPreference": "metal"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "estimate:")
	assert.Empty(t, d.got)
}

func TestLead_LogFailureStillAccepted(t *testing.T) {
	d := &fakeDispatcher{err: eris.New("disk full"), keep: true}
	s := New(config.ServerConfig{}, &fakeAnalyzer{}, d, nil)
	rec := do(t, s, http.MethodPost, "/api/leads", map[string]any{"name": "Dana", "phone": "555-0100"})
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestLead_DispatchFailure(t *testing.T) {
	d := &fakeDispatcher{err: eris.New("marshal")}
	s := New(config.ServerConfig{}, &fakeAnalyzer{}, d, nil)
	rec := do(t, s, http.MethodPost, "/api/leads", map[string]any{"name": "Dana", "phone": "555-0100"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPricingStates(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/pricing/states", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var states []pricing.RegionRate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &states))
	assert.Len(t, states, len(pricing.States()))

	rec = do(t, s, http.MethodGet, "/api/pricing/states/tx", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tx pricing.RegionRate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tx))
	assert.Equal(t, "TX", tx.Code)

	rec = do(t, s, http.MethodGet, "/api/pricing/states/zz", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeNotFound, decodeError(t, rec).Code)
}

func TestPricingMaterials(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/pricing/materials", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MaterialsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.US, len(pricing.USMaterials))
	assert.Equal(t, "asphalt_shingles", resp.US[0].ID)
	assert.Equal(t, "Asphalt Shingles", resp.US[0].Name)
	assert.Len(t, resp.Catalog, len(pricing.Catalog()))
}

func TestCORSPreflight(t *testing.T) {
	s := New(config.ServerConfig{AllowedOrigins: []string{"https://roofs.example.com"}}, &fakeAnalyzer{}, &fakeDispatcher{}, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/estimate", nil)
	req.Header.Set("Origin", "https://roofs.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, "https://roofs.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
