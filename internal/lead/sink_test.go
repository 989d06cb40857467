package lead

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/roofquote/internal/address"
	"github.com/sells-group/roofquote/internal/quote"
	"github.com/sells-group/roofquote/internal/resilience"
)

func TestWebhookSink_SignsBody(t *testing.T) {
	var gotBody []byte
	var gotSig string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotSig = r.Header.Get(SignatureHeader)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	l := testLead()
	l.ID = "lead-1"
	s := NewWebhookSink("crm", ts.URL, "s3cret")
	require.NoError(t, s.Deliver(context.Background(), l))

	assert.Equal(t, "crm", s.Name())
	assert.Equal(t, Sign("s3cret", gotBody), gotSig)

	var p WebhookPayload
	require.NoError(t, json.Unmarshal(gotBody, &p))
	assert.Equal(t, EventLeadCreated, p.Event)
	assert.Equal(t, "lead-1", p.Lead.ID)
	assert.Equal(t, "$11,550 - $18,711 USD", p.Summary)
}

func TestWebhookSink_NoSecretNoSignature(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(SignatureHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	s := NewWebhookSink("", ts.URL, "")
	assert.Equal(t, "webhook", s.Name())
	require.NoError(t, s.Deliver(context.Background(), testLead()))
}

func TestWebhookSink_StatusClassification(t *testing.T) {
	tests := []struct {
		status    int
		transient bool
	}{
		{http.StatusServiceUnavailable, true},
		{http.StatusTooManyRequests, true},
		{http.StatusBadRequest, false},
		{http.StatusUnauthorized, false},
	}
	for _, tt := range tests {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
		}))
		err := NewWebhookSink("crm", ts.URL, "").Deliver(context.Background(), testLead())
		ts.Close()

		require.Error(t, err, tt.status)
		assert.Equal(t, tt.transient, resilience.IsTransient(err), tt.status)
	}
}

func TestSign(t *testing.T) {
	sig := Sign("key", []byte("body"))
	assert.Len(t, sig, len("sha256=")+64)
	assert.Equal(t, sig, Sign("key", []byte("body")))
	assert.NotEqual(t, sig, Sign("other", []byte("body")))
}

type fakeNotion struct {
	created []*notionapi.PageCreateRequest
}

func (f *fakeNotion) QueryDatabase(_ context.Context, _ string, _ *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error) {
	return &notionapi.DatabaseQueryResponse{}, nil
}

func (f *fakeNotion) CreatePage(_ context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	f.created = append(f.created, req)
	return &notionapi.Page{ID: "page-1"}, nil
}

func TestNotionSink_Deliver(t *testing.T) {
	fn := &fakeNotion{}
	s := NewNotionSink(fn, "db-1")
	assert.Equal(t, "notion", s.Name())

	l := testLead()
	l.ID = "lead-1"
	require.NoError(t, s.Deliver(context.Background(), l))

	require.Len(t, fn.created, 1)
	req := fn.created[0]
	assert.Equal(t, notionapi.DatabaseID("db-1"), req.Parent.DatabaseID)
	low, ok := req.Properties["Low Estimate"].(notionapi.NumberProperty)
	require.True(t, ok)
	assert.InDelta(t, 11550, low.Number, 0.001)
}

func TestNotionSink_MissingDatabase(t *testing.T) {
	err := NewNotionSink(&fakeNotion{}, "").Deliver(context.Background(), testLead())
	require.Error(t, err)
}

func TestSalesforceInput(t *testing.T) {
	l := testLead()
	l.ID = "lead-1"
	in := SalesforceInput(l)

	assert.Equal(t, "lead-1", in.ExternalID)
	assert.Equal(t, "Dana", in.FirstName)
	assert.Equal(t, "Smith", in.LastName)
	assert.Equal(t, "100 Main St, Austin, TX 78701", in.Street)
	assert.Equal(t, "TX", in.State)
	assert.Equal(t, "78701", in.PostalCode)
	assert.Equal(t, "website", in.LeadSource)
	assert.Equal(t, "$11,550 - $18,711 USD, Asphalt Shingles", in.Description)
}

func TestSalesforceInput_PrefersQuoteAddress(t *testing.T) {
	l := testLead()
	l.Source = ""
	l.Quote.Address = address.Parsed{City: "Laval", StateCode: "QC", Country: address.CountryCA}
	in := SalesforceInput(l)
	assert.Equal(t, "Laval", in.City)
	assert.Equal(t, "QC", in.State)
	assert.Equal(t, address.CountryCA, in.Country)
	assert.Equal(t, "Web", in.LeadSource)
}

func TestEstimateBand(t *testing.T) {
	assert.Empty(t, EstimateBand(nil))
	assert.Empty(t, EstimateBand(&quote.Response{UnableToPrice: true}))
	assert.Equal(t, "$4,192 - $5,123 CAD", EstimateBand(&quote.Response{LowEstimate: 4192, HighEstimate: 5123, Currency: "CAD"}))
	assert.Equal(t, "$900 - $1,200", EstimateBand(&quote.Response{LowEstimate: 900, HighEstimate: 1200}))
}
