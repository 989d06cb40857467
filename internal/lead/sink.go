// Package lead delivers captured homeowner leads to every configured sink
// and parks failed deliveries in the dead-letter queue.
package lead

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/roofquote/internal/address"
	"github.com/sells-group/roofquote/internal/model"
	"github.com/sells-group/roofquote/internal/resilience"
	"github.com/sells-group/roofquote/pkg/notion"
	"github.com/sells-group/roofquote/pkg/salesforce"
)

// SignatureHeader carries the HMAC of a webhook body when a secret is set.
const SignatureHeader = "X-Roofquote-Signature"

// EventLeadCreated is the webhook event name.
const EventLeadCreated = "lead.created"

// Sink receives leads. Sink names must be unique within a Dispatcher; they
// key dead-letter entries.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, l model.Lead) error
}

var webhookClient = &http.Client{Timeout: 10 * time.Second}

// WebhookSink POSTs leads as JSON.
type WebhookSink struct {
	name   string
	url    string
	secret string
	client *http.Client
}

// NewWebhookSink returns a webhook sink. An empty secret disables signing.
func NewWebhookSink(name, url, secret string) *WebhookSink {
	if name == "" {
		name = "webhook"
	}
	return &WebhookSink{name: name, url: url, secret: secret, client: webhookClient}
}

// WebhookPayload is the body POSTed to webhook sinks.
type WebhookPayload struct {
	Event   string     `json:"event"`
	Lead    model.Lead `json:"lead"`
	Summary string     `json:"summary,omitempty"`
}

func (s *WebhookSink) Name() string { return s.name }

func (s *WebhookSink) Deliver(ctx context.Context, l model.Lead) error {
	body, err := json.Marshal(WebhookPayload{Event: EventLeadCreated, Lead: l, Summary: EstimateBand(l.Quote)})
	if err != nil {
		return eris.Wrap(err, "lead: marshal webhook payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return eris.Wrap(err, "lead: create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	if s.secret != "" {
		req.Header.Set(SignatureHeader, Sign(s.secret, body))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return eris.Wrapf(err, "lead: webhook %s request failed", s.name)
	}
	defer resp.Body.Close() //nolint:errcheck

	return resilience.CheckStatus("lead: webhook "+s.name, resp.StatusCode)
}

// Sign returns "sha256=" followed by the hex HMAC-SHA256 of body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// NotionSink creates a page per lead in a Notion database.
type NotionSink struct {
	client notion.Client
	dbID   string
}

// NewNotionSink returns a sink writing to the database dbID.
func NewNotionSink(client notion.Client, dbID string) *NotionSink {
	return &NotionSink{client: client, dbID: dbID}
}

func (s *NotionSink) Name() string { return "notion" }

func (s *NotionSink) Deliver(ctx context.Context, l model.Lead) error {
	page := notion.LeadPage{
		LeadID:    l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Address:   l.Address,
		Estimate:  EstimateBand(l.Quote),
		Source:    l.Source,
		Submitted: l.CreatedAt,
	}
	if q := l.Quote; q != nil && !q.UnableToPrice {
		page.Low = float64(q.LowEstimate)
		page.High = float64(q.HighEstimate)
		page.Region = q.RegionName
		page.Material = q.Material.Name
	}
	_, err := notion.CreateLeadPage(ctx, s.client, s.dbID, page)
	return err
}

// SalesforceSink inserts a Lead record per lead.
type SalesforceSink struct {
	client salesforce.Client
	object string
}

// NewSalesforceSink returns a sink inserting into object ("Lead" when empty).
func NewSalesforceSink(client salesforce.Client, object string) *SalesforceSink {
	if object == "" {
		object = salesforce.DefaultLeadObject
	}
	return &SalesforceSink{client: client, object: object}
}

func (s *SalesforceSink) Name() string { return "salesforce" }

func (s *SalesforceSink) Deliver(ctx context.Context, l model.Lead) error {
	_, err := salesforce.CreateLead(ctx, s.client, s.object, SalesforceInput(l))
	return err
}

// SalesforceInput maps a lead onto Salesforce Lead fields.
func SalesforceInput(l model.Lead) salesforce.LeadInput {
	first, last := salesforce.SplitName(l.Name)
	parsed := address.Parse(l.Address)
	if l.Quote != nil && !l.Quote.Address.Empty() {
		parsed = l.Quote.Address
	}

	source := l.Source
	if source == "" {
		source = "Web"
	}
	in := salesforce.LeadInput{
		ExternalID:  l.ID,
		FirstName:   first,
		LastName:    last,
		Email:       l.Email,
		Phone:       l.Phone,
		Street:      l.Address,
		City:        parsed.City,
		State:       parsed.StateCode,
		PostalCode:  parsed.PostalCode,
		Country:     parsed.Country,
		LeadSource:  source,
		Description: EstimateBand(l.Quote),
	}
	if l.Quote != nil && l.Quote.Material.Name != "" && in.Description != "" {
		in.Description += ", " + l.Quote.Material.Name
	}
	return in
}
