package model

import (
	"net/mail"
	"strings"
	"time"

	"github.com/sells-group/roofquote/internal/quote"
	"github.com/sells-group/roofquote/internal/roof"
)

// Lead is a homeowner's contact request with the quote they were shown.
type Lead struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Address   string            `json:"address"`
	Answers   map[string]string `json:"answers,omitempty"`
	Quote     *quote.Response   `json:"quote,omitempty"`
	Analysis  *roof.Analysis    `json:"analysis,omitempty"`
	Source    string            `json:"source,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Validate requires a name, a plausible email, and some way to reach the
// homeowner.
func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return &quote.ValidationError{Field: "name", Reason: "is required"}
	}
	email := strings.TrimSpace(l.Email)
	if email == "" && strings.TrimSpace(l.Phone) == "" {
		return &quote.ValidationError{Field: "email", Reason: "or phone is required"}
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil || !strings.Contains(email, "@") {
			return &quote.ValidationError{Field: "email", Reason: "is not a valid address"}
		}
	}
	return nil
}

// DeliveryStatus is the outcome of sending a lead to one sink.
type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
)

// DeliveryResult records one sink's outcome for a lead.
type DeliveryResult struct {
	Sink       string         `json:"sink"`
	Status     DeliveryStatus `json:"status"`
	Attempts   int            `json:"attempts"`
	Error      string         `json:"error,omitempty"`
	DLQID      string         `json:"dlqId,omitempty"`
	DurationMs int64          `json:"durationMs"`
}

// LeadRecord is a stored lead and its delivery results.
type LeadRecord struct {
	Lead       Lead             `json:"lead"`
	Deliveries []DeliveryResult `json:"deliveries"`
}

// Failed counts deliveries that did not succeed.
func (r LeadRecord) Failed() int {
	n := 0
	for _, d := range r.Deliveries {
		if d.Status != DeliveryDelivered {
			n++
		}
	}
	return n
}

// LeadFilter specifies criteria for listing leads.
type LeadFilter struct {
	Source string    `json:"source,omitempty"`
	Since  time.Time `json:"since,omitempty"`
	Limit  int       `json:"limit,omitempty"`
	Offset int       `json:"offset,omitempty"`
}
