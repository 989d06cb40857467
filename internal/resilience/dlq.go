package resilience

import (
	"encoding/json"
	"time"
)

// Error types recorded on dead-letter entries.
const (
	ErrorTypeTransient = "transient"
	ErrorTypePermanent = "permanent"
)

// DefaultDLQMaxRetries is how many replays an entry gets before it is left
// for manual review.
const DefaultDLQMaxRetries = 5

// DLQEntry is a lead delivery that failed after in-request retries. Payload
// is the lead exactly as it was sent so a replay delivers the same record.
type DLQEntry struct {
	ID           string          `json:"id"`
	LeadID       string          `json:"lead_id"`
	Sink         string          `json:"sink"`
	Payload      json.RawMessage `json:"payload"`
	Error        string          `json:"error"`
	ErrorType    string          `json:"error_type"`
	RetryCount   int             `json:"retry_count"`
	MaxRetries   int             `json:"max_retries"`
	NextRetryAt  time.Time       `json:"next_retry_at"`
	CreatedAt    time.Time       `json:"created_at"`
	LastFailedAt time.Time       `json:"last_failed_at"`
}

// DLQFilter narrows a dead-letter query.
type DLQFilter struct {
	Sink  string `json:"sink,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// CanRetry reports whether the entry has replays left.
func (e *DLQEntry) CanRetry() bool {
	return e.RetryCount < e.MaxRetries
}

// NextReplayAt schedules the next replay after a failed one: one minute
// doubled per prior retry, capped at six hours.
func (e *DLQEntry) NextReplayAt(now time.Time) time.Time {
	delay := time.Minute << min(e.RetryCount, 9)
	return now.Add(min(delay, 6*time.Hour))
}

// ClassifyError returns ErrorTypeTransient or ErrorTypePermanent.
func ClassifyError(err error) string {
	if IsTransient(err) {
		return ErrorTypeTransient
	}
	return ErrorTypePermanent
}
