package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/sells-group/roofquote/internal/model"
	"github.com/sells-group/roofquote/internal/resilience"
)

func deliveriesOrEmpty(d []model.DeliveryResult) []model.DeliveryResult {
	if d == nil {
		return []model.DeliveryResult{}
	}
	return d
}

func decodeLeadRecord(leadJSON, deliveriesJSON []byte) (model.LeadRecord, error) {
	var rec model.LeadRecord
	if err := json.Unmarshal(leadJSON, &rec.Lead); err != nil {
		return rec, eris.Wrap(err, "store: unmarshal lead")
	}
	if len(deliveriesJSON) > 0 {
		if err := json.Unmarshal(deliveriesJSON, &rec.Deliveries); err != nil {
			return rec, eris.Wrap(err, "store: unmarshal deliveries")
		}
	}
	return rec, nil
}

func withDLQDefaults(e resilience.DLQEntry) resilience.DLQEntry {
	now := time.Now().UTC()
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.MaxRetries <= 0 {
		e.MaxRetries = resilience.DefaultDLQMaxRetries
	}
	if e.ErrorType == "" {
		e.ErrorType = resilience.ErrorTypeTransient
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.LastFailedAt.IsZero() {
		e.LastFailedAt = now
	}
	if e.NextRetryAt.IsZero() {
		e.NextRetryAt = e.NextReplayAt(now)
	}
	if len(e.Payload) == 0 {
		e.Payload = json.RawMessage("null")
	}
	return e
}
