package monitoring

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/roofquote/internal/model"
)

// maxLeadsScanned bounds how many leads one collection reads.
const maxLeadsScanned = 10000

// MetricsSnapshot holds a point-in-time view of lead delivery health.
type MetricsSnapshot struct {
	// Leads captured within the lookback window.
	Leads        int `json:"leads"`
	LeadsFailing int `json:"leads_failing"`

	// Per-delivery counts within the lookback window.
	Deliveries       int            `json:"deliveries"`
	DeliveriesFailed int            `json:"deliveries_failed"`
	DeliveryFailRate float64        `json:"delivery_fail_rate"`
	FailedBySink     map[string]int `json:"failed_by_sink,omitempty"`

	// DLQ depth.
	DLQDepth int `json:"dlq_depth"`

	// Metadata.
	LookbackHours int       `json:"lookback_hours"`
	CollectedAt   time.Time `json:"collected_at"`
}

// LeadStats is the part of the store the collector reads.
type LeadStats interface {
	ListLeads(ctx context.Context, filter model.LeadFilter) ([]model.LeadRecord, error)
	CountDLQ(ctx context.Context) (int, error)
}

// Collector gathers metrics from the lead log.
type Collector struct {
	store LeadStats
}

// NewCollector creates a new metrics collector.
func NewCollector(st LeadStats) *Collector {
	return &Collector{store: st}
}

// Collect gathers a snapshot of delivery metrics over the given lookback window.
func (c *Collector) Collect(ctx context.Context, lookbackHours int) (*MetricsSnapshot, error) {
	snap := &MetricsSnapshot{
		LookbackHours: lookbackHours,
		CollectedAt:   time.Now().UTC(),
		FailedBySink:  make(map[string]int),
	}

	cutoff := snap.CollectedAt.Add(-time.Duration(lookbackHours) * time.Hour)
	recs, err := c.store.ListLeads(ctx, model.LeadFilter{Since: cutoff, Limit: maxLeadsScanned})
	if err != nil {
		return nil, eris.Wrap(err, "monitoring: list leads")
	}

	snap.Leads = len(recs)
	for _, rec := range recs {
		if rec.Failed() > 0 {
			snap.LeadsFailing++
		}
		for _, d := range rec.Deliveries {
			snap.Deliveries++
			if d.Status != model.DeliveryDelivered {
				snap.DeliveriesFailed++
				snap.FailedBySink[d.Sink]++
			}
		}
	}
	if snap.Deliveries > 0 {
		snap.DeliveryFailRate = float64(snap.DeliveriesFailed) / float64(snap.Deliveries)
	}

	dlqCount, err := c.store.CountDLQ(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "monitoring: count dlq")
	}
	snap.DLQDepth = dlqCount

	return snap, nil
}
