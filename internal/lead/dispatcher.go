package lead

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/roofquote/internal/model"
	"github.com/sells-group/roofquote/internal/resilience"
	"github.com/sells-group/roofquote/internal/store"
)

// Dispatcher fans a lead out to every sink. Sinks are independent: one
// failing never stops or rolls back another.
type Dispatcher struct {
	sinks         []Sink
	store         store.Store
	retry         resilience.RetryConfig
	dlqMaxRetries int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRetry sets the in-request retry policy for each sink call.
func WithRetry(cfg resilience.RetryConfig) Option {
	return func(d *Dispatcher) { d.retry = cfg }
}

// WithDLQMaxRetries sets how many replays a failed delivery gets.
func WithDLQMaxRetries(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.dlqMaxRetries = n
		}
	}
}

// NewDispatcher returns a dispatcher over sinks. st may be nil, in which case
// nothing is logged or dead-lettered.
func NewDispatcher(st store.Store, sinks []Sink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sinks:         sinks,
		store:         st,
		retry:         resilience.DefaultRetryConfig(),
		dlqMaxRetries: resilience.DefaultDLQMaxRetries,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SinkNames lists the configured sinks in order.
func (d *Dispatcher) SinkNames() []string {
	return lo.Map(d.sinks, func(s Sink, _ int) string { return s.Name() })
}

func (d *Dispatcher) sink(name string) (Sink, bool) {
	return lo.Find(d.sinks, func(s Sink) bool { return s.Name() == name })
}

// Dispatch validates l, assigns an ID and timestamp when missing, delivers it
// to every sink concurrently, and stores the lead with its delivery results.
// Delivery failures are reported in the record, not as an error.
func (d *Dispatcher) Dispatch(ctx context.Context, l model.Lead) (*model.LeadRecord, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(l)
	if err != nil {
		return nil, eris.Wrap(err, "lead: marshal payload")
	}

	results := make([]model.DeliveryResult, len(d.sinks))
	var g errgroup.Group
	for i, s := range d.sinks {
		g.Go(func() error {
			results[i] = d.deliver(ctx, s, l, payload)
			return nil
		})
	}
	_ = g.Wait()

	rec := model.LeadRecord{Lead: l, Deliveries: results}
	if d.store != nil {
		if err := d.store.SaveLead(ctx, rec); err != nil {
			return &rec, eris.Wrap(err, "lead: save lead")
		}
	}

	zap.L().Info("lead: dispatched",
		zap.String("lead_id", l.ID),
		zap.Int("sinks", len(results)),
		zap.Int("failed", rec.Failed()),
	)
	return &rec, nil
}

func (d *Dispatcher) deliver(ctx context.Context, s Sink, l model.Lead, payload []byte) model.DeliveryResult {
	start := time.Now()
	res := model.DeliveryResult{Sink: s.Name()}

	cfg := d.retry
	if cfg.OnRetry == nil {
		cfg.OnRetry = resilience.RetryLogger(s.Name(), "deliver lead")
	}
	err := resilience.Do(ctx, cfg, func(ctx context.Context) error {
		res.Attempts++
		return s.Deliver(ctx, l)
	})
	res.DurationMs = time.Since(start).Milliseconds()

	if err == nil {
		res.Status = model.DeliveryDelivered
		return res
	}

	res.Status = model.DeliveryFailed
	res.Error = err.Error()
	zap.L().Error("lead: delivery failed",
		zap.String("lead_id", l.ID),
		zap.String("sink", s.Name()),
		zap.Int("attempts", res.Attempts),
		zap.Error(err),
	)

	if d.store == nil {
		return res
	}
	entry := resilience.DLQEntry{
		ID:         uuid.New().String(),
		LeadID:     l.ID,
		Sink:       s.Name(),
		Payload:    payload,
		Error:      err.Error(),
		ErrorType:  resilience.ClassifyError(err),
		MaxRetries: d.dlqMaxRetries,
	}
	// The request may already be cancelled; the entry must still be written.
	if dlqErr := d.store.EnqueueDLQ(context.WithoutCancel(ctx), entry); dlqErr != nil {
		zap.L().Error("lead: enqueue dlq failed",
			zap.String("lead_id", l.ID),
			zap.String("sink", s.Name()),
			zap.Error(dlqErr),
		)
		return res
	}
	res.DLQID = entry.ID
	return res
}

// ReplayResult summarizes a replay pass.
type ReplayResult struct {
	Due       int `json:"due"`
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Replay re-delivers due dead-letter entries. Delivered entries are removed;
// failed ones are rescheduled with a longer delay. Entries for sinks that are
// no longer configured are skipped and left in place.
func (d *Dispatcher) Replay(ctx context.Context, limit int) (*ReplayResult, error) {
	if d.store == nil {
		return nil, eris.New("lead: replay requires a store")
	}
	entries, err := d.store.DueDLQ(ctx, resilience.DLQFilter{Limit: limit})
	if err != nil {
		return nil, eris.Wrap(err, "lead: load due dlq")
	}

	res := &ReplayResult{Due: len(entries)}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		s, ok := d.sink(e.Sink)
		if !ok {
			zap.L().Warn("lead: dlq entry for unknown sink", zap.String("id", e.ID), zap.String("sink", e.Sink))
			res.Skipped++
			continue
		}

		var l model.Lead
		deliverErr := json.Unmarshal(e.Payload, &l)
		if deliverErr != nil {
			deliverErr = eris.Wrap(deliverErr, "lead: decode dlq payload")
		} else {
			deliverErr = s.Deliver(ctx, l)
		}

		if deliverErr == nil {
			if err := d.store.RemoveDLQ(ctx, e.ID); err != nil {
				return res, eris.Wrap(err, "lead: remove replayed dlq entry")
			}
			res.Delivered++
			continue
		}

		res.Failed++
		e.RetryCount++
		next := e.NextReplayAt(time.Now().UTC())
		zap.L().Warn("lead: replay failed",
			zap.String("id", e.ID),
			zap.String("sink", e.Sink),
			zap.Int("retry_count", e.RetryCount),
			zap.Bool("exhausted", !e.CanRetry()),
			zap.Error(deliverErr),
		)
		if err := d.store.IncrementDLQRetry(ctx, e.ID, next, deliverErr.Error()); err != nil {
			return res, eris.Wrap(err, "lead: reschedule dlq entry")
		}
	}
	return res, nil
}
