package monitoring

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/roofquote/internal/config"
	"github.com/sells-group/roofquote/internal/lead"
)

// Replayer re-delivers due dead-letter entries.
type Replayer interface {
	Replay(ctx context.Context, limit int) (*lead.ReplayResult, error)
}

// replayBatch caps entries replayed per tick.
const replayBatch = 50

// Checker runs periodic alert checks and dead-letter replays in the
// background.
type Checker struct {
	collector *Collector
	alerter   *Alerter
	replayer  Replayer
	cfg       config.MonitoringConfig
}

// NewChecker creates a background checker. replayer may be nil.
func NewChecker(collector *Collector, alerter *Alerter, replayer Replayer, cfg config.MonitoringConfig) *Checker {
	return &Checker{
		collector: collector,
		alerter:   alerter,
		replayer:  replayer,
		cfg:       cfg,
	}
}

// Run starts the periodic check loop. It blocks until ctx is cancelled.
func (c *Checker) Run(ctx context.Context) {
	interval := time.Duration(c.cfg.CheckIntervalSecs) * time.Second
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	log := zap.L().With(zap.String("component", "monitoring.checker"))
	log.Info("starting checker",
		zap.Duration("interval", interval),
		zap.Int("lookback_hours", c.cfg.LookbackWindowHours),
		zap.Bool("replay", c.replayer != nil),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("checker stopped")
			return
		case <-ticker.C:
			c.replay(ctx, log)
			c.check(ctx, log)
		}
	}
}

func (c *Checker) replay(ctx context.Context, log *zap.Logger) {
	if c.replayer == nil {
		return
	}
	res, err := c.replayer.Replay(ctx, replayBatch)
	if err != nil {
		log.Error("monitoring: dlq replay failed", zap.Error(err))
		return
	}
	if res.Due > 0 {
		log.Info("monitoring: dlq replay complete",
			zap.Int("due", res.Due),
			zap.Int("delivered", res.Delivered),
			zap.Int("failed", res.Failed),
			zap.Int("skipped", res.Skipped),
		)
	}
}

func (c *Checker) check(ctx context.Context, log *zap.Logger) {
	snap, err := c.collector.Collect(ctx, c.cfg.LookbackWindowHours)
	if err != nil {
		log.Error("monitoring: failed to collect metrics", zap.Error(err))
		return
	}

	alerts := c.alerter.Evaluate(snap)
	if len(alerts) == 0 {
		log.Debug("monitoring: no alerts triggered")
		return
	}

	sent := c.alerter.SendAlerts(ctx, alerts)
	log.Info("monitoring: alert check complete",
		zap.Int("alerts_triggered", len(alerts)),
		zap.Int("alerts_sent", sent),
	)
}
