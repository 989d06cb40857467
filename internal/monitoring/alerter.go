package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/roofquote/internal/config"
	"github.com/sells-group/roofquote/internal/resilience"
)

// AlertType identifies the kind of alert.
type AlertType string

const (
	AlertDeliveryFailureRate AlertType = "delivery_failure_rate"
	AlertDLQBacklog          AlertType = "dlq_backlog"
	AlertNoLeads             AlertType = "no_leads"
)

// minDeliveriesForRate is the sample size below which the failure rate is
// not alerted on.
const minDeliveriesForRate = 5

// Alert represents a single alert to be sent.
type Alert struct {
	Type      AlertType      `json:"type"`
	Severity  string         `json:"severity"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Alerter evaluates a MetricsSnapshot against configured thresholds
// and sends alerts via webhook when thresholds are breached.
type Alerter struct {
	cfg    config.MonitoringConfig
	client *http.Client
}

// NewAlerter creates a new Alerter with the given monitoring config.
func NewAlerter(cfg config.MonitoringConfig) *Alerter {
	return &Alerter{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Evaluate checks the snapshot against thresholds and returns any alerts.
func (a *Alerter) Evaluate(snap *MetricsSnapshot) []Alert {
	var alerts []Alert
	now := time.Now().UTC()

	if snap.Deliveries >= minDeliveriesForRate && snap.DeliveryFailRate > a.cfg.FailureRateThreshold {
		alerts = append(alerts, Alert{
			Type:     AlertDeliveryFailureRate,
			Severity: "high",
			Message: fmt.Sprintf(
				"Lead delivery failure rate %.1f%% exceeds threshold %.1f%% (%d failed / %d deliveries in last %dh)",
				snap.DeliveryFailRate*100, a.cfg.FailureRateThreshold*100,
				snap.DeliveriesFailed, snap.Deliveries, snap.LookbackHours,
			),
			Details: map[string]any{
				"failure_rate":   snap.DeliveryFailRate,
				"threshold":      a.cfg.FailureRateThreshold,
				"failed":         snap.DeliveriesFailed,
				"deliveries":     snap.Deliveries,
				"failed_by_sink": snap.FailedBySink,
			},
			Timestamp: now,
		})
	}

	if a.cfg.DLQDepthThreshold > 0 && snap.DLQDepth > a.cfg.DLQDepthThreshold {
		alerts = append(alerts, Alert{
			Type:     AlertDLQBacklog,
			Severity: "medium",
			Message: fmt.Sprintf(
				"%d failed lead deliveries waiting in the dead-letter queue (threshold %d)",
				snap.DLQDepth, a.cfg.DLQDepthThreshold,
			),
			Details: map[string]any{
				"dlq_depth": snap.DLQDepth,
				"threshold": a.cfg.DLQDepthThreshold,
			},
			Timestamp: now,
		})
	}

	// A silent lead form usually means the site is broken, not that demand
	// stopped.
	if a.cfg.MinLeads > 0 && snap.Leads < a.cfg.MinLeads {
		alerts = append(alerts, Alert{
			Type:     AlertNoLeads,
			Severity: "medium",
			Message: fmt.Sprintf(
				"Only %d lead(s) captured in last %dh, expected at least %d",
				snap.Leads, snap.LookbackHours, a.cfg.MinLeads,
			),
			Details: map[string]any{
				"leads":     snap.Leads,
				"min_leads": a.cfg.MinLeads,
			},
			Timestamp: now,
		})
	}

	return alerts
}

// SendAlerts delivers alerts to the configured webhook URL.
// Returns the number of alerts successfully sent.
func (a *Alerter) SendAlerts(ctx context.Context, alerts []Alert) int {
	if a.cfg.WebhookURL == "" || len(alerts) == 0 {
		return 0
	}

	sent := 0
	for _, alert := range alerts {
		if err := a.sendWebhook(ctx, alert); err != nil {
			zap.L().Error("monitoring: failed to send alert",
				zap.String("type", string(alert.Type)),
				zap.Error(err),
			)
			continue
		}
		zap.L().Info("monitoring: alert sent",
			zap.String("type", string(alert.Type)),
			zap.String("severity", alert.Severity),
		)
		sent++
	}
	return sent
}

// sendWebhook posts a single alert to the webhook URL.
func (a *Alerter) sendWebhook(ctx context.Context, alert Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return eris.Wrap(err, "monitoring: marshal alert")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "monitoring: create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return eris.Wrap(err, "monitoring: webhook request")
	}
	defer resp.Body.Close() //nolint:errcheck

	return resilience.CheckStatus("monitoring: webhook", resp.StatusCode)
}
