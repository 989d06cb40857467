package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/roofquote/internal/config"
)

func TestAlerter_Evaluate_FailureRate(t *testing.T) {
	a := NewAlerter(config.MonitoringConfig{FailureRateThreshold: 0.10})

	snap := &MetricsSnapshot{
		Deliveries:       10,
		DeliveriesFailed: 3,
		DeliveryFailRate: 0.3,
		FailedBySink:     map[string]int{"salesforce": 3},
		LookbackHours:    24,
	}

	alerts := a.Evaluate(snap)
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertDeliveryFailureRate, alerts[0].Type)
	assert.Equal(t, "high", alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "30.0%")
	assert.Equal(t, 3, alerts[0].Details["failed"])
}

func TestAlerter_Evaluate_FailureRateSmallSample(t *testing.T) {
	a := NewAlerter(config.MonitoringConfig{FailureRateThreshold: 0.10})

	snap := &MetricsSnapshot{
		Deliveries:       4,
		DeliveriesFailed: 4,
		DeliveryFailRate: 1.0,
	}
	assert.Empty(t, a.Evaluate(snap))
}

func TestAlerter_Evaluate_DLQBacklog(t *testing.T) {
	a := NewAlerter(config.MonitoringConfig{FailureRateThreshold: 1, DLQDepthThreshold: 10})

	alerts := a.Evaluate(&MetricsSnapshot{DLQDepth: 11})
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertDLQBacklog, alerts[0].Type)
	assert.Contains(t, alerts[0].Message, "11 failed lead deliveries")

	assert.Empty(t, a.Evaluate(&MetricsSnapshot{DLQDepth: 10}))
}

func TestAlerter_Evaluate_DLQThresholdDisabled(t *testing.T) {
	a := NewAlerter(config.MonitoringConfig{FailureRateThreshold: 1})
	assert.Empty(t, a.Evaluate(&MetricsSnapshot{DLQDepth: 500}))
}

func TestAlerter_Evaluate_NoLeads(t *testing.T) {
	a := NewAlerter(config.MonitoringConfig{FailureRateThreshold: 1, MinLeads: 1})

	alerts := a.Evaluate(&MetricsSnapshot{Leads: 0, LookbackHours: 24})
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertNoLeads, alerts[0].Type)
	assert.Contains(t, alerts[0].Message, "last 24h")

	assert.Empty(t, a.Evaluate(&MetricsSnapshot{Leads: 1}))
}

func TestAlerter_Evaluate_AllHealthy(t *testing.T) {
	a := NewAlerter(config.MonitoringConfig{
		FailureRateThreshold: 0.10,
		DLQDepthThreshold:    10,
		MinLeads:             1,
	})

	snap := &MetricsSnapshot{
		Leads:            12,
		Deliveries:       24,
		DeliveriesFailed: 1,
		DeliveryFailRate: 1.0 / 24,
		DLQDepth:         1,
	}
	assert.Empty(t, a.Evaluate(snap))
}

func TestAlerter_SendAlerts_Webhook(t *testing.T) {
	var received atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var alert Alert
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&alert))
		assert.NotEmpty(t, alert.Type)
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	a := NewAlerter(config.MonitoringConfig{WebhookURL: ts.URL})

	alerts := []Alert{
		{Type: AlertDeliveryFailureRate, Severity: "high", Message: "test alert 1"},
		{Type: AlertDLQBacklog, Severity: "medium", Message: "test alert 2"},
	}

	sent := a.SendAlerts(context.Background(), alerts)
	assert.Equal(t, 2, sent)
	assert.Equal(t, int32(2), received.Load())
}

func TestAlerter_SendAlerts_EmptyURL(t *testing.T) {
	a := NewAlerter(config.MonitoringConfig{})

	sent := a.SendAlerts(context.Background(), []Alert{{Type: AlertNoLeads, Message: "test"}})
	assert.Equal(t, 0, sent)
}

func TestAlerter_SendAlerts_EmptyAlerts(t *testing.T) {
	a := NewAlerter(config.MonitoringConfig{WebhookURL: "http://example.com"})
	assert.Equal(t, 0, a.SendAlerts(context.Background(), nil))
}

func TestAlerter_SendAlerts_WebhookError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	a := NewAlerter(config.MonitoringConfig{WebhookURL: ts.URL})

	sent := a.SendAlerts(context.Background(), []Alert{{Type: AlertDLQBacklog, Message: "test"}})
	assert.Equal(t, 0, sent)
}
