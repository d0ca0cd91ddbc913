package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertIsFiring(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected bool
	}{
		{"firing alert", "firing", true},
		{"resolved alert", "resolved", false},
		{"missing status defaults to firing", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := Alert{
				Status: tt.status,
			}
			assert.Equal(t, tt.expected, alert.IsFiring())
		})
	}
}

func TestAlertIsResolved(t *testing.T) {
	assert.True(t, (&Alert{Status: "resolved"}).IsResolved())
	assert.False(t, (&Alert{Status: "firing"}).IsResolved())
	assert.False(t, (&Alert{}).IsResolved())
}

func TestAlertLabel(t *testing.T) {
	alert := Alert{
		Labels: map[string]string{
			"alertname": "HighLatency",
			"severity":  "warning",
		},
	}

	assert.Equal(t, "HighLatency", alert.Label("alertname", "Alert"))
	assert.Equal(t, "warning", alert.Label("severity", "info"))
	assert.Equal(t, "unknown", alert.Label("monitor", "unknown"))
	assert.Equal(t, "system", (&Alert{}).Label("component", "system"))
}

func TestAlertAnnotation(t *testing.T) {
	alert := Alert{
		Annotations: map[string]string{
			"summary":   "High latency detected",
			"dashboard": "https://example.com/d/abc",
		},
	}

	assert.Equal(t, "High latency detected", alert.Annotation("summary"))
	assert.Equal(t, "https://example.com/d/abc", alert.Annotation("dashboard"))
	assert.Equal(t, "", alert.Annotation("nonexistent"))
	assert.Equal(t, "", (&Alert{}).Annotation("any"))
}

func TestWebhookPayloadUnmarshal(t *testing.T) {
	raw := `{
		"version": "4",
		"receiver": "discord-relay",
		"status": "firing",
		"alerts": [
			{
				"status": "firing",
				"labels": {"alertname": "DiskFull", "severity": "critical"},
				"annotations": {"summary": "Disk at 95%"},
				"startsAt": "2024-05-01T10:00:00Z"
			}
		]
	}`

	var payload WebhookPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	require.Len(t, payload.Alerts, 1)
	assert.Equal(t, "DiskFull", payload.Alerts[0].Label("alertname", ""))
	assert.Equal(t, "Disk at 95%", payload.Alerts[0].Annotation("summary"))
	assert.False(t, payload.Alerts[0].StartsAt.IsZero())
}
