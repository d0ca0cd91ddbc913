package translate

import (
	"strings"
	"testing"
	"time"

	"alertrelay/internal/discord"
	"alertrelay/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldByName(t *testing.T, embed discord.Embed, name string) *discord.EmbedField {
	t.Helper()
	for i := range embed.Fields {
		if embed.Fields[i].Name == name {
			return &embed.Fields[i]
		}
	}
	return nil
}

func TestTranslateCriticalFiring(t *testing.T) {
	alert := models.Alert{
		Status: "firing",
		Labels: map[string]string{
			"severity":  "critical",
			"alertname": "DiskFull",
		},
		Annotations: map[string]string{
			"summary": "Disk at 95%",
		},
		StartsAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	embed := Translate(alert)

	assert.Equal(t, "🔥 CRITICAL: DiskFull", embed.Title)
	assert.Equal(t, "Disk at 95%", embed.Description)
	assert.Equal(t, ColorCritical, embed.Color)
	assert.Equal(t, "2024-05-01T10:00:00Z", embed.Timestamp)

	severity := fieldByName(t, embed, "Severity")
	require.NotNil(t, severity)
	assert.Equal(t, "CRITICAL", severity.Value)
	assert.True(t, severity.Inline)
}

func TestTranslateResolvedOverridesSeverity(t *testing.T) {
	tests := []struct {
		name     string
		severity string
	}{
		{"resolved critical", "critical"},
		{"resolved warning", "warning"},
		{"resolved without severity", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := map[string]string{"alertname": "DiskFull"}
			if tt.severity != "" {
				labels["severity"] = tt.severity
			}

			embed := Translate(models.Alert{Status: "resolved", Labels: labels})

			assert.Equal(t, "✅ RESOLVED: DiskFull", embed.Title)
			assert.Equal(t, ColorResolved, embed.Color)
		})
	}
}

func TestTranslateColorPriority(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		severity string
		color    int
		prefix   string
	}{
		{"critical", "firing", "critical", ColorCritical, "🔥 CRITICAL"},
		{"warning", "firing", "warning", ColorWarning, "⚠️ WARNING"},
		{"info", "firing", "info", ColorInfo, "ℹ️ INFO"},
		{"unknown severity falls back to info", "firing", "page", ColorInfo, "ℹ️ INFO"},
		{"resolved beats critical", "resolved", "critical", ColorResolved, "✅ RESOLVED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embed := Translate(models.Alert{
				Status: tt.status,
				Labels: map[string]string{"severity": tt.severity},
			})
			assert.Equal(t, tt.color, embed.Color)
			assert.True(t, strings.HasPrefix(embed.Title, tt.prefix))
		})
	}
}

func TestTranslateEmptyAlertDefaults(t *testing.T) {
	embed := Translate(models.Alert{})

	assert.Equal(t, "ℹ️ INFO: Alert", embed.Title)
	assert.Equal(t, "Alert Alert is firing", embed.Description)
	assert.Equal(t, ColorInfo, embed.Color)
	assert.NotEmpty(t, embed.Timestamp)

	// Monitor is omitted while unknown; Component and Severity always render.
	assert.Nil(t, fieldByName(t, embed, "Monitor"))
	component := fieldByName(t, embed, "Component")
	require.NotNil(t, component)
	assert.Equal(t, "system", component.Value)
	severity := fieldByName(t, embed, "Severity")
	require.NotNil(t, severity)
	assert.Equal(t, "INFO", severity.Value)
}

func TestTranslateIdempotent(t *testing.T) {
	alert := models.Alert{
		Status: "firing",
		Labels: map[string]string{
			"alertname": "HighLatency",
			"severity":  "warning",
			"region":    "eu-west",
			"team":      "platform",
		},
		Annotations: map[string]string{"summary": "p99 above 2s"},
		StartsAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, Translate(alert), Translate(alert))
}

func TestTranslateFieldOrder(t *testing.T) {
	alert := models.Alert{
		Status: "firing",
		Labels: map[string]string{
			"alertname": "HighLatency",
			"severity":  "warning",
			"monitor":   "edge-probe",
			"component": "gateway",
			"region":    "eu-west",
		},
		Annotations: map[string]string{
			"summary":     "p99 above 2s",
			"description": "Latency breached the SLO threshold",
			"dashboard":   "https://grafana.example.com/d/lat",
		},
	}

	embed := Translate(alert)

	names := make([]string, 0, len(embed.Fields))
	for _, f := range embed.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Monitor", "Component", "Severity", "Details", "Dashboard", "Labels"}, names)

	dashboard := fieldByName(t, embed, "Dashboard")
	require.NotNil(t, dashboard)
	assert.Equal(t, "[View Dashboard](https://grafana.example.com/d/lat)", dashboard.Value)
	assert.False(t, dashboard.Inline)
}

func TestTranslateExtraLabelsSortedAndFiltered(t *testing.T) {
	alert := models.Alert{
		Labels: map[string]string{
			"alertname": "DiskFull",
			"severity":  "critical",
			"monitor":   "node-probe",
			"component": "storage",
			"zone":      "b",
			"region":    "eu-west",
		},
	}

	labels := fieldByName(t, Translate(alert), "Labels")
	require.NotNil(t, labels)
	assert.Equal(t, "region=eu-west, zone=b", labels.Value)
}

func TestTranslateNoExtraLabelsOmitsField(t *testing.T) {
	alert := models.Alert{
		Labels: map[string]string{"alertname": "DiskFull", "severity": "warning"},
	}

	assert.Nil(t, fieldByName(t, Translate(alert), "Labels"))
}

func TestTranslateTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("x", 3000)
	alert := models.Alert{
		Annotations: map[string]string{"description": long},
	}

	details := fieldByName(t, Translate(alert), "Details")
	require.NotNil(t, details)
	assert.Len(t, []rune(details.Value), discord.MaxFieldLength)
}

func TestTruncateMultiByte(t *testing.T) {
	long := strings.Repeat("héllo", 300) // 1500 runes
	got := truncate(long, discord.MaxFieldLength)
	assert.Len(t, []rune(got), discord.MaxFieldLength)

	short := "héllo"
	assert.Equal(t, short, truncate(short, discord.MaxFieldLength))
}
