// Package translate converts Alertmanager alerts into Discord embeds. The
// translation is a pure function: every missing input field has a defined
// default and Translate never fails.
package translate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"alertrelay/internal/discord"
	"alertrelay/internal/models"
)

// Embed colors keyed by severity/status.
const (
	ColorCritical = 0xFF0000 // red
	ColorWarning  = 0xFFA500 // orange
	ColorInfo     = 0x00FF00 // green
	ColorResolved = 0x00FF00 // green
)

// Labels folded into dedicated embed fields; everything else lands in the
// catch-all Labels field.
var reservedLabels = map[string]bool{
	"alertname": true,
	"severity":  true,
	"monitor":   true,
	"component": true,
}

// Translate converts a single alert into a Discord embed.
//
// Resolved status takes precedence over severity when choosing the color and
// title prefix, so a resolved critical alert renders green.
func Translate(alert models.Alert) discord.Embed {
	status := alert.Status
	if status == "" {
		status = models.StatusFiring
	}

	severity := alert.Label("severity", "info")
	monitor := alert.Label("monitor", "unknown")
	alertName := alert.Label("alertname", "Alert")
	component := alert.Label("component", "system")

	var color int
	var titlePrefix string
	switch {
	case status == models.StatusResolved:
		color = ColorResolved
		titlePrefix = "✅ RESOLVED"
	case severity == "critical":
		color = ColorCritical
		titlePrefix = "🔥 CRITICAL"
	case severity == "warning":
		color = ColorWarning
		titlePrefix = "⚠️ WARNING"
	default:
		color = ColorInfo
		titlePrefix = "ℹ️ INFO"
	}

	description := alert.Annotation("summary")
	if description == "" {
		description = fmt.Sprintf("Alert %s is %s", alertName, status)
	}

	timestamp := alert.StartsAt
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	embed := discord.Embed{
		Title:       fmt.Sprintf("%s: %s", titlePrefix, alertName),
		Description: description,
		Color:       color,
		Fields:      []discord.EmbedField{},
		Timestamp:   timestamp.Format(time.RFC3339),
	}

	if monitor != "unknown" {
		embed.Fields = append(embed.Fields, discord.EmbedField{
			Name:   "Monitor",
			Value:  monitor,
			Inline: true,
		})
	}

	if component != "" {
		embed.Fields = append(embed.Fields, discord.EmbedField{
			Name:   "Component",
			Value:  component,
			Inline: true,
		})
	}

	embed.Fields = append(embed.Fields, discord.EmbedField{
		Name:   "Severity",
		Value:  strings.ToUpper(severity),
		Inline: true,
	})

	if details := alert.Annotation("description"); details != "" {
		embed.Fields = append(embed.Fields, discord.EmbedField{
			Name:  "Details",
			Value: truncate(details, discord.MaxFieldLength),
		})
	}

	if dashboard := alert.Annotation("dashboard"); dashboard != "" {
		embed.Fields = append(embed.Fields, discord.EmbedField{
			Name:  "Dashboard",
			Value: fmt.Sprintf("[View Dashboard](%s)", dashboard),
		})
	}

	if labels := extraLabels(alert.Labels); labels != "" {
		embed.Fields = append(embed.Fields, discord.EmbedField{
			Name:  "Labels",
			Value: truncate(labels, discord.MaxFieldLength),
		})
	}

	return embed
}

// extraLabels serializes all non-reserved labels as "k=v" pairs joined by
// ", ". Keys are sorted so identical alerts always render identically.
func extraLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		if !reservedLabels[k] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, labels[k]))
	}
	return strings.Join(pairs, ", ")
}

// truncate cuts s to at most max runes. Discord counts characters, not
// bytes, so slicing by rune keeps multi-byte content within the limit
// without splitting a code point.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
