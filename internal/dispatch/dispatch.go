// Package dispatch batches translated alerts into a single Discord webhook
// message and performs the one delivery attempt.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"alertrelay/internal/discord"
	"alertrelay/internal/metrics"
	"alertrelay/internal/models"
	"alertrelay/internal/translate"
)

// Dispatcher groups alerts into one outbound message and sends it.
type Dispatcher struct {
	client    *discord.Client
	username  string
	avatarURL string
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// New creates a Dispatcher bound to a Discord client and message identity.
func New(client *discord.Client, username, avatarURL string, m *metrics.Metrics, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		client:    client,
		username:  username,
		avatarURL: avatarURL,
		metrics:   m,
		log:       log,
	}
}

// Dispatch translates the alerts, batches them under Discord's 10-embed
// limit with firing alerts first, and posts the message. An empty batch is a
// no-op success. A nil return means Discord acknowledged the delivery.
func (d *Dispatcher) Dispatch(ctx context.Context, alerts []models.Alert) error {
	var firing, resolved []models.Alert
	for _, alert := range alerts {
		if alert.IsResolved() {
			resolved = append(resolved, alert)
		} else {
			firing = append(firing, alert)
		}
	}

	d.metrics.AlertsReceived.WithLabelValues(models.StatusFiring).Add(float64(len(firing)))
	d.metrics.AlertsReceived.WithLabelValues(models.StatusResolved).Add(float64(len(resolved)))

	embeds := make([]discord.Embed, 0, discord.MaxEmbeds)
	for _, alert := range firing {
		if len(embeds) == discord.MaxEmbeds {
			break
		}
		embeds = append(embeds, translate.Translate(alert))
	}
	for _, alert := range resolved {
		if len(embeds) == discord.MaxEmbeds {
			break
		}
		embeds = append(embeds, translate.Translate(alert))
	}

	if len(embeds) == 0 {
		d.log.Debug().Msg("no alerts to relay")
		return nil
	}

	msg := discord.WebhookMessage{
		Username:  d.username,
		AvatarURL: d.avatarURL,
		Content:   summaryLine(len(firing), len(resolved)),
		Embeds:    embeds,
	}

	if err := d.client.Send(ctx, msg); err != nil {
		d.metrics.Dispatches.WithLabelValues("error").Inc()
		d.log.Error().Err(err).Int("embeds", len(embeds)).Msg("failed to deliver alerts to Discord")
		return err
	}

	d.metrics.Dispatches.WithLabelValues("success").Inc()
	d.metrics.EmbedsDelivered.Add(float64(len(embeds)))
	d.log.Info().
		Int("embeds", len(embeds)).
		Int("firing", len(firing)).
		Int("resolved", len(resolved)).
		Msg("delivered alerts to Discord")
	return nil
}

// summaryLine summarizes the full input counts, not the capped batch, so a
// truncated message still announces how many alerts fired.
func summaryLine(firing, resolved int) string {
	var parts []string
	if firing > 0 {
		plural := ""
		if firing != 1 {
			plural = "s"
		}
		parts = append(parts, fmt.Sprintf("🔥 %d alert%s firing", firing, plural))
	}
	if resolved > 0 {
		parts = append(parts, fmt.Sprintf("✅ %d resolved", resolved))
	}
	return strings.Join(parts, " | ")
}
