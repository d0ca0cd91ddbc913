package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"alertrelay/internal/config"
	"alertrelay/internal/dispatch"
	"alertrelay/internal/models"
)

// ServiceName identifies the relay in health responses and logs.
const ServiceName = "alertmanager-discord-relay"

// Handler holds the request-serving dependencies.
type Handler struct {
	cfg        *config.Config
	dispatcher *dispatch.Dispatcher
	log        zerolog.Logger
}

// NewHandler creates a new handler.
func NewHandler(cfg *config.Config, dispatcher *dispatch.Dispatcher, log zerolog.Logger) *Handler {
	return &Handler{
		cfg:        cfg,
		dispatcher: dispatcher,
		log:        log,
	}
}

// HandleWebhook receives an alert batch from Alertmanager, relays it to
// Discord, and reports the outcome. Every failure, parse or delivery, is a
// 500 with a JSON body so Alertmanager can apply its own retry policy.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var payload models.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.log.Warn().Err(err).Msg("failed to parse webhook payload")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "invalid payload: " + err.Error(),
		})
		return
	}

	h.log.Info().Int("alerts", len(payload.Alerts)).Str("receiver", payload.Receiver).Msg("received alerts")

	// Delivery runs to completion even if the caller hangs up mid-request.
	if err := h.dispatcher.Dispatch(context.Background(), payload.Alerts); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleHealth returns service status and whether a destination is configured.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":             "healthy",
		"service":            ServiceName,
		"webhook_configured": h.cfg.Discord.WebhookURL != "",
	})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
