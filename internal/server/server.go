package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"alertrelay/internal/config"
	"alertrelay/internal/discord"
	"alertrelay/internal/dispatch"
	"alertrelay/internal/metrics"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg *config.Config
	srv *http.Server
	log zerolog.Logger
}

// New wires the Discord client, dispatcher, and router into a ready-to-start
// server.
func New(cfg *config.Config, log zerolog.Logger) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	client := discord.NewClient(cfg.Discord.WebhookURL)
	dispatcher := dispatch.New(client, cfg.Discord.Username, cfg.Discord.AvatarURL, m, log)
	handler := NewHandler(cfg, dispatcher, log)
	router := SetupRouter(handler, m, registry, log)

	srv := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		cfg: cfg,
		srv: srv,
		log: log,
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.srv.Addr).Msg("listening for Alertmanager webhooks")
	return s.srv.ListenAndServe()
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down")
	return s.srv.Shutdown(ctx)
}
