package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"alertrelay/internal/metrics"
)

// SetupRouter creates and configures the HTTP router.
func SetupRouter(handler *Handler, m *metrics.Metrics, registry *prometheus.Registry, log zerolog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(requestLogger(log, m))
	r.Use(middleware.Recoverer)

	r.Post("/", handler.HandleWebhook)
	r.Get("/", handler.HandleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}

// requestLogger logs every inbound request and records its duration.
func requestLogger(log zerolog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			m.RequestDuration.
				WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(ww.Status())).
				Observe(elapsed.Seconds())
			log.Info().
				Str("remote", r.RemoteAddr).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", elapsed).
				Msg("request")
		})
	}
}
