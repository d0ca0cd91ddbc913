// Package metrics exposes Prometheus instrumentation for the relay.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the relay.
type Metrics struct {
	AlertsReceived  *prometheus.CounterVec
	Dispatches      *prometheus.CounterVec
	EmbedsDelivered prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all relay metrics against the given registerer.
func New(registry prometheus.Registerer) *Metrics {
	return &Metrics{
		AlertsReceived: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "alertrelay_alerts_received_total",
				Help: "Total number of alerts received from Alertmanager",
			},
			[]string{"status"},
		),

		Dispatches: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "alertrelay_dispatches_total",
				Help: "Total number of Discord dispatch attempts by outcome",
			},
			[]string{"outcome"},
		),

		EmbedsDelivered: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "alertrelay_embeds_delivered_total",
				Help: "Total number of embeds delivered to Discord",
			},
		),

		RequestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "alertrelay_http_request_duration_seconds",
				Help:    "Inbound HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "code"},
		),
	}
}
