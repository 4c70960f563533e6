package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the chat server instrumentation. Each Server owns a private
// registry so tests can construct servers independently without duplicate
// registration panics.
type Metrics struct {
	registry *prometheus.Registry

	// Replies by provenance source ("openai" or "fallback")
	RepliesTotal *prometheus.CounterVec

	// Failed gateway attempts by classification
	GatewayFailuresTotal *prometheus.CounterVec

	// End-to-end chat request duration
	RequestDuration prometheus.Histogram
}

// NewMetrics creates the instrument set on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RepliesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "foodbot",
				Name:      "chat_replies_total",
				Help:      "Chat replies by provenance source",
			},
			[]string{"source"},
		),
		GatewayFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "foodbot",
				Name:      "gateway_failures_total",
				Help:      "Failed LLM gateway attempts by classification",
			},
			[]string{"classification"},
		),
		RequestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "foodbot",
				Name:      "chat_request_duration_seconds",
				Help:      "Chat request duration in seconds",
				Buckets:   []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
	}
}
