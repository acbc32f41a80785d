package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for outbound backend calls.
type Metrics struct {
	CallLatency *prometheus.HistogramVec
}

// NewMetrics registers and returns backend call collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		CallLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unipick_backend_call_latency_seconds",
			Help:    "Latency of recommendation backend calls, labeled by operation and outcome",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"operation", "outcome"}),
	}
}

func (m *Metrics) ObserveCall(operation, outcome string, durationSeconds float64) {
	m.CallLatency.WithLabelValues(operation, outcome).Observe(durationSeconds)
}
