package request

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP latency histogram shared by every wizard, result
// and catalog route.
type Metrics struct {
	EndpointLatency *prometheus.HistogramVec
}

// NewMetrics registers on the default registry served at /metrics.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers on reg; tests pass a fresh registry so routers
// can be built more than once per process.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		EndpointLatency: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name: "unipick_http_request_duration_seconds",
			Help: "Latency of unipick HTTP requests, labeled by method and chi route pattern",
			// wizard steps are in-memory; submit and result wait on the backend
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "endpoint"}),
	}
}

func (m *Metrics) ObserveEndpointLatency(method, endpoint string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(method, endpoint).Observe(durationSeconds)
}
