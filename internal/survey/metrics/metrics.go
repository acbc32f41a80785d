package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for the survey wizard.
type Metrics struct {
	SessionsStarted    *prometheus.CounterVec
	Submissions        *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	SubmitLatency      *prometheus.HistogramVec
}

// New registers and returns survey metrics collectors.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the collectors on reg. Tests pass a fresh registry.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SessionsStarted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "unipick_survey_sessions_started_total",
			Help: "Total number of wizard sessions started, labeled by country",
		}, []string{"country"}),
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "unipick_survey_submissions_total",
			Help: "Total number of submit attempts, labeled by country and outcome",
		}, []string{"country", "outcome"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "unipick_survey_validation_failures_total",
			Help: "Total number of blocking field errors, labeled by country and field",
		}, []string{"country", "field"}),
		SubmitLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unipick_survey_submit_latency_seconds",
			Help:    "Latency of evaluation submissions in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"country"}),
	}
}

func (m *Metrics) IncrementSessionsStarted(country string) {
	m.SessionsStarted.WithLabelValues(country).Inc()
}

func (m *Metrics) IncrementSubmission(country, outcome string) {
	m.Submissions.WithLabelValues(country, outcome).Inc()
}

// IncrementValidationFailures counts one failure per offending field.
func (m *Metrics) IncrementValidationFailures(country string, fields map[string]string) {
	for field := range fields {
		m.ValidationFailures.WithLabelValues(country, field).Inc()
	}
}

func (m *Metrics) ObserveSubmitLatency(country string, durationSeconds float64) {
	m.SubmitLatency.WithLabelValues(country).Observe(durationSeconds)
}
