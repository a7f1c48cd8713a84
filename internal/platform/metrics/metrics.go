package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the gateway.
type Metrics struct {
	// Inbound requests by path and status.
	RequestsTotal *prometheus.CounterVec

	// Outbound bureau call latency by endpoint.
	BureauLatency *prometheus.HistogramVec

	// Token exchange outcomes: ok, denied, error.
	TokenOutcomes *prometheus.CounterVec
}

// New creates and registers all gateway metrics.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crivo_http_requests_total",
			Help: "Total inbound HTTP requests by path and status code",
		}, []string{"path", "status"}),

		BureauLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "crivo_bureau_request_duration_seconds",
			Help:    "Duration of outbound bureau calls by endpoint",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"endpoint"}),

		TokenOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crivo_token_requests_total",
			Help: "Total token exchange attempts by outcome",
		}, []string{"outcome"}),
	}
}

// IncrementRequest records one handled inbound request.
func (m *Metrics) IncrementRequest(path, status string) {
	if m != nil {
		m.RequestsTotal.WithLabelValues(path, status).Inc()
	}
}

// ObserveBureauLatency records the duration of one outbound bureau call.
func (m *Metrics) ObserveBureauLatency(endpoint string, d time.Duration) {
	if m != nil {
		m.BureauLatency.WithLabelValues(endpoint).Observe(d.Seconds())
	}
}

// IncrementTokenOutcome records one token exchange attempt.
func (m *Metrics) IncrementTokenOutcome(outcome string) {
	if m != nil {
		m.TokenOutcomes.WithLabelValues(outcome).Inc()
	}
}
