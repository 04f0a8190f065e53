// Package metrics holds the Prometheus collectors of the cam profile server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics groups the server collectors.
type Metrics struct {
	requests *prometheus.CounterVec
	points   prometheus.Histogram
	duration prometheus.Histogram
	sessions prometheus.Gauge
}

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "camprofile_requests_total",
			Help: "Handled requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		points: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "camprofile_generated_points",
			Help:    "Rows in each generated trajectory.",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "camprofile_generate_duration_seconds",
			Help:    "Time spent generating a trajectory.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "camprofile_sessions",
			Help: "Sessions currently holding a generated trajectory.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.points, m.duration, m.sessions)
	}
	return m
}

// ObserveRequest counts one handled request.
func (m *Metrics) ObserveRequest(endpoint, outcome string) {
	m.requests.WithLabelValues(endpoint, outcome).Inc()
}

// ObserveGenerate records a successful generation.
func (m *Metrics) ObserveGenerate(points int, elapsed time.Duration) {
	m.points.Observe(float64(points))
	m.duration.Observe(elapsed.Seconds())
}

// SetSessions sets the stored-session gauge.
func (m *Metrics) SetSessions(n int) {
	m.sessions.Set(float64(n))
}
