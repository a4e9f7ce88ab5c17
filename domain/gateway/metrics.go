package gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics observes gateway calls. Registered once on the default registry
// and shared by every client so tests can construct clients freely.
type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var sharedMetrics = newMetrics()

func newMetrics() *metrics {
	return &metrics{
		requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "eermcp_gateway_requests_total",
			Help: "Backend commands sent, by command name and outcome.",
		}, []string{"command", "outcome"}),
		duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eermcp_gateway_request_duration_seconds",
			Help:    "Backend command round-trip time.",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
	}
}

func (m *metrics) observe(command, outcome string, elapsed time.Duration) {
	m.requests.WithLabelValues(command, outcome).Inc()
	if elapsed > 0 {
		m.duration.WithLabelValues(command).Observe(elapsed.Seconds())
	}
}
