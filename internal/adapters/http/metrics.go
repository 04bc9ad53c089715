package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zofmath/zof/pkg/domain"
)

// metrics counts solve requests and times them, labelled by method and
// outcome ("ok" or "error").
type metrics struct {
	solves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var defaultMetrics = &metrics{
	solves: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zof",
		Name:      "solve_requests_total",
		Help:      "Number of solve requests handled, by method and status.",
	}, []string{"method", "status"}),
	duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zof",
		Name:      "solve_duration_seconds",
		Help:      "Wall time of solve requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"}),
}

// newMetrics returns the process-wide collectors. promauto registers
// on the default registry, which only allows one registration per
// name, so all handlers share a single set.
func newMetrics() *metrics {
	return defaultMetrics
}

func (m *metrics) observe(method domain.Method, status string, d time.Duration) {
	m.solves.WithLabelValues(string(method), status).Inc()
	m.duration.WithLabelValues(string(method), status).Observe(d.Seconds())
}
