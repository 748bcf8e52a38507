package pagesrv

import (
	"time"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts how often each sub-operation is issued, skipped or fails.
// A nil *Metrics records nothing.
type Metrics struct {
	calls    *prometheus.CounterVec
	skipped  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pager",
			Subsystem: "orchestrator",
			Name:      "operation_calls_total",
			Help:      "Total number of sub-operation calls issued",
		}, []string{"role", "operation"}),

		skipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pager",
			Subsystem: "orchestrator",
			Name:      "operation_skipped_total",
			Help:      "Total number of sub-operation calls avoided because the result was not requested",
		}, []string{"role", "operation"}),

		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pager",
			Subsystem: "orchestrator",
			Name:      "operation_failures_total",
			Help:      "Total number of failed sub-operation calls",
		}, []string{"role", "operation"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pager",
			Subsystem: "orchestrator",
			Name:      "operation_duration_seconds",
			Help:      "Sub-operation latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"role", "operation"}),
	}
}

func (m *Metrics) observe(role pagedomain.Role, operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(string(role), operation).Inc()
	m.duration.WithLabelValues(string(role), operation).Observe(elapsed.Seconds())
	if err != nil {
		m.failures.WithLabelValues(string(role), operation).Inc()
	}
}

func (m *Metrics) skip(role pagedomain.Role, operation string) {
	if m == nil {
		return
	}
	m.skipped.WithLabelValues(string(role), operation).Inc()
}
