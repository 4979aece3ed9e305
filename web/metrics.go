package web

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "task_tracker"

func newRequestsTotal(subsystem, name, help string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      name + "_requests_total",
			Help:      help + " requests total.",
		},
		[]string{"code", "reason"},
	)
}

func newDurationSeconds(subsystem, name, help string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      name + "_duration_seconds",
			Help:      help + " duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"code", "reason"},
	)
}

// requestMetrics 一个接口的请求数与耗时
type requestMetrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newRequestMetrics(subsystem, name, help string) requestMetrics {
	return requestMetrics{
		total:    newRequestsTotal(subsystem, name, help),
		duration: newDurationSeconds(subsystem, name, help),
	}
}

func (m requestMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.total, m.duration}
}

func (m requestMetrics) observe(start time.Time, code int, reason string) {
	c := strconv.Itoa(code)
	m.total.WithLabelValues(c, reason).Inc()
	m.duration.WithLabelValues(c, reason).Observe(time.Since(start).Seconds())
}
