package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the server's collectors on a private registry so several
// servers (and tests) can coexist in one process.
type Metrics struct {
	Registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	projections  *prometheus.CounterVec
}

// NewMetrics creates and registers the server collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "invcalc",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "invcalc",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		projections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "invcalc",
				Name:      "projections_total",
				Help:      "Projections served, by response format.",
			},
			[]string{"format"},
		),
	}
	m.Registry.MustRegister(m.httpRequests, m.httpDuration, m.projections)
	return m
}

// RecordHTTPRequest counts one request and observes its duration.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	statusLabel := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	m.httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// RecordProjection counts one successful projection response.
func (m *Metrics) RecordProjection(format string) {
	m.projections.WithLabelValues(format).Inc()
}
