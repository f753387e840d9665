package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector aggregates the service counters. Each server context
// owns its registry so tests can spin up several instances.
type MetricsCollector struct {
	registry *prometheus.Registry

	requestDuration      *prometheus.HistogramVec
	requestsTotal        *prometheus.CounterVec
	classificationsTotal *prometheus.CounterVec
}

// NewMetricsCollector builds and registers the service metrics.
func NewMetricsCollector() *MetricsCollector {
	m := &MetricsCollector{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "geomag_request_duration_seconds",
				Help: "Time spent processing a request",
			},
			[]string{"path"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geomag_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "status"},
		),
		classificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geomag_classifications_total",
				Help: "Field line classifications by topology",
			},
			[]string{"topology"},
		),
	}

	m.registry.MustRegister(m.requestDuration)
	m.registry.MustRegister(m.requestsTotal)
	m.registry.MustRegister(m.classificationsTotal)

	return m
}

// RecordRequest counts one handled request.
func (m *MetricsCollector) RecordRequest(path string, status int, duration time.Duration) {
	m.requestDuration.WithLabelValues(path).Observe(duration.Seconds())
	m.requestsTotal.WithLabelValues(path, http.StatusText(status)).Inc()
}

// RecordClassification counts one topology result.
func (m *MetricsCollector) RecordClassification(topology string) {
	m.classificationsTotal.WithLabelValues(topology).Inc()
}

// Handler exposes the registry in the prometheus text format.
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
