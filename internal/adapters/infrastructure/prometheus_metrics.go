package infrastructure

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics implements the MetricsRecorder port on a private registry
type PrometheusMetrics struct {
	registry *prometheus.Registry

	externalCalls    *prometheus.CounterVec
	externalDuration *prometheus.HistogramVec
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	statsComputed    *prometheus.CounterVec
	changeEvents     *prometheus.CounterVec
}

// NewPrometheusMetrics registers the application collectors plus the Go and
// process collectors on a fresh registry
func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	m := &PrometheusMetrics{
		registry: registry,
		externalCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weathertodo_external_calls_total",
				Help: "The total number of external API calls",
			},
			[]string{"provider", "operation", "outcome"},
		),
		externalDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weathertodo_external_call_duration_seconds",
				Help:    "External API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "operation"},
		),
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weathertodo_cache_hits_total",
				Help: "The total number of cache hits",
			},
			[]string{"cache_type"},
		),
		cacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weathertodo_cache_misses_total",
				Help: "The total number of cache misses",
			},
			[]string{"cache_type"},
		),
		statsComputed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weathertodo_statistics_computations_total",
				Help: "The total number of statistics computations, by query",
			},
			[]string{"source"},
		),
		changeEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weathertodo_change_events_total",
				Help: "The total number of todo change events published",
			},
			[]string{"kind"},
		),
	}

	registry.MustRegister(
		m.externalCalls,
		m.externalDuration,
		m.cacheHits,
		m.cacheMisses,
		m.statsComputed,
		m.changeEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *PrometheusMetrics) RecordExternalCall(provider, operation string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.externalCalls.WithLabelValues(provider, operation, outcome).Inc()
	m.externalDuration.WithLabelValues(provider, operation).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordCacheHit(cacheType string) {
	m.cacheHits.WithLabelValues(cacheType).Inc()
}

func (m *PrometheusMetrics) RecordCacheMiss(cacheType string) {
	m.cacheMisses.WithLabelValues(cacheType).Inc()
}

func (m *PrometheusMetrics) RecordStatisticsComputation(source string) {
	m.statsComputed.WithLabelValues(source).Inc()
}

func (m *PrometheusMetrics) RecordChangeEvent(kind string) {
	m.changeEvents.WithLabelValues(kind).Inc()
}

// Registry exposes the registry for gathering in tests
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
