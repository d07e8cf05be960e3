package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	computations        *prometheus.CounterVec
	computationDuration *prometheus.HistogramVec
	transactionsLoaded  prometheus.Gauge
	httpRequests        *prometheus.CounterVec
	seededTransactions  prometheus.Counter
}

// NewPrometheusMetrics registers the analytics collectors with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return newPrometheusMetrics(promauto.With(prometheus.DefaultRegisterer))
}

// NewPrometheusMetricsWithRegistry registers the collectors with reg, which keeps
// repeated construction in tests from colliding on the default registry
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) MetricsRecorderInterface {
	return newPrometheusMetrics(promauto.With(reg))
}

func newPrometheusMetrics(factory promauto.Factory) *PrometheusMetrics {
	return &PrometheusMetrics{
		computations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_computations_total",
				Help: "Total number of analytics computations by operation and cache status",
			},
			[]string{"operation", "status"},
		),
		computationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_computation_duration_milliseconds",
				Help:    "Analytics computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 14),
			},
			[]string{"operation"},
		),
		transactionsLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "analytics_transactions_loaded",
				Help: "Number of transactions loaded for the latest analytics request",
			},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_http_requests_total",
				Help: "Total number of analytics API requests by endpoint and status code class",
			},
			[]string{"endpoint", "status"},
		),
		seededTransactions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "analytics_seeded_transactions_total",
				Help: "Total number of synthetic transactions written by the seeder",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "analytics.computation":
		m.computations.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case "http.request":
		m.httpRequests.WithLabelValues(tags["endpoint"], tags["status"]).Inc()
	case "seed.transaction":
		m.seededTransactions.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if operation, ok := strings.CutPrefix(name, "analytics."); ok {
		m.computationDuration.WithLabelValues(operation).Observe(float64(duration.Microseconds()) / 1000)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "analytics.transactions_loaded":
		m.transactionsLoaded.Set(value)
	case "seed.transactions":
		m.seededTransactions.Add(value)
	}
}
