package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	aggregationsTotal   *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
	subscriptionsPosted prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		aggregationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statistics_aggregations_total",
				Help: "Total number of statistics aggregations by kind and result",
			},
			[]string{"kind", "result"},
		),
		aggregationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "statistics_aggregation_duration_milliseconds",
				Help:    "Statistics aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"kind"},
		),
		subscriptionsPosted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "subscriptions_posted_total",
				Help: "Total number of subscriptions posted to the ledger",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordAggregation(kind string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.aggregationsTotal.WithLabelValues(kind, result).Inc()
	m.aggregationDuration.WithLabelValues(kind).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordSubscriptionPosted() {
	m.subscriptionsPosted.Inc()
}

// NoopMetrics discards all observations. Used in tests.
type NoopMetrics struct{}

func (NoopMetrics) RecordAggregation(string, time.Duration, error) {}
func (NoopMetrics) RecordSubscriptionPosted()                      {}
