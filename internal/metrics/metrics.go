// Package metrics provides the Prometheus metrics registry for the pick engine and its HTTP surface.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "siggys_picks"

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	MarketFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_fallbacks_total",
		Help:      "Total number of picks computed without a usable moneyline market",
	})
	ConfigFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "config_fallbacks_total",
		Help:      "Total number of override payloads discarded in favour of the defaults",
	})
	BatchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batches_total",
		Help:      "Total number of batch evaluations",
	})
)

// Gauge metrics
var (
	LastBatchSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_batch_size",
		Help:      "Number of matches in the most recent batch evaluation",
	})
)

// Histogram metrics
var (
	PickEvaluationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "pick_evaluation_duration_seconds",
		Help:      "Duration of a single pick evaluation in seconds",
		Buckets:   []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01},
	})
	BatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "batch_duration_seconds",
		Help:      "Duration of batch evaluations in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(MarketFallbacksTotal)
		registry.MustRegister(ConfigFallbacksTotal)
		registry.MustRegister(BatchesTotal)

		// Register gauge metrics
		registry.MustRegister(LastBatchSize)

		// Register histogram metrics
		registry.MustRegister(PickEvaluationDuration)
		registry.MustRegister(BatchDuration)

		// Register pick metrics
		registry.MustRegister(PicksGeneratedTotal)
		registry.MustRegister(PucklineRecommendationsTotal)
		registry.MustRegister(UnderdogBumpsTotal)
		registry.MustRegister(MoneylineConfidence)
		registry.MustRegister(PucklineConfidence)

		// Register HTTP metrics
		registry.MustRegister(HTTPRequestsTotal)
		registry.MustRegister(HTTPRequestDuration)
		registry.MustRegister(RateLimitedTotal)
		registry.MustRegister(OverrideCacheLookupsTotal)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordConfigFallback records a rejected overrides payload.
func RecordConfigFallback() {
	ConfigFallbacksTotal.Inc()
}

// RecordBatch records a finished batch evaluation.
func RecordBatch(matches int, durationSeconds float64) {
	BatchesTotal.Inc()
	LastBatchSize.Set(float64(matches))
	BatchDuration.Observe(durationSeconds)
}
