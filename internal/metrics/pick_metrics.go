// Package metrics defines pick-specific metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yourusername/siggys-picks/internal/picks"
)

// Pick counter vectors
var (
	PicksGeneratedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "picks_generated_total",
		Help:      "Total number of moneyline picks by side",
	}, []string{"side"})

	PucklineRecommendationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "puckline_recommendations_total",
		Help:      "Total number of underdog puckline recommendations by side",
	}, []string{"side"})

	UnderdogBumpsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "underdog_bumps_total",
		Help:      "Total number of underdog bumps applied by side",
	}, []string{"side"})
)

// Pick histograms
var (
	MoneylineConfidence = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "moneyline_confidence",
		Help:      "Moneyline confidence scores (0-100)",
		Buckets:   prometheus.LinearBuckets(10, 10, 10),
	})

	PucklineConfidence = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "puckline_confidence",
		Help:      "Underdog puckline confidence scores (0-100)",
		Buckets:   prometheus.LinearBuckets(10, 10, 10),
	})
)

// PickRecorder feeds pick evaluations into the registry
type PickRecorder struct{}

// NewPickRecorder makes sure the registry exists and returns a recorder
func NewPickRecorder() *PickRecorder {
	InitRegistry()
	return &PickRecorder{}
}

// RecordEvaluation records one evaluation and how long it took.
func (PickRecorder) RecordEvaluation(ev picks.Evaluation, duration time.Duration) {
	result := ev.Result
	PicksGeneratedTotal.WithLabelValues(string(result.MoneylinePick)).Inc()
	MoneylineConfidence.Observe(float64(result.MoneylineConfidence))
	PickEvaluationDuration.Observe(duration.Seconds())

	if !ev.MarketAvailable {
		MarketFallbacksTotal.Inc()
	}
	if ev.BumpApplied {
		UnderdogBumpsTotal.WithLabelValues(string(ev.Underdog)).Inc()
	}
	if pl := result.UnderdogPuckline; pl != nil {
		PucklineRecommendationsTotal.WithLabelValues(string(pl.Side)).Inc()
		PucklineConfidence.Observe(float64(pl.Confidence))
	}
}

// RecordBatch records a finished batch evaluation.
func (PickRecorder) RecordBatch(matches int, duration time.Duration) {
	RecordBatch(matches, duration.Seconds())
}
