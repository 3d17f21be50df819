// Package metrics provides Prometheus collectors for training and edge
// evaluation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TrainingRunsTotal tracks training pipeline invocations by outcome
	TrainingRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "training_runs_total",
			Help: "Total number of training pipeline runs",
		},
		[]string{"status"}, // success, failure
	)

	// FoldDuration tracks per-fold fit and score latency
	FoldDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "training_fold_duration_seconds",
			Help:    "Walk-forward fold fit and score duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// QuoteEvaluationsTotal tracks per-quote evaluation outcomes
	QuoteEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_evaluations_total",
			Help: "Total number of odds quote evaluations",
		},
		[]string{"result"}, // evaluated, skipped, invalid
	)

	// OpportunitiesFound tracks opportunities surviving the edge filter
	OpportunitiesFound = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "opportunities_found",
			Help: "Number of betting opportunities in the latest evaluation pass",
		},
	)

	// PredictionCacheRequests tracks prediction cache effectiveness
	PredictionCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_cache_requests_total",
			Help: "Prediction cache lookups by outcome",
		},
		[]string{"outcome"}, // hit, miss
	)
)

// RecordTrainingRun records a completed training pipeline invocation.
func RecordTrainingRun(status string) {
	TrainingRunsTotal.WithLabelValues(status).Inc()
}

// ObserveFoldDuration records one fold's fit and score duration.
func ObserveFoldDuration(seconds float64) {
	FoldDuration.Observe(seconds)
}

// RecordQuoteEvaluation records a per-quote evaluation outcome.
func RecordQuoteEvaluation(result string) {
	QuoteEvaluationsTotal.WithLabelValues(result).Inc()
}

// RecordCacheLookup records a prediction cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		PredictionCacheRequests.WithLabelValues("hit").Inc()
		return
	}
	PredictionCacheRequests.WithLabelValues("miss").Inc()
}
