// Package metrics provides the centralized Prometheus registry for the
// prediction service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PredictionsGeneratedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "predictions_generated_total",
		Help:      "Total number of spread predictions generated",
	})
	RecommendationsEmittedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "recommendations_emitted_total",
		Help:      "Total number of betting recommendations emitted",
	})
	BacktestRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "backtest_runs_total",
		Help:      "Total number of backtest harness runs by status",
	}, []string{"status"})
	GamesIngestedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "games_ingested_total",
		Help:      "Total number of games ingested from the data provider",
	})
	RosterLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "roster_lookups_total",
		Help:      "Total roster-analytics lookups by outcome",
	}, []string{"outcome"})
)

// Gauge metrics
var (
	LatestATSAccuracy = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "latest_ats_accuracy",
		Help:      "ATS accuracy of the most recent backtest run",
	})
	RatedTeams = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "rated_teams",
		Help:      "Number of teams in the current ratings snapshot",
	})
)

// Histogram metrics
var (
	RatingsPassDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridiron_edge",
		Name:      "ratings_pass_duration_seconds",
		Help:      "Duration of the chronological ratings rebuild",
		Buckets:   prometheus.DefBuckets,
	})
	BacktestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridiron_edge",
		Name:      "backtest_duration_seconds",
		Help:      "Duration of full backtest harness runs",
		Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300},
	})
)

// Registry returns the singleton registry with all collectors registered
func Registry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			PredictionsGeneratedTotal,
			RecommendationsEmittedTotal,
			BacktestRunsTotal,
			GamesIngestedTotal,
			RosterLookupsTotal,
			LatestATSAccuracy,
			RatedTeams,
			RatingsPassDuration,
			BacktestDuration,
		)
	})
	return registry
}

// Handler returns an HTTP handler for the metrics endpoint
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{})
}
