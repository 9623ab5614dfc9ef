package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the sheet sync job

var (
	// Stats API call metrics
	APICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nrsi_api_calls_total",
			Help: "Total number of MLB Stats API calls",
		},
		[]string{"endpoint", "status"},
	)

	APICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nrsi_api_call_duration_seconds",
			Help:    "Duration of MLB Stats API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Player id cache metrics
	PlayerCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nrsi_player_cache_hits_total",
			Help: "Total number of player id cache hits",
		},
	)

	PlayerCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nrsi_player_cache_misses_total",
			Help: "Total number of player id cache misses",
		},
	)

	// Stats retrieval metrics
	StatsRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nrsi_stats_retries_total",
			Help: "Total number of pitching stats retry attempts",
		},
	)

	StatsPlaceholdersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nrsi_stats_placeholders_total",
			Help: "Total number of stat blocks that fell back to blank placeholders",
		},
	)

	// Pipeline metrics
	RowsAssembledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nrsi_rows_assembled_total",
			Help: "Total number of output rows assembled",
		},
	)

	// Sheet metrics
	SheetOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nrsi_sheet_operations_total",
			Help: "Total number of Google Sheets operations",
		},
		[]string{"operation", "status"},
	)

	SheetRowsWritten = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nrsi_sheet_rows_written",
			Help: "Number of data rows written in the last sheet update",
		},
	)
)

// RecordAPICall records the outcome of a single Stats API call.
func RecordAPICall(endpoint, status string, duration float64) {
	APICallsTotal.WithLabelValues(endpoint, status).Inc()
	APICallDuration.WithLabelValues(endpoint).Observe(duration)
}

// RecordSheetOperation records the outcome of a clear or update call.
func RecordSheetOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	SheetOperationsTotal.WithLabelValues(operation, status).Inc()
}
