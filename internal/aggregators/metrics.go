package aggregators

import (
	"streaming-analytics/internal/shared/metrics"
)

const (
	outcomeApplied   = "applied"
	outcomeDuplicate = "duplicate"
	outcomeStale     = "stale"
)

var (
	// metricEventsRecordedTotal counts events offered to the aggregator by
	// outcome: applied (folded into a bucket), duplicate (at-least-once
	// redelivery, skipped), stale (older than the retention horizon, skipped).
	metricEventsRecordedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "events_recorded_total",
		},
		[]string{"outcome"},
	)

	// metricLiveBuckets tracks the number of memory-resident buckets. Bounded
	// by max_window/bucket_granularity; growth past that indicates an eviction bug.
	metricLiveBuckets = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "live_buckets",
		},
	)

	metricWindowQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "window_queries_total",
		},
		[]string{"window_size", metrics.FieldErrorCode},
	)
)
