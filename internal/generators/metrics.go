package generators

import (
	"streaming-analytics/internal/shared/metrics"
)

var (
	metricEventsGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubGenerator,
			Name:      "events_generated_total",
		},
		[]string{"event_type"},
	)

	metricBatchesDroppedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubGenerator,
			Name:      "batches_dropped_total",
		},
	)
)
