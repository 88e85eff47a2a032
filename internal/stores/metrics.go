package stores

import (
	"streaming-analytics/internal/shared/metrics"
)

var (
	metricStorageAppendsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStorage,
			Name:      "batch_appends_total",
		},
	)

	metricStoragePrunedEventsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStorage,
			Name:      "pruned_events_total",
		},
	)
)
