package streams

import (
	"streaming-analytics/internal/shared/metrics"
)

var (
	streamEvents = "events"

	metricEventsPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_published_total",
		},
		[]string{"stream_id"},
	)

	metricEventsConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	metricBufferDepth = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "buffer_depth",
		},
	)

	metricBufferDroppedEventsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "buffer_dropped_events_total",
		},
	)
)
