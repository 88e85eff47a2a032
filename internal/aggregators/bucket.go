package aggregators

import (
	"sort"

	"streaming-analytics/internal/models"
)

// bucket is the unit of incremental aggregation: all counters for events whose
// timestamps fall into one fixed-duration interval. Buckets are only ever
// mutated under the aggregator's write lock.
type bucket struct {
	start int64 // unix seconds, aligned to the bucket granularity

	playCount           int64
	pauseCount          int64
	errorCount          int64
	bufferUnderrunCount int64

	errorsByType   map[models.ErrorType]int64
	titlePlays     map[string]int64
	deviceCounts   map[models.DeviceType]int64
	platformCounts map[models.Platform]int64
	countryCounts  map[string]int64

	users map[string]struct{} // distinct user IDs seen in this bucket
	seen  map[string]struct{} // event IDs applied, for at-least-once dedupe

	responseTimes *responseTimeHistogram

	maxOffset int64 // highest event-log offset applied to this bucket
}

func newBucket(start int64) *bucket {
	return &bucket{
		start:          start,
		errorsByType:   make(map[models.ErrorType]int64),
		titlePlays:     make(map[string]int64),
		deviceCounts:   make(map[models.DeviceType]int64),
		platformCounts: make(map[models.Platform]int64),
		countryCounts:  make(map[string]int64),
		users:          make(map[string]struct{}),
		seen:           make(map[string]struct{}),
		responseTimes:  newResponseTimeHistogram(),
	}
}

// apply folds one event into the bucket. The caller has already checked the
// seen set; apply records the event ID itself.
func (b *bucket) apply(event *models.Event) {
	b.seen[event.EventID] = struct{}{}

	switch event.EventType {
	case models.EventPlay:
		b.playCount++
		b.titlePlays[event.Title]++
	case models.EventPause:
		b.pauseCount++
	case models.EventError:
		b.errorCount++
		b.errorsByType[event.ErrorType]++
	case models.EventBufferUnderrun:
		b.bufferUnderrunCount++
	}

	b.deviceCounts[event.DeviceType]++
	b.platformCounts[event.Platform]++
	b.countryCounts[event.Country]++

	if event.UserID != "" {
		b.users[event.UserID] = struct{}{}
	}
	if event.HasResponseTime() {
		b.responseTimes.Observe(*event.ResponseTimeMs)
	}
	if event.Offset > b.maxOffset {
		b.maxOffset = event.Offset
	}
}

func (b *bucket) totalEvents() int64 {
	return b.playCount + b.pauseCount + b.errorCount + b.bufferUnderrunCount
}

// toSnapshot serializes the bucket for the materialized snapshot store.
// Set members are sorted so encoding is deterministic.
func (b *bucket) toSnapshot() *models.BucketSnapshot {
	snap := &models.BucketSnapshot{
		BucketStart:         b.start,
		PlayCount:           b.playCount,
		PauseCount:          b.pauseCount,
		ErrorCount:          b.errorCount,
		BufferUnderrunCount: b.bufferUnderrunCount,
		ErrorsByType:        b.errorsByType,
		TitlePlays:          b.titlePlays,
		DeviceCounts:        b.deviceCounts,
		PlatformCounts:      b.platformCounts,
		CountryCounts:       b.countryCounts,
		Users:               sortedKeys(b.users),
		SeenEventIDs:        sortedKeys(b.seen),
		ResponseTimeCounts:  append([]int64(nil), b.responseTimes.counts...),
		ResponseTimeSumMs:   b.responseTimes.sumMs,
		ResponseTimeSamples: b.responseTimes.sampleCount,
		MaxOffset:           b.maxOffset,
	}
	return snap
}

func bucketFromSnapshot(snap *models.BucketSnapshot) *bucket {
	b := newBucket(snap.BucketStart)
	b.playCount = snap.PlayCount
	b.pauseCount = snap.PauseCount
	b.errorCount = snap.ErrorCount
	b.bufferUnderrunCount = snap.BufferUnderrunCount
	b.maxOffset = snap.MaxOffset
	for k, v := range snap.ErrorsByType {
		b.errorsByType[k] = v
	}
	for k, v := range snap.TitlePlays {
		b.titlePlays[k] = v
	}
	for k, v := range snap.DeviceCounts {
		b.deviceCounts[k] = v
	}
	for k, v := range snap.PlatformCounts {
		b.platformCounts[k] = v
	}
	for k, v := range snap.CountryCounts {
		b.countryCounts[k] = v
	}
	for _, u := range snap.Users {
		b.users[u] = struct{}{}
	}
	for _, id := range snap.SeenEventIDs {
		b.seen[id] = struct{}{}
	}
	copy(b.responseTimes.counts, snap.ResponseTimeCounts)
	b.responseTimes.sumMs = snap.ResponseTimeSumMs
	b.responseTimes.sampleCount = snap.ResponseTimeSamples
	return b
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
