package aggregators

import (
	"context"
	"sort"
	"sync"
	"time"

	"streaming-analytics/internal/models"
	"streaming-analytics/internal/shared/loggers"
)

const replayPageSize = 1000

// EventReplayer is the slice of the event log the aggregator needs to rebuild
// its in-memory state. The log is the source of truth; bucket state is a cache
// over it.
//
//go:generate mockgen -source=window_aggregator.go -destination=./mocks/window_aggregator_mock.go -package=mocks
type EventReplayer interface {
	// OffsetFor returns the first offset whose event timestamp is at or after t.
	OffsetFor(ctx context.Context, t time.Time) (int64, error)
	// ReadSince returns up to limit events with offset > afterOffset, in offset order.
	ReadSince(ctx context.Context, afterOffset int64, limit int) ([]*models.Event, error)
}

// WindowAggregator maintains rolling per-bucket statistics covering the
// largest tracked window. Every catalog window is answered from the same
// bucket series: Query sums the buckets inside [asOf-W, asOf].
//
// Writers take the exclusive lock per event; readers share the lock and see a
// consistent snapshot (no partially applied event is ever visible).
type WindowAggregator struct {
	granularity time.Duration
	windows     map[models.WindowSize]struct{}
	maxWindow   time.Duration

	mu      sync.RWMutex
	buckets map[int64]*bucket

	now    func() time.Time
	logger loggers.Logger
}

// NewWindowAggregator creates an aggregator tracking the given window catalog
// at the given bucket granularity. The caller validated at startup that the
// granularity divides the smallest window.
func NewWindowAggregator(granularity time.Duration, windows []models.WindowSize, logger loggers.Logger) *WindowAggregator {
	tracked := make(map[models.WindowSize]struct{}, len(windows))
	maxWindow := time.Duration(0)
	for _, w := range windows {
		tracked[w] = struct{}{}
		if w.Duration() > maxWindow {
			maxWindow = w.Duration()
		}
	}

	return &WindowAggregator{
		granularity: granularity,
		windows:     tracked,
		maxWindow:   maxWindow,
		buckets:     make(map[int64]*bucket),
		now:         func() time.Time { return time.Now().UTC() },
		logger:      logger,
	}
}

// Record folds one event into its bucket. Events older than the retention
// horizon and events already applied (at-least-once redelivery) are no-ops.
func (a *WindowAggregator) Record(ctx context.Context, event *models.Event) {
	now := a.now()
	if event.Timestamp.Before(now.Add(-a.maxWindow)) {
		loggers.Ctx(ctx).Debug().
			Str(loggers.FieldEventID, event.EventID).
			Time("event_time", event.Timestamp).
			Msg("event older than retention horizon, skipping")
		metricEventsRecordedTotal.WithLabelValues(outcomeStale).Inc()
		return
	}

	bucketStart := event.Timestamp.UTC().Truncate(a.granularity).Unix()

	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.buckets[bucketStart]
	if !ok {
		b = newBucket(bucketStart)
		a.buckets[bucketStart] = b
		a.evictLocked(now)
		metricLiveBuckets.Set(float64(len(a.buckets)))
	}

	if _, dup := b.seen[event.EventID]; dup {
		metricEventsRecordedTotal.WithLabelValues(outcomeDuplicate).Inc()
		return
	}

	b.apply(event)
	metricEventsRecordedTotal.WithLabelValues(outcomeApplied).Inc()
}

// Query sums the live buckets covering (asOf-window, asOf] into an
// AggregateWindow snapshot. A bucket straddling the window start is left out;
// only the live tail bucket may contribute events newer than asOf. Cost is
// proportional to the bucket count, never the event count.
func (a *WindowAggregator) Query(window models.WindowSize, asOf time.Time) (*models.AggregateWindow, error) {
	if _, ok := a.windows[window]; !ok {
		metricWindowQueriesTotal.WithLabelValues(string(window), codeUnsupportedWindow).Inc()
		return nil, errUnsupportedWindow(window)
	}

	asOf = asOf.UTC()
	windowStart := asOf.Add(-window.Duration())
	fromBucket := windowStart.Truncate(a.granularity).Unix()
	if !windowStart.Equal(windowStart.Truncate(a.granularity)) {
		fromBucket += int64(a.granularity / time.Second)
	}
	toBucket := asOf.Truncate(a.granularity).Unix()

	result := &models.AggregateWindow{
		WindowSize:       window,
		WindowStart:      windowStart,
		WindowEnd:        asOf,
		ErrorCountByType: make(map[models.ErrorType]int64),
		TitlePlayCounts:  make(map[string]int64),
		DeviceCounts:     make(map[models.DeviceType]int64),
		PlatformCounts:   make(map[models.Platform]int64),
		CountryCounts:    make(map[string]int64),
	}

	users := make(map[string]struct{})
	hist := newResponseTimeHistogram()

	a.mu.RLock()
	for start, b := range a.buckets {
		if start < fromBucket || start > toBucket {
			continue
		}
		result.PlayCount += b.playCount
		result.PauseCount += b.pauseCount
		result.ErrorCount += b.errorCount
		result.BufferUnderrunCount += b.bufferUnderrunCount
		for k, v := range b.errorsByType {
			result.ErrorCountByType[k] += v
		}
		for k, v := range b.titlePlays {
			result.TitlePlayCounts[k] += v
		}
		for k, v := range b.deviceCounts {
			result.DeviceCounts[k] += v
		}
		for k, v := range b.platformCounts {
			result.PlatformCounts[k] += v
		}
		for k, v := range b.countryCounts {
			result.CountryCounts[k] += v
		}
		for u := range b.users {
			users[u] = struct{}{}
		}
		hist.Merge(b.responseTimes)
	}
	a.mu.RUnlock()

	result.TotalEvents = result.PlayCount + result.PauseCount + result.ErrorCount + result.BufferUnderrunCount
	result.ActiveUsers = int64(len(users))
	result.ResponseTimes = hist.Stats()

	metricWindowQueriesTotal.WithLabelValues(string(window), "").Inc()
	return result, nil
}

// TopTitles ranks titles by play count within the window, count descending,
// title ascending on ties, so repeated queries on identical input agree.
func TopTitles(window *models.AggregateWindow, n int) []models.TitleCount {
	titles := make([]models.TitleCount, 0, len(window.TitlePlayCounts))
	for title, count := range window.TitlePlayCounts {
		titles = append(titles, models.TitleCount{Title: title, PlayCount: count})
	}

	sort.Slice(titles, func(i, j int) bool {
		if titles[i].PlayCount != titles[j].PlayCount {
			return titles[i].PlayCount > titles[j].PlayCount
		}
		return titles[i].Title < titles[j].Title
	})

	if n > 0 && len(titles) > n {
		titles = titles[:n]
	}
	if window.PlayCount > 0 {
		for i := range titles {
			titles[i].Percentage = float64(titles[i].PlayCount) / float64(window.PlayCount) * 100
		}
	}
	return titles
}

// Rebuild replays the durable event log from now-maxWindow and folds every
// event back into bucket state. Replaying over existing state is safe: the
// per-bucket seen sets make redelivery a no-op.
func (a *WindowAggregator) Rebuild(ctx context.Context, replayer EventReplayer) error {
	since := a.now().Add(-a.maxWindow)

	startOffset, err := replayer.OffsetFor(ctx, since)
	if err != nil {
		return errInternalReplayFailed(err)
	}
	return a.replayFrom(ctx, replayer, startOffset-1)
}

// ReplayFrom folds every logged event with offset > afterOffset into bucket
// state. Used after snapshot restore to catch up on the log tail.
func (a *WindowAggregator) ReplayFrom(ctx context.Context, replayer EventReplayer, afterOffset int64) error {
	return a.replayFrom(ctx, replayer, afterOffset)
}

func (a *WindowAggregator) replayFrom(ctx context.Context, replayer EventReplayer, afterOffset int64) error {
	replayed := 0
	for {
		events, err := replayer.ReadSince(ctx, afterOffset, replayPageSize)
		if err != nil {
			return errInternalReplayFailed(err)
		}
		if len(events) == 0 {
			break
		}
		for _, event := range events {
			a.Record(ctx, event)
			afterOffset = event.Offset
		}
		replayed += len(events)
	}

	loggers.Ctx(ctx).Info().Int("replayed_events", replayed).Msg("aggregate state rebuilt from event log")
	return nil
}

// MaxOffset returns the highest event-log offset folded into bucket state.
func (a *WindowAggregator) MaxOffset() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	max := int64(0)
	for _, b := range a.buckets {
		if b.maxOffset > max {
			max = b.maxOffset
		}
	}
	return max
}

// BucketCount returns the number of memory-resident buckets.
func (a *WindowAggregator) BucketCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.buckets)
}

// ExportSnapshots serializes every live bucket, oldest first.
func (a *WindowAggregator) ExportSnapshots() []*models.BucketSnapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	snaps := make([]*models.BucketSnapshot, 0, len(a.buckets))
	for _, b := range a.buckets {
		snaps = append(snaps, b.toSnapshot())
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].BucketStart < snaps[j].BucketStart })
	return snaps
}

// RestoreSnapshots loads previously persisted buckets, dropping any that fell
// outside the retention horizon while the process was down.
func (a *WindowAggregator) RestoreSnapshots(snaps []*models.BucketSnapshot) {
	horizon := a.now().Add(-a.maxWindow).Truncate(a.granularity).Unix()

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, snap := range snaps {
		if snap.BucketStart < horizon {
			continue
		}
		a.buckets[snap.BucketStart] = bucketFromSnapshot(snap)
	}
	metricLiveBuckets.Set(float64(len(a.buckets)))
}

// evictLocked drops buckets older than the maximum tracked window. Bucket
// count stays bounded by maxWindow/granularity plus the current partial bucket.
func (a *WindowAggregator) evictLocked(now time.Time) {
	horizon := now.Add(-a.maxWindow).Truncate(a.granularity).Unix()
	for start := range a.buckets {
		if start < horizon {
			delete(a.buckets, start)
		}
	}
}
