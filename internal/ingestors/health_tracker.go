package ingestors

import (
	"sync"
	"time"

	"streaming-analytics/internal/models"
)

const trailingSlots = 60 // one slot per second

// healthTracker accumulates ingestion outcomes and answers point-in-time
// health snapshots. Throughput and error rate come from per-second ring
// buffers covering the trailing minute.
type healthTracker struct {
	mu sync.Mutex

	lastBatchAt   time.Time
	acceptedTotal int64
	rejectedTotal int64
	failedBatches int64

	acceptedRing [trailingSlots]int64
	rejectedRing [trailingSlots]int64
	slotStamps   [trailingSlots]int64 // unix second each slot was last written
}

func newHealthTracker() *healthTracker {
	return &healthTracker{}
}

func (t *healthTracker) recordBatch(now time.Time, accepted, rejected int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastBatchAt = now
	t.acceptedTotal += int64(accepted)
	t.rejectedTotal += int64(rejected)

	sec := now.Unix()
	slot := int(sec % trailingSlots)
	if t.slotStamps[slot] != sec {
		t.acceptedRing[slot] = 0
		t.rejectedRing[slot] = 0
		t.slotStamps[slot] = sec
	}
	t.acceptedRing[slot] += int64(accepted)
	t.rejectedRing[slot] += int64(rejected)
}

func (t *healthTracker) recordFailedBatch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failedBatches++
}

func (t *healthTracker) snapshot(now time.Time) models.PipelineHealth {
	t.mu.Lock()
	defer t.mu.Unlock()

	var accepted, rejected int64
	horizon := now.Unix() - trailingSlots
	for slot := 0; slot < trailingSlots; slot++ {
		if t.slotStamps[slot] > horizon {
			accepted += t.acceptedRing[slot]
			rejected += t.rejectedRing[slot]
		}
	}

	health := models.PipelineHealth{
		LastBatchAt:      t.lastBatchAt,
		ThroughputPerSec: float64(accepted) / trailingSlots,
		AcceptedTotal:    t.acceptedTotal,
		RejectedTotal:    t.rejectedTotal,
		FailedBatches:    t.failedBatches,
	}
	if !t.lastBatchAt.IsZero() {
		health.LagSeconds = now.Sub(t.lastBatchAt).Seconds()
	}
	if total := accepted + rejected; total > 0 {
		health.ErrorRate = float64(rejected) / float64(total)
	}
	return health
}
