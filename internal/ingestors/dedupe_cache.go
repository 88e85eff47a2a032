package ingestors

import (
	"sync"
	"time"
)

// dedupeCache remembers recently persisted event ids for a trailing window.
// It is a cheap first line against redelivered batches; the event log's
// unique constraint is the authoritative check. Ids are recorded only after
// the append commits, so a failed batch can be redelivered in full.
type dedupeCache struct {
	mu     sync.Mutex
	window time.Duration
	seen   map[string]time.Time
}

func newDedupeCache(window time.Duration) *dedupeCache {
	return &dedupeCache{
		window: window,
		seen:   make(map[string]time.Time),
	}
}

// seenRecently reports whether id was recorded within the window.
func (c *dedupeCache) seenRecently(id string, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	at, ok := c.seen[id]
	return ok && now.Sub(at) <= c.window
}

// record remembers a persisted event id.
func (c *dedupeCache) record(id string, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seen[id] = now
	if len(c.seen)%1024 == 0 {
		c.pruneLocked(now)
	}
}

func (c *dedupeCache) pruneLocked(now time.Time) {
	horizon := now.Add(-c.window)
	for id, at := range c.seen {
		if at.Before(horizon) {
			delete(c.seen, id)
		}
	}
}
