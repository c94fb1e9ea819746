package classroom

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// SnapshotCache serves platform snapshots with a TTL, collapsing concurrent
// refreshes into a single upstream crawl.
type SnapshotCache struct {
	client Client
	ttl    time.Duration

	mu       sync.RWMutex
	snapshot *Snapshot
	sf       singleflight.Group
}

// NewSnapshotCache creates a cache over the given client. A zero TTL
// disables caching: every Get fetches fresh.
func NewSnapshotCache(client Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, ttl: ttl}
}

// Get returns the cached snapshot, crawling the platform when the cache is
// empty or expired. Concurrent callers during a refresh share one crawl.
func (c *SnapshotCache) Get(ctx context.Context) (*Snapshot, error) {
	// Fast path: check if a fresh snapshot exists
	c.mu.RLock()
	snapshot := c.snapshot
	c.mu.RUnlock()

	if snapshot != nil && !c.expired(snapshot) {
		return snapshot, nil
	}

	// Slow path: refresh using singleflight to prevent stampedes
	result, err, _ := c.sf.Do("snapshot", func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		snapshot := c.snapshot
		c.mu.RUnlock()

		if snapshot != nil && !c.expired(snapshot) {
			return snapshot, nil
		}

		fresh, err := FetchSnapshot(ctx, c.client)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snapshot = fresh
		c.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// Invalidate drops the cached snapshot so the next Get crawls again.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()
}

func (c *SnapshotCache) expired(s *Snapshot) bool {
	if c.ttl == 0 {
		return true // No caching
	}
	return time.Since(s.FetchedAt) > c.ttl
}
