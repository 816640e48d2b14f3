// Package cache holds the read-optimized eatery snapshot served by the API
// and the publisher that repopulates it from the database.
package cache

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"dining_sync/internal/domain"
)

// ErrCold is returned before the first snapshot has been stored.
var ErrCold = errors.New("cache is cold")

// Snapshot is an immutable view of every eatery. Tag changes on every Set.
type Snapshot struct {
	Eateries    []domain.Eatery
	Tag         string
	PublishedAt time.Time
}

// Cache swaps whole snapshots atomically; readers never block writers.
// Entries never expire.
type Cache struct {
	current atomic.Pointer[Snapshot]
	seq     atomic.Uint64
	now     func() time.Time
}

func New() *Cache {
	return &Cache{now: time.Now}
}

func (c *Cache) Get() (*Snapshot, error) {
	snap := c.current.Load()
	if snap == nil {
		return nil, ErrCold
	}
	return snap, nil
}

func (c *Cache) Set(eateries []domain.Eatery) *Snapshot {
	if eateries == nil {
		eateries = []domain.Eatery{}
	}
	now := c.now()
	snap := &Snapshot{
		Eateries:    eateries,
		Tag:         strconv.FormatInt(now.UnixNano(), 10) + "-" + strconv.FormatUint(c.seq.Add(1), 10),
		PublishedAt: now,
	}
	c.current.Store(snap)
	return snap
}

// Refresh lets the cache act as a publish target.
func (c *Cache) Refresh(_ context.Context, eateries []domain.Eatery) error {
	c.Set(eateries)
	return nil
}

// Find returns the eatery with the given cornell id.
func (s *Snapshot) Find(cornellID int64) (domain.Eatery, bool) {
	for _, e := range s.Eateries {
		if e.CornellID == cornellID {
			return e, true
		}
	}
	return domain.Eatery{}, false
}
