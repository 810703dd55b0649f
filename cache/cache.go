// console/cache/cache.go
package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
)

// FetchFunc loads the value for a key from the backend.
type FetchFunc[V any] func(ctx context.Context) (V, error)

type entry[V any] struct {
	value     V
	fetchedAt time.Time
}

// Cache is a TTL cache owned by a single service. Concurrent reads of the
// same key share one in-flight fetch. Failed fetches are never cached.
type Cache[V any] struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu         sync.Mutex
	entries    map[string]*entry[V]
	generation uint64
	group      singleflight.Group
}

func New[V any](name string, ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		name:    name,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*entry[V]),
	}
}

// WithClock replaces the time source; used by tests.
func (c *Cache[V]) WithClock(now func() time.Time) *Cache[V] {
	c.now = now
	return c
}

func (c *Cache[V]) Name() string {
	return c.name
}

// Get returns the cached value for key while it is fresh. Otherwise, or when
// forceRefresh is set, it fetches and replaces the entry.
func (c *Cache[V]) Get(ctx context.Context, key string, forceRefresh bool, fetch FetchFunc[V]) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && !forceRefresh && c.now().Sub(e.fetchedAt) < c.ttl {
		value := e.value
		c.mu.Unlock()
		logger.Debug("Cache hit", zap.String("cache", c.name), zap.String("key", key))
		return value, nil
	}
	gen := c.generation
	flightKey := strconv.FormatUint(gen, 10) + ":" + key
	if forceRefresh {
		c.group.Forget(flightKey)
	}
	c.mu.Unlock()

	ch := c.group.DoChan(flightKey, func() (interface{}, error) {
		// detached so one caller giving up does not fail the others
		value, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return value, err
		}
		c.mu.Lock()
		if c.generation == gen {
			c.entries[key] = &entry[V]{value: value, fetchedAt: c.now()}
		}
		c.mu.Unlock()
		return value, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			var zero V
			return zero, res.Err
		}
		return res.Val.(V), nil
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// Set stores value as a fresh entry.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry[V]{value: value, fetchedAt: c.now()}
}

// Peek returns the entry for key regardless of its age.
func (c *Cache[V]) Peek(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.generation++
}

// InvalidateAll drops every entry. Fetches already in flight still return to
// their callers but are not stored.
func (c *Cache[V]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry[V])
	c.generation++
	logger.Debug("Cache invalidated", zap.String("cache", c.name))
}

// MarkAllStale keeps the entries but forces the next read of each key to
// fetch again.
func (c *Cache[V]) MarkAllStale() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		e.fetchedAt = time.Time{}
	}
	c.generation++
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
