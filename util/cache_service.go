// console/util/cache_service.go

package util

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
)

// Invalidator is a named cache that can drop all its entries.
type Invalidator interface {
	Name() string
	InvalidateAll()
}

// CacheService keeps track of every service-owned cache so a session change
// can reset them together.
type CacheService struct {
	mu     sync.RWMutex
	caches map[string]Invalidator
}

func NewCacheService() *CacheService {
	return &CacheService{caches: make(map[string]Invalidator)}
}

// Register adds caches to the registry. A cache registered under an existing
// name replaces the previous one.
func (c *CacheService) Register(caches ...Invalidator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, cache := range caches {
		c.caches[cache.Name()] = cache
	}
}

// Clear resets a single cache. It reports whether the name was known.
func (c *CacheService) Clear(name string) bool {
	c.mu.RLock()
	cache, ok := c.caches[name]
	c.mu.RUnlock()
	if ok {
		cache.InvalidateAll()
	}
	return ok
}

func (c *CacheService) ClearAll() {
	c.mu.RLock()
	caches := make([]Invalidator, 0, len(c.caches))
	for _, cache := range c.caches {
		caches = append(caches, cache)
	}
	c.mu.RUnlock()

	for _, cache := range caches {
		cache.InvalidateAll()
	}
	logger.Info("All caches cleared", zap.Int("count", len(caches)))
}

func (c *CacheService) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.caches))
	for name := range c.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
