// console/service/fetch.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/aptmgr/console/cache"
	"github.com/dev-mohitbeniwal/aptmgr/console/config"
	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

// FetchOptions controls how a cached read is served.
type FetchOptions struct {
	// ForceRefresh skips the cache and replaces the entry with the fresh result.
	ForceRefresh bool
	// EnablePolling keeps the entry refreshed in the background until
	// StopPolling is called for its key.
	EnablePolling bool
}

// CacheSettings holds the TTLs and polling interval shared by the services.
type CacheSettings struct {
	ListTTL      time.Duration
	DetailTTL    time.Duration
	StatsTTL     time.Duration
	PollInterval time.Duration
}

func CacheSettingsFromViper() CacheSettings {
	return CacheSettings{
		ListTTL:      config.GetDuration("cache.listTTL"),
		DetailTTL:    config.GetDuration("cache.detailTTL"),
		StatsTTL:     config.GetDuration("cache.statsTTL"),
		PollInterval: config.GetDuration("polling.interval"),
	}
}

// DefaultCacheSettings mirrors the configuration defaults.
func DefaultCacheSettings() CacheSettings {
	return CacheSettings{
		ListTTL:      5 * time.Minute,
		DetailTTL:    15 * time.Minute,
		StatsTTL:     3 * time.Minute,
		PollInterval: cache.DefaultPollInterval,
	}
}

// pollers owns the background refreshes of one service.
type pollers struct {
	set      *cache.PollerSet
	interval time.Duration
}

func newPollers(interval time.Duration) *pollers {
	return &pollers{set: cache.NewPollerSet(), interval: interval}
}

func pollerKey(cacheName, key string) string {
	return cacheName + ":" + key
}

// startPolling refreshes key of c every interval. Successful results replace
// the cache entry so plain reads see them too.
func startPolling[V any](ctx context.Context, p *pollers, c *cache.Cache[V], key string, fetch cache.FetchFunc[V]) *cache.Poller[V] {
	pk := pollerKey(c.Name(), key)
	poller := cache.StartPoller(ctx, pk, p.interval, fetch, func(r cache.Result[V]) {
		if r.Err == nil {
			c.Set(key, r.Value)
		}
	})
	p.set.Add(pk, poller)
	logger.Debug("Polling started", zap.String("key", pk), zap.Duration("interval", p.interval))
	return poller
}

// cachedRead serves a read through c and, when asked, starts polling the
// same key. The poller outlives ctx; it ends with StopPolling.
func cachedRead[V any](ctx context.Context, p *pollers, c *cache.Cache[V], key string, opts FetchOptions, fetch, pollFetch cache.FetchFunc[V]) (V, error) {
	value, err := c.Get(ctx, key, opts.ForceRefresh, fetch)
	if err != nil {
		return value, err
	}
	if opts.EnablePolling {
		if _, ok := p.set.Get(pollerKey(c.Name(), key)); !ok {
			startPolling(context.WithoutCancel(ctx), p, c, key, pollFetch)
		}
	}
	return value, nil
}

func (p *pollers) stop(key string) bool {
	return p.set.Stop(key)
}

func (p *pollers) stopAll() {
	p.set.StopAll()
}

func (p *pollers) keys() []string {
	return p.set.Keys()
}

// notifySuccess shows a success toast for work the operator started.
// Background work (jobs, pollers) only logs.
func notifySuccess(ctx context.Context, notificationSvc *util.NotificationService, title string) {
	if gateway.IsBackground(ctx) {
		logger.Info(title)
		return
	}
	notificationSvc.Success(title, "")
}
