// console/cache/poller.go
package cache

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
)

// DefaultPollInterval is the refresh interval of a poller when none is given.
const DefaultPollInterval = 30 * time.Second

type Result[V any] struct {
	Value V
	Err   error
	At    time.Time
}

// Poller re-runs a fetch immediately and then on every interval until it is
// stopped or its parent context ends. Results holds only the latest result;
// a slow reader sees the newest value, not a backlog.
type Poller[V any] struct {
	key      string
	interval time.Duration
	fetch    FetchFunc[V]
	onResult func(Result[V])

	results chan Result[V]
	cancel  context.CancelFunc
	done    chan struct{}
	active  atomic.Bool
	stop    sync.Once
}

// StartPoller launches a poller. onResult, when non-nil, is called for every
// result before it is offered on Results.
func StartPoller[V any](ctx context.Context, key string, interval time.Duration, fetch FetchFunc[V], onResult func(Result[V])) *Poller[V] {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	pollCtx, cancel := context.WithCancel(ctx)
	p := &Poller[V]{
		key:      key,
		interval: interval,
		fetch:    fetch,
		onResult: onResult,
		results:  make(chan Result[V], 1),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	p.active.Store(true)
	go p.run(pollCtx)
	return p
}

func (p *Poller[V]) run(ctx context.Context) {
	defer close(p.done)
	defer close(p.results)
	defer p.active.Store(false)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Poller stopped", zap.String("key", p.key))
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller[V]) tick(ctx context.Context) {
	value, err := p.fetch(ctx)
	if ctx.Err() != nil {
		return
	}
	res := Result[V]{Value: value, Err: err, At: time.Now()}
	if err != nil {
		logger.Warn("Poll fetch failed", zap.String("key", p.key), zap.Error(err))
	}
	if p.onResult != nil {
		p.onResult(res)
	}
	// keep only the newest result
	select {
	case <-p.results:
	default:
	}
	select {
	case p.results <- res:
	default:
	}
}

func (p *Poller[V]) Key() string {
	return p.key
}

// Results is closed once the poller has stopped.
func (p *Poller[V]) Results() <-chan Result[V] {
	return p.results
}

func (p *Poller[V]) Active() bool {
	return p.active.Load()
}

// Stop cancels the poller. It does not wait for an in-flight fetch, so it
// may be called from inside that fetch; use Done to wait for the exit. It is
// safe to call more than once.
func (p *Poller[V]) Stop() {
	p.active.Store(false)
	p.stop.Do(p.cancel)
}

// Done is closed once the polling goroutine has exited.
func (p *Poller[V]) Done() <-chan struct{} {
	return p.done
}

// Stopper is anything PollerSet can stop.
type Stopper interface {
	Stop()
}

// PollerSet tracks a service's pollers by cache key. Adding a poller under a
// key that is already polled stops the old one.
type PollerSet struct {
	mu      sync.Mutex
	pollers map[string]Stopper
}

func NewPollerSet() *PollerSet {
	return &PollerSet{pollers: make(map[string]Stopper)}
}

func (s *PollerSet) Add(key string, p Stopper) {
	s.mu.Lock()
	old := s.pollers[key]
	s.pollers[key] = p
	s.mu.Unlock()
	if old != nil {
		old.Stop()
	}
}

// Get returns the poller registered under key.
func (s *PollerSet) Get(key string) (Stopper, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pollers[key]
	return p, ok
}

func (s *PollerSet) Stop(key string) bool {
	s.mu.Lock()
	p, ok := s.pollers[key]
	delete(s.pollers, key)
	s.mu.Unlock()
	if ok {
		p.Stop()
	}
	return ok
}

func (s *PollerSet) StopAll() {
	s.mu.Lock()
	pollers := s.pollers
	s.pollers = make(map[string]Stopper)
	s.mu.Unlock()
	for _, p := range pollers {
		p.Stop()
	}
}

func (s *PollerSet) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.pollers))
	for k := range s.pollers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
