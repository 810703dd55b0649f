// console/cache/poller_test.go
package cache_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/aptmgr/console/cache"
)

func TestPoller(t *testing.T) {
	t.Run("FetchesImmediatelyThenOnInterval", func(t *testing.T) {
		var calls int32
		var seen int32
		p := cache.StartPoller(context.Background(), "contracts:1", 20*time.Millisecond,
			func(ctx context.Context) (int32, error) {
				return atomic.AddInt32(&calls, 1), nil
			},
			func(r cache.Result[int32]) { atomic.AddInt32(&seen, 1) })
		defer p.Stop()

		first := <-p.Results()
		assert.GreaterOrEqual(t, first.Value, int32(1))
		assert.True(t, p.Active())

		require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 3 }, time.Second, 5*time.Millisecond)
		assert.GreaterOrEqual(t, atomic.LoadInt32(&seen), int32(3))
	})

	t.Run("StopIsIdempotentAndClosesResults", func(t *testing.T) {
		p := cache.StartPoller(context.Background(), "k", time.Hour,
			func(ctx context.Context) (string, error) { return "v", nil }, nil)

		p.Stop()
		p.Stop()
		assert.False(t, p.Active())

		for range p.Results() {
		}
	})

	t.Run("ParentContextStopsPoller", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		p := cache.StartPoller(ctx, "k", time.Hour,
			func(ctx context.Context) (string, error) { return "v", nil }, nil)
		cancel()

		select {
		case <-p.Done():
		case <-time.After(time.Second):
			t.Fatal("poller did not stop")
		}
	})
}

func TestPollerSet(t *testing.T) {
	set := cache.NewPollerSet()
	fetch := func(ctx context.Context) (string, error) { return "v", nil }

	a := cache.StartPoller(context.Background(), "a", time.Hour, fetch, nil)
	b := cache.StartPoller(context.Background(), "b", time.Hour, fetch, nil)
	replacement := cache.StartPoller(context.Background(), "a", time.Hour, fetch, nil)
	set.Add("a", a)
	set.Add("b", b)
	set.Add("a", replacement)

	assert.False(t, a.Active())
	assert.Equal(t, []string{"a", "b"}, set.Keys())

	assert.True(t, set.Stop("b"))
	assert.False(t, set.Stop("b"))
	assert.False(t, b.Active())

	set.StopAll()
	assert.False(t, replacement.Active())
	assert.Empty(t, set.Keys())
}
