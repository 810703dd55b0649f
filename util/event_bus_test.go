// console/util/event_bus_test.go
package util_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

func TestEventBus(t *testing.T) {
	bus := util.NewEventBus()

	var payments, dues int32
	unsubscribe := bus.Subscribe(util.EventPaymentChanged, func(ctx context.Context, e util.Event) error {
		atomic.AddInt32(&payments, 1)
		assert.Equal(t, int64(7), e.Payload)
		return nil
	})
	bus.Subscribe(util.EventDuesChanged, func(ctx context.Context, e util.Event) error {
		atomic.AddInt32(&dues, 1)
		return nil
	})

	bus.Publish(context.Background(), util.EventPaymentChanged, int64(7))
	bus.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&payments))
	assert.Equal(t, int32(0), atomic.LoadInt32(&dues))

	unsubscribe()
	bus.Publish(context.Background(), util.EventPaymentChanged, int64(7))
	bus.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&payments))
}

func TestEventBus_PublishSync(t *testing.T) {
	bus := util.NewEventBus()

	handled := false
	bus.Subscribe(util.EventContractChanged, func(ctx context.Context, e util.Event) error {
		handled = true
		return nil
	})
	bus.Subscribe(util.EventContractChanged, func(ctx context.Context, e util.Event) error {
		return assert.AnError
	})

	bus.PublishSync(context.Background(), util.EventContractChanged, int64(3))
	assert.True(t, handled, "handler must have run before PublishSync returned")

	bus.PublishSync(context.Background(), util.EventFlatChanged, int64(3))
}
