// console/util/navigator_test.go
package util_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

type countingCache struct {
	name  string
	calls int
}

func (c *countingCache) Name() string  { return c.name }
func (c *countingCache) InvalidateAll() { c.calls++ }

func TestNavigator_RedirectToLogin(t *testing.T) {
	bus := util.NewEventBus()
	var got util.Redirect
	bus.Subscribe(util.EventLoginRedirect, func(ctx context.Context, e util.Event) error {
		got = e.Payload.(util.Redirect)
		return nil
	})

	nav := util.NewNavigator(bus)
	nav.SetLocation("/dashboard/contracts/4")
	r := nav.RedirectToLogin(context.Background())
	bus.Wait()

	assert.Equal(t, util.LoginRoute, r.Path)
	assert.Equal(t, "/dashboard/contracts/4", r.ReturnURL)
	assert.Equal(t, "/auth/login?returnUrl=%2Fdashboard%2Fcontracts%2F4", r.Destination)
	assert.Equal(t, r, got)
	assert.Equal(t, util.LoginRoute, nav.Location())

	pending, ok := nav.TakeRedirect()
	require.True(t, ok)
	assert.Equal(t, r, pending)
	_, ok = nav.TakeRedirect()
	assert.False(t, ok)
}

func TestCacheService_ClearAll(t *testing.T) {
	registry := util.NewCacheService()
	contracts := &countingCache{name: "contracts"}
	payments := &countingCache{name: "payments"}
	registry.Register(contracts, payments)

	assert.Equal(t, []string{"contracts", "payments"}, registry.Names())

	registry.ClearAll()
	assert.Equal(t, 1, contracts.calls)
	assert.Equal(t, 1, payments.calls)

	assert.True(t, registry.Clear("payments"))
	assert.False(t, registry.Clear("unknown"))
	assert.Equal(t, 2, payments.calls)
}
