// console/util/loading_service_test.go
package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

func recvBool(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for loading update")
		return false
	}
}

func assertNoUpdate(t *testing.T, ch <-chan bool) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("unexpected loading update %v", v)
	case <-time.After(10 * time.Millisecond):
	}
}

func TestLoadingService_ReferenceCounted(t *testing.T) {
	svc := util.NewLoadingService()

	svc.StartLoading("get-flats")
	svc.StartLoading("get-flats")
	svc.StopLoading("get-flats")
	assert.True(t, svc.IsKeyLoading("get-flats"))
	assert.True(t, svc.IsLoading())

	svc.StopLoading("get-flats")
	assert.False(t, svc.IsKeyLoading("get-flats"))
	assert.False(t, svc.IsLoading())
	assert.Empty(t, svc.ActiveKeys())
}

func TestLoadingService_DefaultKey(t *testing.T) {
	svc := util.NewLoadingService()

	svc.StartLoading("")
	assert.Equal(t, []string{util.GlobalLoadingKey}, svc.ActiveKeys())
	svc.StopLoading("")
	assert.False(t, svc.IsLoading())
}

func TestLoadingService_StopAll(t *testing.T) {
	svc := util.NewLoadingService()
	svc.StartLoading("get-contracts")
	svc.StartLoading("post-payments")
	assert.Equal(t, []string{"get-contracts", "post-payments"}, svc.ActiveKeys())

	svc.StopAllLoading()
	assert.False(t, svc.IsLoading())
}

func TestLoadingService_Streams(t *testing.T) {
	svc := util.NewLoadingService()

	all, cancelAll := svc.Subscribe()
	defer cancelAll()
	flats, cancelFlats := svc.SubscribeKey("get-flats")
	defer cancelFlats()

	assert.False(t, recvBool(t, all))
	assert.False(t, recvBool(t, flats))

	svc.StartLoading("get-flats")
	assert.True(t, recvBool(t, all))
	assert.True(t, recvBool(t, flats))

	// second start under the same key changes nothing
	svc.StartLoading("get-flats")
	assertNoUpdate(t, all)
	assertNoUpdate(t, flats)

	svc.StartLoading("get-buildings")
	assertNoUpdate(t, all)
	assertNoUpdate(t, flats)

	svc.StopLoading("get-flats")
	svc.StopLoading("get-flats")
	assert.False(t, recvBool(t, flats))
	assertNoUpdate(t, all)

	svc.StopLoading("get-buildings")
	assert.False(t, recvBool(t, all))
}

func TestLoadingService_CancelClosesChannel(t *testing.T) {
	svc := util.NewLoadingService()
	ch, cancel := svc.Subscribe()
	recvBool(t, ch)

	cancel()
	cancel()
	_, ok := <-ch
	assert.False(t, ok)
}

func TestLoadingService_SlowSubscriberSeesFinalValue(t *testing.T) {
	l := util.NewLoadingService()
	aggregate, cancel := l.Subscribe()
	defer cancel()
	perKey, cancelKey := l.SubscribeKey("get-flats")
	defer cancelKey()

	for i := 0; i < 200; i++ {
		l.StartLoading("get-flats")
		l.StopLoading("get-flats")
	}
	l.StartLoading("get-flats")
	l.StopLoading("get-flats")

	drain := func(ch <-chan bool) bool {
		last := true
		for {
			select {
			case v := <-ch:
				last = v
			default:
				return last
			}
		}
	}
	assert.False(t, drain(aggregate))
	assert.False(t, drain(perKey))
	assert.False(t, l.IsLoading())
}
