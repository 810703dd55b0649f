// console/util/notification_service_test.go
package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

func nextEvent(t *testing.T, ch <-chan util.NotificationEvent) util.NotificationEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification event")
		return util.NotificationEvent{}
	}
}

func TestNotificationService(t *testing.T) {
	t.Run("Show_AutoDismissAfterDuration", func(t *testing.T) {
		svc := util.NewNotificationService()
		events, cancel := svc.Subscribe()
		defer cancel()

		d := 30 * time.Millisecond
		id := svc.Show(model.NotificationConfig{Type: model.NotificationSuccess, Title: "Saved", Duration: &d})

		shown := nextEvent(t, events)
		assert.Equal(t, util.NotificationShown, shown.Kind)
		require.NotNil(t, shown.Notification)
		assert.Equal(t, id, shown.Notification.ID)
		assert.True(t, shown.Notification.Dismissible)
		assert.Len(t, svc.Active(), 1)

		dismissed := nextEvent(t, events)
		assert.Equal(t, util.NotificationDismissed, dismissed.Kind)
		assert.Equal(t, id, dismissed.ID)
		assert.Empty(t, svc.Active())
	})

	t.Run("Defaults", func(t *testing.T) {
		svc := util.NewNotificationService()

		svc.Info("Heads up", "")
		active := svc.Active()
		require.Len(t, active, 1)
		assert.Equal(t, model.NotificationInfo, active[0].Type)
		assert.Equal(t, util.DefaultNotificationDuration, active[0].Duration)
		assert.Contains(t, active[0].ID, "notification-")
		svc.DismissAll()
	})

	t.Run("Error_IsSticky", func(t *testing.T) {
		svc := util.NewNotificationService()

		id := svc.Error("Server Error", "boom")
		active := svc.Active()
		require.Len(t, active, 1)
		assert.Equal(t, time.Duration(0), active[0].Duration)

		svc.Dismiss(id)
		assert.Empty(t, svc.Active())
	})

	t.Run("DismissAll_EmitsWildcard", func(t *testing.T) {
		svc := util.NewNotificationService()
		events, cancel := svc.Subscribe()
		defer cancel()

		svc.Warning("One", "")
		svc.Warning("Two", "")
		nextEvent(t, events)
		nextEvent(t, events)

		svc.DismissAll()
		ev := nextEvent(t, events)
		assert.Equal(t, util.NotificationDismissed, ev.Kind)
		assert.Equal(t, util.DismissAllID, ev.ID)
		assert.Empty(t, svc.Active())
	})

	t.Run("Dismiss_UnknownIDIgnored", func(t *testing.T) {
		svc := util.NewNotificationService()
		events, cancel := svc.Subscribe()
		defer cancel()

		svc.Dismiss("notification-missing")
		select {
		case ev := <-events:
			t.Fatalf("unexpected event %+v", ev)
		case <-time.After(20 * time.Millisecond):
		}
	})

	t.Run("Active_OldestFirst", func(t *testing.T) {
		svc := util.NewNotificationService()
		first := svc.Error("First", "")
		second := svc.Error("Second", "")

		active := svc.Active()
		require.Len(t, active, 2)
		assert.Equal(t, first, active[0].ID)
		assert.Equal(t, second, active[1].ID)
		svc.DismissAll()
	})
}
