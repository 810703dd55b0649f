// console/jobs/scheduler_test.go
package jobs_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	"github.com/dev-mohitbeniwal/aptmgr/console/jobs"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

type fakeMaintenance struct {
	mu          sync.Mutex
	overdueRuns int
	contractErr error
	background  bool
}

func (f *fakeMaintenance) UpdateOverdueStatuses(ctx context.Context) (*model.MessageResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overdueRuns++
	f.background = gateway.IsBackground(ctx)
	return &model.MessageResponse{Message: "Updated 3 overdue dues"}, nil
}

func (f *fakeMaintenance) UpdateContractStatuses(ctx context.Context) error {
	return f.contractErr
}

type fakeSession bool

func (s fakeSession) IsLoggedIn() bool { return bool(s) }

var testConfig = jobs.Config{OverdueSchedule: "0 1 * * *", ContractsSchedule: "30 1 * * *"}

func TestScheduler_Run(t *testing.T) {
	t.Run("PublishesMaintenanceRun", func(t *testing.T) {
		eventBus := util.NewEventBus()
		var (
			mu   sync.Mutex
			runs []interface{}
		)
		eventBus.Subscribe(util.EventMaintenanceRun, func(ctx context.Context, e util.Event) error {
			mu.Lock()
			runs = append(runs, e.Payload)
			mu.Unlock()
			return nil
		})
		maintenance := &fakeMaintenance{}
		s, err := jobs.NewScheduler(testConfig, maintenance, maintenance, fakeSession(true), eventBus)
		require.NoError(t, err)

		require.NoError(t, s.Run(context.Background(), jobs.JobOverdueStatuses))
		eventBus.Wait()

		assert.Equal(t, 1, maintenance.overdueRuns)
		assert.True(t, maintenance.background)
		assert.Equal(t, []interface{}{jobs.JobOverdueStatuses}, runs)
	})

	t.Run("FailureDoesNotPublish", func(t *testing.T) {
		eventBus := util.NewEventBus()
		published := false
		eventBus.Subscribe(util.EventMaintenanceRun, func(ctx context.Context, e util.Event) error {
			published = true
			return nil
		})
		maintenance := &fakeMaintenance{contractErr: errors.New("backend down")}
		s, err := jobs.NewScheduler(testConfig, maintenance, maintenance, fakeSession(true), eventBus)
		require.NoError(t, err)

		err = s.Run(context.Background(), jobs.JobContractStatuses)
		eventBus.Wait()

		assert.EqualError(t, err, "backend down")
		assert.False(t, published)
	})

	t.Run("SkipsWithoutSession", func(t *testing.T) {
		maintenance := &fakeMaintenance{}
		s, err := jobs.NewScheduler(testConfig, maintenance, maintenance, fakeSession(false), util.NewEventBus())
		require.NoError(t, err)

		err = s.Run(context.Background(), jobs.JobOverdueStatuses)

		assert.True(t, errors.Is(err, apt_errors.ErrNoSession))
		assert.Zero(t, maintenance.overdueRuns)
	})

	t.Run("UnknownJob", func(t *testing.T) {
		maintenance := &fakeMaintenance{}
		s, err := jobs.NewScheduler(testConfig, maintenance, maintenance, fakeSession(true), util.NewEventBus())
		require.NoError(t, err)

		assert.Error(t, s.Run(context.Background(), "vacuum"))
	})
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	maintenance := &fakeMaintenance{}
	cfg := jobs.Config{OverdueSchedule: "every night", ContractsSchedule: "30 1 * * *"}

	_, err := jobs.NewScheduler(cfg, maintenance, maintenance, fakeSession(true), util.NewEventBus())

	assert.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	maintenance := &fakeMaintenance{}
	s, err := jobs.NewScheduler(testConfig, maintenance, maintenance, fakeSession(true), util.NewEventBus())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	s.Stop()
}
