// console/jobs/scheduler.go
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

const (
	JobOverdueStatuses  = "overdue-statuses"
	JobContractStatuses = "contract-statuses"
)

type OverdueUpdater interface {
	UpdateOverdueStatuses(ctx context.Context) (*model.MessageResponse, error)
}

type ContractStatusUpdater interface {
	UpdateContractStatuses(ctx context.Context) error
}

// SessionChecker reports whether backend calls can be authenticated.
type SessionChecker interface {
	IsLoggedIn() bool
}

type Config struct {
	OverdueSchedule   string
	ContractsSchedule string
	Timeout           time.Duration
}

func ConfigFromViper() Config {
	return Config{
		OverdueSchedule:   viper.GetString("jobs.overdueSchedule"),
		ContractsSchedule: viper.GetString("jobs.contractsSchedule"),
		Timeout:           viper.GetDuration("jobs.timeout"),
	}
}

// Scheduler runs the nightly status maintenance against the backend. Runs
// are background calls: they never show up in the loading registry.
type Scheduler struct {
	cron     *cron.Cron
	jobs     map[string]func(context.Context) error
	session  SessionChecker
	eventBus *util.EventBus
	timeout  time.Duration

	mu      sync.Mutex
	baseCtx context.Context
}

func NewScheduler(cfg Config, dues OverdueUpdater, contracts ContractStatusUpdater, session SessionChecker, eventBus *util.EventBus) (*Scheduler, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	cronLog := cronLogger{}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		session:  session,
		eventBus: eventBus,
		timeout:  cfg.Timeout,
		baseCtx:  context.Background(),
	}
	s.jobs = map[string]func(context.Context) error{
		JobOverdueStatuses: func(ctx context.Context) error {
			resp, err := dues.UpdateOverdueStatuses(ctx)
			if err == nil && resp != nil {
				logger.Info("Overdue statuses updated", zap.String("message", resp.Message))
			}
			return err
		},
		JobContractStatuses: contracts.UpdateContractStatuses,
	}

	schedules := map[string]string{
		JobOverdueStatuses:  cfg.OverdueSchedule,
		JobContractStatuses: cfg.ContractsSchedule,
	}
	for name, spec := range schedules {
		name := name
		if _, err := s.cron.AddFunc(spec, func() { s.runScheduled(name) }); err != nil {
			return nil, fmt.Errorf("invalid schedule %q for job %s: %w", spec, name, err)
		}
	}
	return s, nil
}

// Start begins firing jobs. ctx bounds every run started by the schedule.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()
	s.cron.Start()
	logger.Info("Maintenance scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	logger.Info("Maintenance scheduler stopped")
}

// Run executes one job immediately.
func (s *Scheduler) Run(ctx context.Context, name string) error {
	job, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("unknown job %q", name)
	}
	if !s.session.IsLoggedIn() {
		logger.Warn("Skipping maintenance job without a backend session", zap.String("job", name))
		return fmt.Errorf("job %s: %w", name, apt_errors.ErrNoSession)
	}

	start := time.Now()
	runCtx, cancel := context.WithTimeout(gateway.Background(ctx), s.timeout)
	defer cancel()
	if err := job(runCtx); err != nil {
		logger.Error("Maintenance job failed", zap.String("job", name), zap.Error(err))
		return err
	}

	logger.Info("Maintenance job completed", zap.String("job", name), zap.Duration("duration", time.Since(start)))
	s.eventBus.PublishSync(ctx, util.EventMaintenanceRun, name)
	return nil
}

func (s *Scheduler) runScheduled(name string) {
	s.mu.Lock()
	ctx := s.baseCtx
	s.mu.Unlock()
	// Continue with the next run despite the error
	_ = s.Run(ctx, name)
}

// cronLogger routes cron's own logging through zap.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.WithContext().Sugar().Debugw(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.WithContext(zap.Error(err)).Sugar().Errorw(msg, keysAndValues...)
}
