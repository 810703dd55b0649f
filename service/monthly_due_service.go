// console/service/monthly_due_service.go
package service

//go:generate mockgen -source=monthly_due_service.go -destination=../test/service_mock/monthly_due_service_mock.go -package=mock_service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/aptmgr/console/cache"
	"github.com/dev-mohitbeniwal/aptmgr/console/dao"
	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
	helper_util "github.com/dev-mohitbeniwal/aptmgr/console/util/helper"
)

// Locker serialises due generation across console instances.
type Locker interface {
	Lock(ctx context.Context, name string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, name string) error
}

// IMonthlyDueService defines the interface for monthly due operations
type IMonthlyDueService interface {
	GenerateDues(ctx context.Context, req model.MonthlyDueRequest) ([]model.MonthlyDue, error)
	GenerateForBuilding(ctx context.Context, buildingID int64, amount float64, month time.Time, description string) ([]model.MonthlyDue, error)
	CreateDue(ctx context.Context, req model.MonthlyDueRequest) (*model.MonthlyDue, error)
	ListByFlat(ctx context.Context, flatID int64, opts FetchOptions) ([]model.MonthlyDue, error)
	ListByBuilding(ctx context.Context, buildingID int64, opts FetchOptions) ([]model.MonthlyDue, error)
	ListOverdue(ctx context.Context, buildingID int64, opts FetchOptions) ([]model.MonthlyDue, error)
	ListDebtors(ctx context.Context, buildingID int64, opts FetchOptions) ([]model.DebtorInfo, error)
	PollDebtors(ctx context.Context, buildingID int64) *cache.Poller[[]model.DebtorInfo]
	GetCollectionRate(ctx context.Context, buildingID int64, dates model.DateRange, opts FetchOptions) (*model.CollectionRate, error)
	UpdateDue(ctx context.Context, id int64, req model.MonthlyDueRequest) (*model.MonthlyDue, error)
	CancelDue(ctx context.Context, id int64) error
	UpdateOverdueStatuses(ctx context.Context) (*model.MessageResponse, error)
	StopPolling(key string) bool
	PollingKeys() []string
	StopAllPolling()
	ClearCache()
}

type MonthlyDueService struct {
	dueDAO          *dao.MonthlyDueDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	locker          Locker
	lockTTL         time.Duration

	dueCache        *cache.Cache[[]model.MonthlyDue]
	debtorCache     *cache.Cache[[]model.DebtorInfo]
	collectionCache *cache.Cache[*model.CollectionRate]
	pollers         *pollers
}

var _ IMonthlyDueService = &MonthlyDueService{}

// NewMonthlyDueService creates the service. locker may be nil, in which case
// generation is not serialised.
func NewMonthlyDueService(dueDAO *dao.MonthlyDueDAO, settings CacheSettings, locker Locker, lockTTL time.Duration, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *MonthlyDueService {
	service := &MonthlyDueService{
		dueDAO:          dueDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		locker:          locker,
		lockTTL:         lockTTL,
		dueCache:        cache.New[[]model.MonthlyDue]("monthly-dues", settings.ListTTL),
		debtorCache:     cache.New[[]model.DebtorInfo]("debtors", settings.StatsTTL),
		collectionCache: cache.New[*model.CollectionRate]("collection-rates", settings.StatsTTL),
		pollers:         newPollers(settings.PollInterval),
	}
	if service.lockTTL <= 0 {
		service.lockTTL = 2 * time.Minute
	}
	cacheService.Register(service.dueCache, service.debtorCache, service.collectionCache)

	eventBus.Subscribe(util.EventPaymentChanged, service.handlePaymentChanged)
	eventBus.Subscribe(util.EventContractChanged, service.handleContractChanged)
	eventBus.Subscribe(util.EventMaintenanceRun, service.handleMaintenanceRun)

	return service
}

func (s *MonthlyDueService) handlePaymentChanged(ctx context.Context, event util.Event) error {
	logger.Debug("Payment changed, invalidating due caches", zap.Any("paymentID", event.Payload))
	s.ClearCache()
	return nil
}

// Contracts created or renewed with generateDuesImmediately produce dues
// on the backend.
func (s *MonthlyDueService) handleContractChanged(ctx context.Context, event util.Event) error {
	s.ClearCache()
	return nil
}

func (s *MonthlyDueService) handleMaintenanceRun(ctx context.Context, event util.Event) error {
	s.ClearCache()
	return nil
}

func (s *MonthlyDueService) GenerateDues(ctx context.Context, req model.MonthlyDueRequest) ([]model.MonthlyDue, error) {
	if err := s.validationUtil.ValidateMonthlyDue(req); err != nil {
		return nil, err
	}
	if req.BuildingID == nil {
		return nil, fmt.Errorf("%w: buildingId is required for generation", apt_errors.ErrInvalidDueData)
	}

	release, err := s.acquire(ctx, generationLockName(*req.BuildingID, req.DueDate))
	if err != nil {
		return nil, err
	}
	defer release()

	dues, err := s.dueDAO.GenerateDues(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate monthly dues: %w", err)
	}
	s.afterMutation(ctx, *req.BuildingID)
	notifySuccess(ctx, s.notificationSvc, fmt.Sprintf("Generated %d monthly dues successfully", len(dues)))
	return dues, nil
}

// GenerateForBuilding generates one due per active flat for the month that
// contains month, due on its first day.
func (s *MonthlyDueService) GenerateForBuilding(ctx context.Context, buildingID int64, amount float64, month time.Time, description string) ([]model.MonthlyDue, error) {
	if err := s.validationUtil.ValidateID(buildingID, apt_errors.ErrInvalidBuildingID); err != nil {
		return nil, err
	}
	if description == "" {
		description = helper_util.MonthlyRentDescription(month)
	}
	return s.GenerateDues(ctx, model.MonthlyDueRequest{
		BuildingID:     &buildingID,
		DueAmount:      amount,
		DueDate:        helper_util.FormatDueDate(helper_util.FirstOfMonth(month)),
		DueDescription: description,
	})
}

func (s *MonthlyDueService) CreateDue(ctx context.Context, req model.MonthlyDueRequest) (*model.MonthlyDue, error) {
	if err := s.validationUtil.ValidateMonthlyDue(req); err != nil {
		return nil, err
	}
	if req.FlatID == nil {
		return nil, fmt.Errorf("%w: flatId is required", apt_errors.ErrInvalidDueData)
	}
	due, err := s.dueDAO.CreateDue(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create monthly due: %w", err)
	}
	s.afterMutation(ctx, *req.FlatID)
	notifySuccess(ctx, s.notificationSvc, "Monthly due created successfully")
	return due, nil
}

func (s *MonthlyDueService) ListByFlat(ctx context.Context, flatID int64, opts FetchOptions) ([]model.MonthlyDue, error) {
	if flatID <= 0 {
		return nil, apt_errors.ErrInvalidFlatID
	}
	return s.dueCache.Get(ctx, "flat-"+strconv.FormatInt(flatID, 10), opts.ForceRefresh, func(ctx context.Context) ([]model.MonthlyDue, error) {
		return s.dueDAO.ListByFlat(ctx, flatID)
	})
}

func (s *MonthlyDueService) ListByBuilding(ctx context.Context, buildingID int64, opts FetchOptions) ([]model.MonthlyDue, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	return s.dueCache.Get(ctx, buildingKey(buildingID), opts.ForceRefresh, func(ctx context.Context) ([]model.MonthlyDue, error) {
		return s.dueDAO.ListByBuilding(ctx, buildingID)
	})
}

func (s *MonthlyDueService) ListOverdue(ctx context.Context, buildingID int64, opts FetchOptions) ([]model.MonthlyDue, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	return s.dueCache.Get(ctx, buildingKey(buildingID)+"-overdue", opts.ForceRefresh, func(ctx context.Context) ([]model.MonthlyDue, error) {
		return s.dueDAO.ListOverdue(ctx, buildingID)
	})
}

func (s *MonthlyDueService) ListDebtors(ctx context.Context, buildingID int64, opts FetchOptions) ([]model.DebtorInfo, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	return cachedRead(ctx, s.pollers, s.debtorCache, buildingKey(buildingID), opts,
		func(ctx context.Context) ([]model.DebtorInfo, error) {
			return s.dueDAO.ListDebtors(ctx, buildingID)
		},
		func(ctx context.Context) ([]model.DebtorInfo, error) {
			return s.dueDAO.ListDebtors(ctx, buildingID, gateway.SkipLoading())
		})
}

func (s *MonthlyDueService) PollDebtors(ctx context.Context, buildingID int64) *cache.Poller[[]model.DebtorInfo] {
	return startPolling(ctx, s.pollers, s.debtorCache, buildingKey(buildingID), func(ctx context.Context) ([]model.DebtorInfo, error) {
		return s.dueDAO.ListDebtors(ctx, buildingID, gateway.SkipLoading())
	})
}

func (s *MonthlyDueService) GetCollectionRate(ctx context.Context, buildingID int64, dates model.DateRange, opts FetchOptions) (*model.CollectionRate, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	return s.collectionCache.Get(ctx, buildingKey(buildingID)+dateKey(dates), opts.ForceRefresh, func(ctx context.Context) (*model.CollectionRate, error) {
		return s.dueDAO.GetCollectionRate(ctx, buildingID, dates)
	})
}

func (s *MonthlyDueService) UpdateDue(ctx context.Context, id int64, req model.MonthlyDueRequest) (*model.MonthlyDue, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: due id %d", apt_errors.ErrInvalidDueData, id)
	}
	if err := s.validationUtil.ValidateMonthlyDue(req); err != nil {
		return nil, err
	}
	due, err := s.dueDAO.UpdateDue(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update monthly due: %w", err)
	}
	s.afterMutation(ctx, id)
	notifySuccess(ctx, s.notificationSvc, "Monthly due updated successfully")
	return due, nil
}

func (s *MonthlyDueService) CancelDue(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: due id %d", apt_errors.ErrInvalidDueData, id)
	}
	if err := s.dueDAO.CancelDue(ctx, id); err != nil {
		return fmt.Errorf("failed to cancel monthly due: %w", err)
	}
	s.afterMutation(ctx, id)
	notifySuccess(ctx, s.notificationSvc, "Monthly due cancelled successfully")
	return nil
}

func (s *MonthlyDueService) UpdateOverdueStatuses(ctx context.Context) (*model.MessageResponse, error) {
	resp, err := s.dueDAO.UpdateOverdueStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update overdue statuses: %w", err)
	}
	s.afterMutation(ctx, 0)
	return resp, nil
}

func (s *MonthlyDueService) StopPolling(key string) bool {
	return s.pollers.stop(key)
}

func (s *MonthlyDueService) PollingKeys() []string {
	return s.pollers.keys()
}

func (s *MonthlyDueService) StopAllPolling() {
	s.pollers.stopAll()
}

func (s *MonthlyDueService) ClearCache() {
	s.dueCache.InvalidateAll()
	s.debtorCache.InvalidateAll()
	s.collectionCache.InvalidateAll()
}

func (s *MonthlyDueService) afterMutation(ctx context.Context, id int64) {
	s.ClearCache()
	s.eventBus.PublishSync(ctx, util.EventDuesChanged, id)
}

// acquire takes the generation lock and returns its release function.
func (s *MonthlyDueService) acquire(ctx context.Context, name string) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}
	ok, err := s.locker.Lock(ctx, name, s.lockTTL)
	if err != nil {
		logger.Warn("Failed to acquire due generation lock, continuing without it", zap.Error(err), zap.String("lock", name))
		return func() {}, nil
	}
	if !ok {
		return nil, apt_errors.ErrDueGenerationLocked
	}
	return func() {
		if err := s.locker.Unlock(context.WithoutCancel(ctx), name); err != nil {
			logger.Error("Failed to release due generation lock", zap.Error(err), zap.String("lock", name))
		}
	}, nil
}

// generationLockName is dues:generate:<building>:<yyyy-mm>.
func generationLockName(buildingID int64, dueDate string) string {
	month := dueDate
	if t, err := helper_util.ParseDate(dueDate); err == nil {
		month = t.Format("2006-01")
	}
	return fmt.Sprintf("dues:generate:%d:%s", buildingID, month)
}
