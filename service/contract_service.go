// console/service/contract_service.go
package service

//go:generate mockgen -source=contract_service.go -destination=../test/service_mock/contract_service_mock.go -package=mock_service

import (
	"context"
	"errors"
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

const (
	DefaultExpiryWindowDays = 30
)

type ContractPage = model.PaginatedResponse[model.ContractSummary]

// IContractService defines the interface for contract operations
type IContractService interface {
	CreateContract(ctx context.Context, req model.ContractRequest) (*model.Contract, error)
	GetContract(ctx context.Context, id int64, forceRefresh bool) (*model.Contract, error)
	GetContractsByBuilding(ctx context.Context, buildingID int64, page model.PageRequest, opts FetchOptions) (*ContractPage, error)
	PollContractsByBuilding(ctx context.Context, buildingID int64, page model.PageRequest) *cache.Poller[*ContractPage]
	GetContractsByFlat(ctx context.Context, flatID int64) ([]model.ContractSummary, error)
	GetActiveContract(ctx context.Context, flatID int64) (*model.Contract, error)
	HasActiveContract(ctx context.Context, flatID int64) (bool, error)
	SearchContracts(ctx context.Context, tenantName string, page model.PageRequest) (*ContractPage, error)
	GetExpiringContracts(ctx context.Context, days int) ([]model.ContractSummary, error)
	GetOverdueContracts(ctx context.Context) ([]model.ContractSummary, error)
	GetRenewableContracts(ctx context.Context, days int) ([]model.ContractSummary, error)
	RenewContract(ctx context.Context, id int64, req model.ContractRenewalRequest) (*model.Contract, error)
	CancelContract(ctx context.Context, id int64, req model.ContractCancellationRequest) (*model.Contract, error)
	ModifyContract(ctx context.Context, id int64, req model.ContractModificationRequest) (*model.Contract, error)
	GetStatistics(ctx context.Context, buildingID int64) (*model.ContractStatistics, error)
	GetTotalMonthlyRent(ctx context.Context, buildingID int64) (float64, error)
	GenerateExpiryNotifications(ctx context.Context) ([]model.ContractExpiryNotification, error)
	UpdateContractStatuses(ctx context.Context) error
	PreviewDues(start, end time.Time, dayOfMonth int, monthlyRent float64) []model.DuePreview
	StopPolling(key string) bool
	PollingKeys() []string
	StopAllPolling()
	ClearCache()
}

// ContractService caches building contract pages for five minutes and
// contract details for fifteen.
type ContractService struct {
	contractDAO     *dao.ContractDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus

	listCache   *cache.Cache[*ContractPage]
	detailCache *cache.Cache[*model.Contract]
	statsCache  *cache.Cache[*model.ContractStatistics]
	pollers     *pollers
}

var _ IContractService = &ContractService{}

func NewContractService(contractDAO *dao.ContractDAO, settings CacheSettings, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *ContractService {
	service := &ContractService{
		contractDAO:     contractDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		listCache:       cache.New[*ContractPage]("contracts", settings.ListTTL),
		detailCache:     cache.New[*model.Contract]("contract-details", settings.DetailTTL),
		statsCache:      cache.New[*model.ContractStatistics]("contract-statistics", settings.StatsTTL),
		pollers:         newPollers(settings.PollInterval),
	}
	cacheService.Register(service.listCache, service.detailCache, service.statsCache)

	eventBus.Subscribe(util.EventMaintenanceRun, service.handleMaintenanceRun)

	return service
}

func (s *ContractService) handleMaintenanceRun(ctx context.Context, event util.Event) error {
	logger.Info("Maintenance run completed, refreshing contract caches", zap.Any("job", event.Payload))
	s.invalidate()
	return nil
}

func (s *ContractService) CreateContract(ctx context.Context, req model.ContractRequest) (*model.Contract, error) {
	if err := s.validationUtil.ValidateContract(req); err != nil {
		return nil, err
	}
	contract, err := s.contractDAO.CreateContract(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}
	notifySuccess(ctx, s.notificationSvc, fmt.Sprintf("Contract for flat %s created successfully", contract.FlatNumber))
	s.afterMutation(ctx, contract.ID)
	return contract, nil
}

func (s *ContractService) GetContract(ctx context.Context, id int64, forceRefresh bool) (*model.Contract, error) {
	if err := s.validationUtil.ValidateID(id, apt_errors.ErrInvalidContractID); err != nil {
		return nil, err
	}
	return s.detailCache.Get(ctx, strconv.FormatInt(id, 10), forceRefresh, func(ctx context.Context) (*model.Contract, error) {
		return s.contractDAO.GetContract(ctx, id)
	})
}

func (s *ContractService) GetContractsByBuilding(ctx context.Context, buildingID int64, page model.PageRequest, opts FetchOptions) (*ContractPage, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	return cachedRead(ctx, s.pollers, s.listCache, contractListKey(buildingID, page), opts,
		func(ctx context.Context) (*ContractPage, error) {
			return s.contractDAO.GetContractsByBuilding(ctx, buildingID, page)
		},
		func(ctx context.Context) (*ContractPage, error) {
			return s.contractDAO.GetContractsByBuilding(ctx, buildingID, page, gateway.SkipLoading())
		})
}

func (s *ContractService) PollContractsByBuilding(ctx context.Context, buildingID int64, page model.PageRequest) *cache.Poller[*ContractPage] {
	return startPolling(ctx, s.pollers, s.listCache, contractListKey(buildingID, page), func(ctx context.Context) (*ContractPage, error) {
		return s.contractDAO.GetContractsByBuilding(ctx, buildingID, page, gateway.SkipLoading())
	})
}

func (s *ContractService) GetContractsByFlat(ctx context.Context, flatID int64) ([]model.ContractSummary, error) {
	if flatID <= 0 {
		return nil, apt_errors.ErrInvalidFlatID
	}
	return s.contractDAO.GetContractsByFlat(ctx, flatID)
}

func (s *ContractService) GetActiveContract(ctx context.Context, flatID int64) (*model.Contract, error) {
	if flatID <= 0 {
		return nil, apt_errors.ErrInvalidFlatID
	}
	return s.contractDAO.GetActiveContract(ctx, flatID)
}

// HasActiveContract maps the backend's 404 to false. Any other failure is
// returned as is.
func (s *ContractService) HasActiveContract(ctx context.Context, flatID int64) (bool, error) {
	_, err := s.GetActiveContract(ctx, flatID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apt_errors.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *ContractService) SearchContracts(ctx context.Context, tenantName string, page model.PageRequest) (*ContractPage, error) {
	return s.contractDAO.SearchContracts(ctx, tenantName, page)
}

func (s *ContractService) GetExpiringContracts(ctx context.Context, days int) ([]model.ContractSummary, error) {
	if days <= 0 {
		days = DefaultExpiryWindowDays
	}
	return s.contractDAO.GetExpiringContracts(ctx, days)
}

func (s *ContractService) GetOverdueContracts(ctx context.Context) ([]model.ContractSummary, error) {
	return s.contractDAO.GetOverdueContracts(ctx)
}

func (s *ContractService) GetRenewableContracts(ctx context.Context, days int) ([]model.ContractSummary, error) {
	if days <= 0 {
		days = DefaultExpiryWindowDays
	}
	return s.contractDAO.GetRenewableContracts(ctx, days)
}

func (s *ContractService) RenewContract(ctx context.Context, id int64, req model.ContractRenewalRequest) (*model.Contract, error) {
	if err := s.validationUtil.ValidateID(id, apt_errors.ErrInvalidContractID); err != nil {
		return nil, err
	}
	renewed, err := s.contractDAO.RenewContract(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to renew contract %d: %w", id, err)
	}
	notifySuccess(ctx, s.notificationSvc, fmt.Sprintf("Contract renewed successfully. New contract ID: %d", renewed.ID))
	s.afterMutation(ctx, id)
	return renewed, nil
}

func (s *ContractService) CancelContract(ctx context.Context, id int64, req model.ContractCancellationRequest) (*model.Contract, error) {
	if err := s.validationUtil.ValidateID(id, apt_errors.ErrInvalidContractID); err != nil {
		return nil, err
	}
	cancelled, err := s.contractDAO.CancelContract(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel contract %d: %w", id, err)
	}
	notifySuccess(ctx, s.notificationSvc, fmt.Sprintf("Contract %d cancelled successfully", id))
	s.afterMutation(ctx, id)
	return cancelled, nil
}

func (s *ContractService) ModifyContract(ctx context.Context, id int64, req model.ContractModificationRequest) (*model.Contract, error) {
	if err := s.validationUtil.ValidateID(id, apt_errors.ErrInvalidContractID); err != nil {
		return nil, err
	}
	modified, err := s.contractDAO.ModifyContract(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to modify contract %d: %w", id, err)
	}
	notifySuccess(ctx, s.notificationSvc, fmt.Sprintf("Contract modified successfully. New contract ID: %d", modified.ID))
	s.afterMutation(ctx, id)
	return modified, nil
}

func (s *ContractService) GetStatistics(ctx context.Context, buildingID int64) (*model.ContractStatistics, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	return s.statsCache.Get(ctx, strconv.FormatInt(buildingID, 10), false, func(ctx context.Context) (*model.ContractStatistics, error) {
		return s.contractDAO.GetStatistics(ctx, buildingID)
	})
}

func (s *ContractService) GetTotalMonthlyRent(ctx context.Context, buildingID int64) (float64, error) {
	if buildingID <= 0 {
		return 0, apt_errors.ErrInvalidBuildingID
	}
	return s.contractDAO.GetTotalMonthlyRent(ctx, buildingID)
}

func (s *ContractService) GenerateExpiryNotifications(ctx context.Context) ([]model.ContractExpiryNotification, error) {
	notifications, err := s.contractDAO.GenerateExpiryNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate expiry notifications: %w", err)
	}
	notifySuccess(ctx, s.notificationSvc, fmt.Sprintf("Generated %d expiry notifications", len(notifications)))
	return notifications, nil
}

func (s *ContractService) UpdateContractStatuses(ctx context.Context) error {
	if err := s.contractDAO.UpdateStatuses(ctx); err != nil {
		return fmt.Errorf("failed to update contract statuses: %w", err)
	}
	notifySuccess(ctx, s.notificationSvc, "Contract statuses updated successfully")
	s.afterMutation(ctx, 0)
	return nil
}

// PreviewDues lists the due dates a contract would produce, one per month.
func (s *ContractService) PreviewDues(start, end time.Time, dayOfMonth int, monthlyRent float64) []model.DuePreview {
	dates := helper_util.PreviewDueDates(start, end, dayOfMonth)
	previews := make([]model.DuePreview, 0, len(dates))
	for _, d := range dates {
		previews = append(previews, model.DuePreview{
			Month:   d.Format("January 2006"),
			DueDate: d.Format(helper_util.DateLayout),
			Amount:  monthlyRent,
		})
	}
	return previews
}

func (s *ContractService) StopPolling(key string) bool {
	return s.pollers.stop(key)
}

func (s *ContractService) PollingKeys() []string {
	return s.pollers.keys()
}

func (s *ContractService) StopAllPolling() {
	s.pollers.stopAll()
}

// ClearCache drops every contract entry, details included.
func (s *ContractService) ClearCache() {
	s.listCache.InvalidateAll()
	s.detailCache.InvalidateAll()
	s.statsCache.InvalidateAll()
}

// invalidate clears lists and statistics and marks details stale, so the
// next detail read refetches.
func (s *ContractService) invalidate() {
	s.listCache.InvalidateAll()
	s.statsCache.InvalidateAll()
	s.detailCache.MarkAllStale()
}

func (s *ContractService) afterMutation(ctx context.Context, contractID int64) {
	s.invalidate()
	s.eventBus.PublishSync(ctx, util.EventContractChanged, contractID)
}

func contractListKey(buildingID int64, page model.PageRequest) string {
	return fmt.Sprintf("building-%d-%s", buildingID, page.Signature())
}
