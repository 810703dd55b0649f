// console/service/flat_service.go
package service

//go:generate mockgen -source=flat_service.go -destination=../test/service_mock/flat_service_mock.go -package=mock_service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/aptmgr/console/cache"
	"github.com/dev-mohitbeniwal/aptmgr/console/dao"
	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

// IFlatService defines the interface for flat operations
type IFlatService interface {
	ListFlats(ctx context.Context, buildingID int64, opts FetchOptions) ([]model.Flat, error)
	GetFlat(ctx context.Context, buildingID, flatID int64, opts FetchOptions) (*model.Flat, error)
	CreateFlat(ctx context.Context, buildingID int64, req model.FlatRequest) (*model.Flat, error)
	UpdateFlat(ctx context.Context, buildingID, flatID int64, req model.FlatRequest) (*model.Flat, error)
	DeleteFlat(ctx context.Context, buildingID, flatID int64) error
	PollFlats(ctx context.Context, buildingID int64) *cache.Poller[[]model.Flat]
	StopPolling(key string) bool
	PollingKeys() []string
	StopAllPolling()
	ClearCache()
}

type FlatService struct {
	flatDAO         *dao.FlatDAO
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus

	listCache   *cache.Cache[[]model.Flat]
	detailCache *cache.Cache[*model.Flat]
	pollers     *pollers
}

var _ IFlatService = &FlatService{}

func NewFlatService(flatDAO *dao.FlatDAO, settings CacheSettings, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *FlatService {
	service := &FlatService{
		flatDAO:         flatDAO,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		listCache:       cache.New[[]model.Flat]("flats", settings.ListTTL),
		detailCache:     cache.New[*model.Flat]("flat-details", settings.DetailTTL),
		pollers:         newPollers(settings.PollInterval),
	}
	cacheService.Register(service.listCache, service.detailCache)

	// Occupancy and balances shown on flats follow contracts and payments
	eventBus.Subscribe(util.EventContractChanged, service.handleRelatedChange)
	eventBus.Subscribe(util.EventPaymentChanged, service.handleRelatedChange)
	eventBus.Subscribe(util.EventBuildingChanged, service.handleRelatedChange)

	return service
}

func (s *FlatService) handleRelatedChange(ctx context.Context, event util.Event) error {
	logger.Debug("Invalidating flat caches", zap.String("event", event.Type))
	s.ClearCache()
	return nil
}

func (s *FlatService) ListFlats(ctx context.Context, buildingID int64, opts FetchOptions) ([]model.Flat, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	return cachedRead(ctx, s.pollers, s.listCache, buildingKey(buildingID), opts,
		func(ctx context.Context) ([]model.Flat, error) {
			return s.flatDAO.ListFlats(ctx, buildingID)
		},
		func(ctx context.Context) ([]model.Flat, error) {
			return s.flatDAO.ListFlats(ctx, buildingID, gateway.SkipLoading())
		})
}

func (s *FlatService) GetFlat(ctx context.Context, buildingID, flatID int64, opts FetchOptions) (*model.Flat, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	if flatID <= 0 {
		return nil, apt_errors.ErrInvalidFlatID
	}
	return s.detailCache.Get(ctx, strconv.FormatInt(flatID, 10), opts.ForceRefresh, func(ctx context.Context) (*model.Flat, error) {
		return s.flatDAO.GetFlat(ctx, buildingID, flatID)
	})
}

func (s *FlatService) CreateFlat(ctx context.Context, buildingID int64, req model.FlatRequest) (*model.Flat, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	flat, err := s.flatDAO.CreateFlat(ctx, buildingID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create flat: %w", err)
	}
	s.afterMutation(ctx, flat.ID)
	notifySuccess(ctx, s.notificationSvc, fmt.Sprintf("Flat %q created successfully", flat.FlatNumber))
	return flat, nil
}

func (s *FlatService) UpdateFlat(ctx context.Context, buildingID, flatID int64, req model.FlatRequest) (*model.Flat, error) {
	if flatID <= 0 {
		return nil, apt_errors.ErrInvalidFlatID
	}
	flat, err := s.flatDAO.UpdateFlat(ctx, buildingID, flatID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update flat: %w", err)
	}
	s.afterMutation(ctx, flatID)
	notifySuccess(ctx, s.notificationSvc, fmt.Sprintf("Flat %q updated successfully", flat.FlatNumber))
	return flat, nil
}

// DeleteFlat deactivates the flat on the backend.
func (s *FlatService) DeleteFlat(ctx context.Context, buildingID, flatID int64) error {
	if flatID <= 0 {
		return apt_errors.ErrInvalidFlatID
	}
	number := strconv.FormatInt(flatID, 10)
	if cached, ok := s.detailCache.Peek(number); ok && cached != nil {
		number = cached.FlatNumber
	}
	if err := s.flatDAO.DeleteFlat(ctx, buildingID, flatID); err != nil {
		return fmt.Errorf("failed to delete flat: %w", err)
	}
	s.afterMutation(ctx, flatID)
	notifySuccess(ctx, s.notificationSvc, fmt.Sprintf("Flat %q deactivated successfully", number))
	return nil
}

func (s *FlatService) PollFlats(ctx context.Context, buildingID int64) *cache.Poller[[]model.Flat] {
	return startPolling(ctx, s.pollers, s.listCache, buildingKey(buildingID), func(ctx context.Context) ([]model.Flat, error) {
		return s.flatDAO.ListFlats(ctx, buildingID, gateway.SkipLoading())
	})
}

func (s *FlatService) StopPolling(key string) bool {
	return s.pollers.stop(key)
}

func (s *FlatService) PollingKeys() []string {
	return s.pollers.keys()
}

func (s *FlatService) StopAllPolling() {
	s.pollers.stopAll()
}

func (s *FlatService) ClearCache() {
	s.listCache.InvalidateAll()
	s.detailCache.InvalidateAll()
}

func (s *FlatService) afterMutation(ctx context.Context, flatID int64) {
	s.ClearCache()
	s.eventBus.PublishSync(ctx, util.EventFlatChanged, flatID)
}

func buildingKey(buildingID int64) string {
	return "building-" + strconv.FormatInt(buildingID, 10)
}
