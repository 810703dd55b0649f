// console/service/building_service.go
package service

//go:generate mockgen -source=building_service.go -destination=../test/service_mock/building_service_mock.go -package=mock_service

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

const allBuildingsKey = "all"

// IBuildingService defines the interface for apartment building operations
type IBuildingService interface {
	ListBuildings(ctx context.Context, opts FetchOptions) ([]model.ApartmentBuilding, error)
	GetBuilding(ctx context.Context, id int64, opts FetchOptions) (*model.ApartmentBuilding, error)
	CreateBuilding(ctx context.Context, req model.ApartmentBuildingRequest) (*model.ApartmentBuilding, error)
	UpdateBuilding(ctx context.Context, id int64, req model.ApartmentBuildingRequest) (*model.ApartmentBuilding, error)
	DeleteBuilding(ctx context.Context, id int64) error
	PollBuildings(ctx context.Context) *cache.Poller[[]model.ApartmentBuilding]
	StopPolling(key string) bool
	PollingKeys() []string
	StopAllPolling()
	ClearCache()
}

// BuildingService handles business logic for apartment buildings
type BuildingService struct {
	buildingDAO     *dao.BuildingDAO
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus

	listCache   *cache.Cache[[]model.ApartmentBuilding]
	detailCache *cache.Cache[*model.ApartmentBuilding]
	pollers     *pollers
}

var _ IBuildingService = &BuildingService{}

func NewBuildingService(buildingDAO *dao.BuildingDAO, settings CacheSettings, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *BuildingService {
	service := &BuildingService{
		buildingDAO:     buildingDAO,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		listCache:       cache.New[[]model.ApartmentBuilding]("buildings", settings.ListTTL),
		detailCache:     cache.New[*model.ApartmentBuilding]("building-details", settings.DetailTTL),
		pollers:         newPollers(settings.PollInterval),
	}
	cacheService.Register(service.listCache, service.detailCache)
	return service
}

func (s *BuildingService) ListBuildings(ctx context.Context, opts FetchOptions) ([]model.ApartmentBuilding, error) {
	return cachedRead(ctx, s.pollers, s.listCache, allBuildingsKey, opts,
		func(ctx context.Context) ([]model.ApartmentBuilding, error) {
			return s.buildingDAO.ListBuildings(ctx)
		},
		func(ctx context.Context) ([]model.ApartmentBuilding, error) {
			return s.buildingDAO.ListBuildings(ctx, gateway.SkipLoading())
		})
}

func (s *BuildingService) GetBuilding(ctx context.Context, id int64, opts FetchOptions) (*model.ApartmentBuilding, error) {
	if id <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	return s.detailCache.Get(ctx, strconv.FormatInt(id, 10), opts.ForceRefresh, func(ctx context.Context) (*model.ApartmentBuilding, error) {
		return s.buildingDAO.GetBuilding(ctx, id)
	})
}

func (s *BuildingService) CreateBuilding(ctx context.Context, req model.ApartmentBuildingRequest) (*model.ApartmentBuilding, error) {
	building, err := s.buildingDAO.CreateBuilding(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create building: %w", err)
	}
	s.afterMutation(ctx, building.ID)
	notifySuccess(ctx, s.notificationSvc, fmt.Sprintf("Building %q created successfully", building.Name))
	return building, nil
}

func (s *BuildingService) UpdateBuilding(ctx context.Context, id int64, req model.ApartmentBuildingRequest) (*model.ApartmentBuilding, error) {
	if id <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	building, err := s.buildingDAO.UpdateBuilding(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update building: %w", err)
	}
	s.afterMutation(ctx, id)
	notifySuccess(ctx, s.notificationSvc, fmt.Sprintf("Building %q updated successfully", building.Name))
	return building, nil
}

func (s *BuildingService) DeleteBuilding(ctx context.Context, id int64) error {
	if id <= 0 {
		return apt_errors.ErrInvalidBuildingID
	}
	name := strconv.FormatInt(id, 10)
	if cached, ok := s.detailCache.Peek(name); ok && cached != nil {
		name = cached.Name
	}
	if err := s.buildingDAO.DeleteBuilding(ctx, id); err != nil {
		return fmt.Errorf("failed to delete building: %w", err)
	}
	s.afterMutation(ctx, id)
	notifySuccess(ctx, s.notificationSvc, fmt.Sprintf("Building %q deleted successfully", name))
	return nil
}

// PollBuildings refreshes the building list until the poller is stopped.
func (s *BuildingService) PollBuildings(ctx context.Context) *cache.Poller[[]model.ApartmentBuilding] {
	return startPolling(ctx, s.pollers, s.listCache, allBuildingsKey, func(ctx context.Context) ([]model.ApartmentBuilding, error) {
		return s.buildingDAO.ListBuildings(ctx, gateway.SkipLoading())
	})
}

func (s *BuildingService) StopPolling(key string) bool {
	return s.pollers.stop(key)
}

func (s *BuildingService) PollingKeys() []string {
	return s.pollers.keys()
}

func (s *BuildingService) StopAllPolling() {
	s.pollers.stopAll()
}

func (s *BuildingService) ClearCache() {
	s.listCache.InvalidateAll()
	s.detailCache.InvalidateAll()
}

func (s *BuildingService) afterMutation(ctx context.Context, id int64) {
	s.ClearCache()
	logger.Debug("Building caches invalidated", zap.Int64("buildingID", id))
	s.eventBus.PublishSync(ctx, util.EventBuildingChanged, id)
}
