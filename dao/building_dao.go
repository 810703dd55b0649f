// console/dao/building_dao.go
package dao

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
)

const buildingsPath = "/apartment-buildings"

type BuildingDAO struct {
	Client *gateway.Client
}

func NewBuildingDAO(client *gateway.Client) *BuildingDAO {
	return &BuildingDAO{Client: client}
}

func (dao *BuildingDAO) ListBuildings(ctx context.Context, opts ...gateway.RequestOption) ([]model.ApartmentBuilding, error) {
	var buildings []model.ApartmentBuilding
	if err := dao.Client.Get(ctx, buildingsPath, &buildings, opts...); err != nil {
		logger.Error("Failed to list buildings", zap.Error(err))
		return nil, err
	}
	return buildings, nil
}

func (dao *BuildingDAO) GetBuilding(ctx context.Context, id int64) (*model.ApartmentBuilding, error) {
	var building model.ApartmentBuilding
	if err := dao.Client.Get(ctx, buildingPath(id), &building); err != nil {
		logger.Error("Failed to get building", zap.Error(err), zap.Int64("buildingID", id))
		return nil, err
	}
	return &building, nil
}

func (dao *BuildingDAO) CreateBuilding(ctx context.Context, req model.ApartmentBuildingRequest) (*model.ApartmentBuilding, error) {
	logger.Info("Creating new building", zap.String("name", req.Name))
	var building model.ApartmentBuilding
	if err := dao.Client.Post(ctx, buildingsPath, req, &building); err != nil {
		logger.Error("Failed to create building", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}
	return &building, nil
}

func (dao *BuildingDAO) UpdateBuilding(ctx context.Context, id int64, req model.ApartmentBuildingRequest) (*model.ApartmentBuilding, error) {
	var building model.ApartmentBuilding
	if err := dao.Client.Put(ctx, buildingPath(id), req, &building); err != nil {
		logger.Error("Failed to update building", zap.Error(err), zap.Int64("buildingID", id))
		return nil, err
	}
	return &building, nil
}

func (dao *BuildingDAO) DeleteBuilding(ctx context.Context, id int64) error {
	if err := dao.Client.Delete(ctx, buildingPath(id), nil); err != nil {
		logger.Error("Failed to delete building", zap.Error(err), zap.Int64("buildingID", id))
		return err
	}
	logger.Info("Building deleted", zap.Int64("buildingID", id))
	return nil
}

func buildingPath(id int64) string {
	return fmt.Sprintf("%s/%d", buildingsPath, id)
}
