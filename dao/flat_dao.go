// console/dao/flat_dao.go
package dao

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
)

// Flats are nested under their building on the backend.
type FlatDAO struct {
	Client *gateway.Client
}

func NewFlatDAO(client *gateway.Client) *FlatDAO {
	return &FlatDAO{Client: client}
}

func (dao *FlatDAO) ListFlats(ctx context.Context, buildingID int64, opts ...gateway.RequestOption) ([]model.Flat, error) {
	var flats []model.Flat
	if err := dao.Client.Get(ctx, flatsPath(buildingID), &flats, opts...); err != nil {
		logger.Error("Failed to list flats", zap.Error(err), zap.Int64("buildingID", buildingID))
		return nil, err
	}
	return flats, nil
}

func (dao *FlatDAO) GetFlat(ctx context.Context, buildingID, flatID int64) (*model.Flat, error) {
	var flat model.Flat
	if err := dao.Client.Get(ctx, flatPath(buildingID, flatID), &flat); err != nil {
		logger.Error("Failed to get flat", zap.Error(err), zap.Int64("flatID", flatID))
		return nil, err
	}
	return &flat, nil
}

func (dao *FlatDAO) CreateFlat(ctx context.Context, buildingID int64, req model.FlatRequest) (*model.Flat, error) {
	req.ApartmentBuildingID = buildingID
	logger.Info("Creating new flat", zap.String("flatNumber", req.FlatNumber), zap.Int64("buildingID", buildingID))
	var flat model.Flat
	if err := dao.Client.Post(ctx, flatsPath(buildingID), req, &flat); err != nil {
		logger.Error("Failed to create flat", zap.Error(err), zap.String("flatNumber", req.FlatNumber))
		return nil, err
	}
	return &flat, nil
}

func (dao *FlatDAO) UpdateFlat(ctx context.Context, buildingID, flatID int64, req model.FlatRequest) (*model.Flat, error) {
	req.ApartmentBuildingID = buildingID
	var flat model.Flat
	if err := dao.Client.Put(ctx, flatPath(buildingID, flatID), req, &flat); err != nil {
		logger.Error("Failed to update flat", zap.Error(err), zap.Int64("flatID", flatID))
		return nil, err
	}
	return &flat, nil
}

func (dao *FlatDAO) DeleteFlat(ctx context.Context, buildingID, flatID int64) error {
	if err := dao.Client.Delete(ctx, flatPath(buildingID, flatID), nil); err != nil {
		logger.Error("Failed to delete flat", zap.Error(err), zap.Int64("flatID", flatID))
		return err
	}
	return nil
}

func flatsPath(buildingID int64) string {
	return fmt.Sprintf("%s/%d/flats", buildingsPath, buildingID)
}

func flatPath(buildingID, flatID int64) string {
	return fmt.Sprintf("%s/%d", flatsPath(buildingID), flatID)
}
