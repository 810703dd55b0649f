// console/dao/monthly_due_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
)

const monthlyDuesPath = "/monthly-dues"

type MonthlyDueDAO struct {
	Client *gateway.Client
}

func NewMonthlyDueDAO(client *gateway.Client) *MonthlyDueDAO {
	return &MonthlyDueDAO{Client: client}
}

// GenerateDues creates one due per active flat of req.BuildingID.
func (dao *MonthlyDueDAO) GenerateDues(ctx context.Context, req model.MonthlyDueRequest) ([]model.MonthlyDue, error) {
	start := time.Now()
	logger.Info("Generating monthly dues", zap.Int64p("buildingID", req.BuildingID), zap.String("dueDate", req.DueDate))
	var dues []model.MonthlyDue
	if err := dao.Client.Post(ctx, monthlyDuesPath+"/generate", req, &dues); err != nil {
		logger.Error("Failed to generate monthly dues", zap.Error(err), zap.Int64p("buildingID", req.BuildingID))
		return nil, err
	}
	logger.Info("Monthly dues generated",
		zap.Int("count", len(dues)),
		zap.Duration("duration", time.Since(start)))
	return dues, nil
}

func (dao *MonthlyDueDAO) CreateDue(ctx context.Context, req model.MonthlyDueRequest) (*model.MonthlyDue, error) {
	var due model.MonthlyDue
	if err := dao.Client.Post(ctx, monthlyDuesPath, req, &due); err != nil {
		logger.Error("Failed to create monthly due", zap.Error(err), zap.Int64p("flatID", req.FlatID))
		return nil, err
	}
	return &due, nil
}

func (dao *MonthlyDueDAO) ListByFlat(ctx context.Context, flatID int64) ([]model.MonthlyDue, error) {
	var dues []model.MonthlyDue
	err := dao.Client.Get(ctx, fmt.Sprintf("%s/flat/%d", monthlyDuesPath, flatID), &dues)
	return dues, err
}

func (dao *MonthlyDueDAO) ListDebtors(ctx context.Context, buildingID int64, opts ...gateway.RequestOption) ([]model.DebtorInfo, error) {
	var debtors []model.DebtorInfo
	err := dao.Client.Get(ctx, buildingDuesPath(buildingID, "/debtors"), &debtors, opts...)
	return debtors, err
}

func (dao *MonthlyDueDAO) ListOverdue(ctx context.Context, buildingID int64) ([]model.MonthlyDue, error) {
	var dues []model.MonthlyDue
	err := dao.Client.Get(ctx, buildingDuesPath(buildingID, "/overdue"), &dues)
	return dues, err
}

func (dao *MonthlyDueDAO) ListByBuilding(ctx context.Context, buildingID int64) ([]model.MonthlyDue, error) {
	var dues []model.MonthlyDue
	err := dao.Client.Get(ctx, buildingDuesPath(buildingID, ""), &dues)
	return dues, err
}

func (dao *MonthlyDueDAO) GetCollectionRate(ctx context.Context, buildingID int64, dates model.DateRange) (*model.CollectionRate, error) {
	var rate model.CollectionRate
	if err := dao.Client.Get(ctx, buildingDuesPath(buildingID, "/collection-rate"), &rate, dateParams(dates)); err != nil {
		return nil, err
	}
	return &rate, nil
}

func (dao *MonthlyDueDAO) UpdateDue(ctx context.Context, id int64, req model.MonthlyDueRequest) (*model.MonthlyDue, error) {
	var due model.MonthlyDue
	if err := dao.Client.Put(ctx, fmt.Sprintf("%s/%d", monthlyDuesPath, id), req, &due); err != nil {
		logger.Error("Failed to update monthly due", zap.Error(err), zap.Int64("dueID", id))
		return nil, err
	}
	return &due, nil
}

func (dao *MonthlyDueDAO) CancelDue(ctx context.Context, id int64) error {
	if err := dao.Client.Delete(ctx, fmt.Sprintf("%s/%d/cancel", monthlyDuesPath, id), nil); err != nil {
		logger.Error("Failed to cancel monthly due", zap.Error(err), zap.Int64("dueID", id))
		return err
	}
	return nil
}

func (dao *MonthlyDueDAO) UpdateOverdueStatuses(ctx context.Context, opts ...gateway.RequestOption) (*model.MessageResponse, error) {
	var resp model.MessageResponse
	if err := dao.Client.Post(ctx, monthlyDuesPath+"/update-overdue-statuses", nil, &resp, opts...); err != nil {
		return nil, err
	}
	return &resp, nil
}

func buildingDuesPath(buildingID int64, suffix string) string {
	return fmt.Sprintf("%s/building/%d%s", monthlyDuesPath, buildingID, suffix)
}
