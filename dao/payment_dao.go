// console/dao/payment_dao.go
package dao

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
)

const paymentsPath = "/payments"

type PaymentDAO struct {
	Client *gateway.Client
}

func NewPaymentDAO(client *gateway.Client) *PaymentDAO {
	return &PaymentDAO{Client: client}
}

func (dao *PaymentDAO) RecordPayment(ctx context.Context, req model.PaymentRequest) (*model.Payment, error) {
	logger.Info("Recording payment", zap.Int64("flatID", req.FlatID), zap.Float64("amount", req.Amount))
	var payment model.Payment
	if err := dao.Client.Post(ctx, paymentsPath, req, &payment); err != nil {
		logger.Error("Failed to record payment", zap.Error(err), zap.Int64("flatID", req.FlatID))
		return nil, err
	}
	return &payment, nil
}

func (dao *PaymentDAO) ListByFlat(ctx context.Context, flatID int64, dates model.DateRange) ([]model.Payment, error) {
	var payments []model.Payment
	err := dao.Client.Get(ctx, fmt.Sprintf("%s/flat/%d", paymentsPath, flatID), &payments, dateParams(dates))
	return payments, err
}

func (dao *PaymentDAO) ListByBuilding(ctx context.Context, buildingID int64, dates model.DateRange) ([]model.Payment, error) {
	var payments []model.Payment
	err := dao.Client.Get(ctx, fmt.Sprintf("%s/building/%d", paymentsPath, buildingID), &payments, dateParams(dates))
	return payments, err
}

func (dao *PaymentDAO) GetStatistics(ctx context.Context, buildingID int64, dates model.DateRange) (*model.PaymentStatistics, error) {
	var stats model.PaymentStatistics
	if err := dao.Client.Get(ctx, fmt.Sprintf("%s/building/%d/statistics", paymentsPath, buildingID), &stats, dateParams(dates)); err != nil {
		return nil, err
	}
	stats.BuildingID = buildingID
	return &stats, nil
}

func (dao *PaymentDAO) GetOutstandingBalance(ctx context.Context, flatID int64) (*model.FlatBalance, error) {
	var balance model.FlatBalance
	if err := dao.Client.Get(ctx, fmt.Sprintf("%s/flat/%d/balance", paymentsPath, flatID), &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (dao *PaymentDAO) UpdatePayment(ctx context.Context, id int64, req model.PaymentRequest) (*model.Payment, error) {
	var payment model.Payment
	if err := dao.Client.Put(ctx, fmt.Sprintf("%s/%d", paymentsPath, id), req, &payment); err != nil {
		logger.Error("Failed to update payment", zap.Error(err), zap.Int64("paymentID", id))
		return nil, err
	}
	return &payment, nil
}

func (dao *PaymentDAO) DeletePayment(ctx context.Context, id int64) error {
	if err := dao.Client.Delete(ctx, fmt.Sprintf("%s/%d", paymentsPath, id), nil); err != nil {
		logger.Error("Failed to delete payment", zap.Error(err), zap.Int64("paymentID", id))
		return err
	}
	return nil
}

func dateParams(dates model.DateRange) gateway.RequestOption {
	return gateway.WithParams(map[string]interface{}{
		"startDate": dates.StartDate,
		"endDate":   dates.EndDate,
	})
}
