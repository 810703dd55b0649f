// console/service/dashboard_service.go
package service

//go:generate mockgen -source=dashboard_service.go -destination=../test/service_mock/dashboard_service_mock.go -package=mock_service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	helper_util "github.com/dev-mohitbeniwal/aptmgr/console/util/helper"
)

type IDashboardService interface {
	GetBuildingDashboard(ctx context.Context, buildingID int64, opts FetchOptions) (*model.BuildingDashboard, error)
}

// DashboardService assembles the building overview from the other services,
// so every part of it is served from their caches.
type DashboardService struct {
	flats     IFlatService
	contracts IContractService
	payments  IPaymentService
	dues      IMonthlyDueService
	expenses  IExpenseService
	now       func() time.Time
}

var _ IDashboardService = &DashboardService{}

func NewDashboardService(flats IFlatService, contracts IContractService, payments IPaymentService, dues IMonthlyDueService, expenses IExpenseService) *DashboardService {
	return &DashboardService{
		flats:     flats,
		contracts: contracts,
		payments:  payments,
		dues:      dues,
		expenses:  expenses,
		now:       time.Now,
	}
}

// GetBuildingDashboard fetches the parts concurrently. The first failure
// cancels the rest and is returned.
func (s *DashboardService) GetBuildingDashboard(ctx context.Context, buildingID int64, opts FetchOptions) (*model.BuildingDashboard, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	start := time.Now()
	now := s.now()
	period := model.DateRange{
		StartDate: helper_util.FirstOfMonth(now).Format(helper_util.DateLayout),
		EndDate:   helper_util.FirstOfNextMonth(now).AddDate(0, 0, -1).Format(helper_util.DateLayout),
	}
	readOpts := FetchOptions{ForceRefresh: opts.ForceRefresh}

	var (
		flats       []model.Flat
		contracts   *model.ContractStatistics
		monthlyRent float64
		debtors     []model.DebtorInfo
		collection  *model.CollectionRate
		payments    *model.PaymentStatistics
		breakdown   *model.ExpenseBreakdown
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		flats, err = s.flats.ListFlats(gctx, buildingID, readOpts)
		return wrapPart("flats", err)
	})
	g.Go(func() (err error) {
		contracts, err = s.contracts.GetStatistics(gctx, buildingID)
		return wrapPart("contract statistics", err)
	})
	g.Go(func() (err error) {
		monthlyRent, err = s.contracts.GetTotalMonthlyRent(gctx, buildingID)
		return wrapPart("monthly rent", err)
	})
	g.Go(func() (err error) {
		debtors, err = s.dues.ListDebtors(gctx, buildingID, readOpts)
		return wrapPart("debtors", err)
	})
	g.Go(func() (err error) {
		collection, err = s.dues.GetCollectionRate(gctx, buildingID, period, readOpts)
		return wrapPart("collection rate", err)
	})
	g.Go(func() (err error) {
		payments, err = s.payments.GetStatistics(gctx, buildingID, period, readOpts)
		return wrapPart("payment statistics", err)
	})
	g.Go(func() (err error) {
		breakdown, err = s.expenses.GetBreakdown(gctx, buildingID, period, readOpts)
		return wrapPart("expense breakdown", err)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Failed to build dashboard", zap.Error(err), zap.Int64("buildingID", buildingID))
		return nil, err
	}

	dashboard := &model.BuildingDashboard{
		BuildingID:       buildingID,
		Statistics:       buildingStatistics(flats, monthlyRent, debtors, payments),
		Contracts:        contracts,
		Debtors:          debtors,
		CollectionRate:   collection,
		ExpenseBreakdown: breakdown,
		Period:           period,
		GeneratedAt:      now,
	}
	logger.Debug("Dashboard built",
		zap.Int64("buildingID", buildingID),
		zap.Duration("duration", time.Since(start)))
	return dashboard, nil
}

func buildingStatistics(flats []model.Flat, monthlyRent float64, debtors []model.DebtorInfo, payments *model.PaymentStatistics) model.BuildingStatistics {
	stats := model.BuildingStatistics{
		TotalFlats:          len(flats),
		MonthlyIncomeTarget: monthlyRent,
		DebtorCount:         len(debtors),
	}
	for _, f := range flats {
		if f.OccupancyStatus == model.OccupancyOccupied || (f.OccupancyStatus == "" && f.ActiveContract != nil) {
			stats.OccupiedFlats++
		}
	}
	stats.VacantFlats = stats.TotalFlats - stats.OccupiedFlats
	stats.TotalTenants = stats.OccupiedFlats
	for _, d := range debtors {
		stats.TotalDebt += d.TotalDebt
	}
	if payments != nil {
		stats.CurrentMonthCollection = payments.TotalAmount
	}
	return stats
}

func wrapPart(part string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", part, err)
}
