// console/service/expense_service.go
package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dev-mohitbeniwal/aptmgr/console/cache"
	"github.com/dev-mohitbeniwal/aptmgr/console/dao"
	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

const DefaultTrendMonths = 6

// IExpenseService defines the interface for expense operations
type IExpenseService interface {
	CreateExpense(ctx context.Context, req model.ExpenseRequest) (*model.Expense, error)
	ListByBuilding(ctx context.Context, buildingID int64, dates model.DateRange, opts FetchOptions) ([]model.Expense, error)
	ListByCategory(ctx context.Context, buildingID int64, category model.ExpenseCategory) ([]model.Expense, error)
	GetBreakdown(ctx context.Context, buildingID int64, dates model.DateRange, opts FetchOptions) (*model.ExpenseBreakdown, error)
	GetMonthlyTrends(ctx context.Context, buildingID int64, months int, opts FetchOptions) (*model.MonthlyExpenseTrends, error)
	ListRecurring(ctx context.Context, buildingID int64) ([]model.Expense, error)
	AnalyzeTrends(ctx context.Context, buildingID int64, periodDays int) (map[string]interface{}, error)
	UpdateExpense(ctx context.Context, id int64, req model.ExpenseRequest) (*model.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
	ClearCache()
}

type ExpenseService struct {
	expenseDAO      *dao.ExpenseDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus

	listCache      *cache.Cache[[]model.Expense]
	breakdownCache *cache.Cache[*model.ExpenseBreakdown]
	trendsCache    *cache.Cache[*model.MonthlyExpenseTrends]
}

var _ IExpenseService = &ExpenseService{}

func NewExpenseService(expenseDAO *dao.ExpenseDAO, settings CacheSettings, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *ExpenseService {
	service := &ExpenseService{
		expenseDAO:      expenseDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		listCache:       cache.New[[]model.Expense]("expenses", settings.ListTTL),
		breakdownCache:  cache.New[*model.ExpenseBreakdown]("expense-breakdowns", settings.StatsTTL),
		trendsCache:     cache.New[*model.MonthlyExpenseTrends]("expense-trends", settings.StatsTTL),
	}
	cacheService.Register(service.listCache, service.breakdownCache, service.trendsCache)
	return service
}

func (s *ExpenseService) CreateExpense(ctx context.Context, req model.ExpenseRequest) (*model.Expense, error) {
	if err := s.validationUtil.ValidateExpense(req); err != nil {
		return nil, err
	}
	expense, err := s.expenseDAO.CreateExpense(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	s.afterMutation(ctx, expense.ID)
	notifySuccess(ctx, s.notificationSvc, "Expense recorded successfully")
	return expense, nil
}

func (s *ExpenseService) ListByBuilding(ctx context.Context, buildingID int64, dates model.DateRange, opts FetchOptions) ([]model.Expense, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	return s.listCache.Get(ctx, buildingKey(buildingID)+dateKey(dates), opts.ForceRefresh, func(ctx context.Context) ([]model.Expense, error) {
		return s.expenseDAO.ListByBuilding(ctx, buildingID, dates)
	})
}

func (s *ExpenseService) ListByCategory(ctx context.Context, buildingID int64, category model.ExpenseCategory) ([]model.Expense, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	return s.listCache.Get(ctx, buildingKey(buildingID)+"-category-"+string(category), false, func(ctx context.Context) ([]model.Expense, error) {
		return s.expenseDAO.ListByCategory(ctx, buildingID, category)
	})
}

func (s *ExpenseService) GetBreakdown(ctx context.Context, buildingID int64, dates model.DateRange, opts FetchOptions) (*model.ExpenseBreakdown, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	return s.breakdownCache.Get(ctx, buildingKey(buildingID)+dateKey(dates), opts.ForceRefresh, func(ctx context.Context) (*model.ExpenseBreakdown, error) {
		return s.expenseDAO.GetBreakdown(ctx, buildingID, dates)
	})
}

func (s *ExpenseService) GetMonthlyTrends(ctx context.Context, buildingID int64, months int, opts FetchOptions) (*model.MonthlyExpenseTrends, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	if months <= 0 {
		months = DefaultTrendMonths
	}
	key := buildingKey(buildingID) + "-months-" + strconv.Itoa(months)
	return s.trendsCache.Get(ctx, key, opts.ForceRefresh, func(ctx context.Context) (*model.MonthlyExpenseTrends, error) {
		return s.expenseDAO.GetMonthlyTrends(ctx, buildingID, months)
	})
}

func (s *ExpenseService) ListRecurring(ctx context.Context, buildingID int64) ([]model.Expense, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	return s.expenseDAO.ListRecurring(ctx, buildingID)
}

func (s *ExpenseService) AnalyzeTrends(ctx context.Context, buildingID int64, periodDays int) (map[string]interface{}, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	if periodDays <= 0 {
		periodDays = 30
	}
	return s.expenseDAO.AnalyzeTrends(ctx, buildingID, periodDays)
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, id int64, req model.ExpenseRequest) (*model.Expense, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: expense id %d", apt_errors.ErrInvalidExpenseData, id)
	}
	if err := s.validationUtil.ValidateExpense(req); err != nil {
		return nil, err
	}
	expense, err := s.expenseDAO.UpdateExpense(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	s.afterMutation(ctx, id)
	notifySuccess(ctx, s.notificationSvc, "Expense updated successfully")
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: expense id %d", apt_errors.ErrInvalidExpenseData, id)
	}
	if err := s.expenseDAO.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	s.afterMutation(ctx, id)
	notifySuccess(ctx, s.notificationSvc, "Expense deleted successfully")
	return nil
}

func (s *ExpenseService) ClearCache() {
	s.listCache.InvalidateAll()
	s.breakdownCache.InvalidateAll()
	s.trendsCache.InvalidateAll()
}

func (s *ExpenseService) afterMutation(ctx context.Context, expenseID int64) {
	s.ClearCache()
	s.eventBus.PublishSync(ctx, util.EventExpenseChanged, expenseID)
}
