// console/dao/expense_dao.go
package dao

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
)

const expensesPath = "/expenses"

type ExpenseDAO struct {
	Client *gateway.Client
}

func NewExpenseDAO(client *gateway.Client) *ExpenseDAO {
	return &ExpenseDAO{Client: client}
}

func (dao *ExpenseDAO) CreateExpense(ctx context.Context, req model.ExpenseRequest) (*model.Expense, error) {
	logger.Info("Creating expense",
		zap.Int64("buildingID", req.BuildingID),
		zap.String("category", string(req.Category)),
		zap.Float64("amount", req.Amount))
	var expense model.Expense
	if err := dao.Client.Post(ctx, expensesPath, req, &expense); err != nil {
		logger.Error("Failed to create expense", zap.Error(err), zap.Int64("buildingID", req.BuildingID))
		return nil, err
	}
	return &expense, nil
}

func (dao *ExpenseDAO) ListByBuilding(ctx context.Context, buildingID int64, dates model.DateRange) ([]model.Expense, error) {
	var expenses []model.Expense
	err := dao.Client.Get(ctx, buildingExpensesPath(buildingID, ""), &expenses, dateParams(dates))
	return expenses, err
}

func (dao *ExpenseDAO) ListByCategory(ctx context.Context, buildingID int64, category model.ExpenseCategory) ([]model.Expense, error) {
	var expenses []model.Expense
	err := dao.Client.Get(ctx, buildingExpensesPath(buildingID, "/category/"+url.PathEscape(string(category))), &expenses)
	return expenses, err
}

func (dao *ExpenseDAO) GetBreakdown(ctx context.Context, buildingID int64, dates model.DateRange) (*model.ExpenseBreakdown, error) {
	var breakdown model.ExpenseBreakdown
	if err := dao.Client.Get(ctx, buildingExpensesPath(buildingID, "/breakdown"), &breakdown, dateParams(dates)); err != nil {
		return nil, err
	}
	return &breakdown, nil
}

func (dao *ExpenseDAO) GetMonthlyTrends(ctx context.Context, buildingID int64, months int) (*model.MonthlyExpenseTrends, error) {
	var trends model.MonthlyExpenseTrends
	err := dao.Client.Get(ctx, buildingExpensesPath(buildingID, "/monthly-trends"), &trends,
		gateway.WithParams(map[string]interface{}{"months": months}))
	if err != nil {
		return nil, err
	}
	return &trends, nil
}

func (dao *ExpenseDAO) ListRecurring(ctx context.Context, buildingID int64) ([]model.Expense, error) {
	var expenses []model.Expense
	err := dao.Client.Get(ctx, buildingExpensesPath(buildingID, "/recurring"), &expenses)
	return expenses, err
}

// AnalyzeTrends returns the backend's free-form period comparison.
func (dao *ExpenseDAO) AnalyzeTrends(ctx context.Context, buildingID int64, periodDays int) (map[string]interface{}, error) {
	var analysis map[string]interface{}
	err := dao.Client.Get(ctx, buildingExpensesPath(buildingID, "/trend-analysis"), &analysis,
		gateway.WithParams(map[string]interface{}{"periodDays": periodDays}))
	return analysis, err
}

func (dao *ExpenseDAO) UpdateExpense(ctx context.Context, id int64, req model.ExpenseRequest) (*model.Expense, error) {
	var expense model.Expense
	if err := dao.Client.Put(ctx, fmt.Sprintf("%s/%d", expensesPath, id), req, &expense); err != nil {
		logger.Error("Failed to update expense", zap.Error(err), zap.Int64("expenseID", id))
		return nil, err
	}
	return &expense, nil
}

func (dao *ExpenseDAO) DeleteExpense(ctx context.Context, id int64) error {
	if err := dao.Client.Delete(ctx, fmt.Sprintf("%s/%d", expensesPath, id), nil); err != nil {
		logger.Error("Failed to delete expense", zap.Error(err), zap.Int64("expenseID", id))
		return err
	}
	return nil
}

func buildingExpensesPath(buildingID int64, suffix string) string {
	return fmt.Sprintf("%s/building/%d%s", expensesPath, buildingID, suffix)
}
