// console/service/expense_service_test.go
package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
)

const (
	buildingExpenses = "GET /api/expenses/building/{id}"
	createExpense    = "POST /api/expenses"
	updateExpense    = "PUT /api/expenses/{id}"
	deleteExpense    = "DELETE /api/expenses/{id}"
)

func validExpense() model.ExpenseRequest {
	return model.ExpenseRequest{
		BuildingID:  4,
		Category:    "MAINTENANCE",
		Amount:      120,
		ExpenseDate: "2024-03-10",
		Description: "Elevator service",
	}
}

func TestExpenseService(t *testing.T) {
	ctx := context.Background()

	// primeExpenseCaches reads the list and the breakdown twice so both are
	// cached, and checks the second read stayed local.
	primeExpenseCaches := func(t *testing.T, env *testEnv) {
		for i := 0; i < 2; i++ {
			_, err := env.services.Expense.ListByBuilding(ctx, 4, model.DateRange{}, service.FetchOptions{})
			require.NoError(t, err)
			_, err = env.services.Expense.GetBreakdown(ctx, 4, model.DateRange{}, service.FetchOptions{})
			require.NoError(t, err)
		}
		require.Equal(t, 1, env.backend.count(buildingExpenses))
		require.Equal(t, 1, env.backend.count(expenseBreakdown))
	}

	expectRefetch := func(t *testing.T, env *testEnv) {
		_, err := env.services.Expense.ListByBuilding(ctx, 4, model.DateRange{}, service.FetchOptions{})
		require.NoError(t, err)
		_, err = env.services.Expense.GetBreakdown(ctx, 4, model.DateRange{}, service.FetchOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2, env.backend.count(buildingExpenses))
		assert.Equal(t, 2, env.backend.count(expenseBreakdown))
	}

	newExpenseEnv := func(t *testing.T) *testEnv {
		env := newTestEnv(t)
		env.backend.handle(buildingExpenses, http.StatusOK, []model.Expense{{ID: 1, Amount: 80}})
		env.backend.handle(expenseBreakdown, http.StatusOK, model.ExpenseBreakdown{BuildingID: 4, TotalExpenses: 80})
		return env
	}

	t.Run("CreateExpense_InvalidatesCaches", func(t *testing.T) {
		env := newExpenseEnv(t)
		env.backend.handle(createExpense, http.StatusCreated, model.Expense{ID: 2, Amount: 120})
		primeExpenseCaches(t, env)

		created, err := env.services.Expense.CreateExpense(ctx, validExpense())
		require.NoError(t, err)
		assert.Equal(t, int64(2), created.ID)

		expectRefetch(t, env)
		assert.Contains(t, env.titles(model.NotificationSuccess), "Expense recorded successfully")
	})

	t.Run("UpdateExpense_InvalidatesCaches", func(t *testing.T) {
		env := newExpenseEnv(t)
		env.backend.handle(updateExpense, http.StatusOK, model.Expense{ID: 1, Amount: 120})
		primeExpenseCaches(t, env)

		_, err := env.services.Expense.UpdateExpense(ctx, 1, validExpense())
		require.NoError(t, err)

		expectRefetch(t, env)
		assert.Contains(t, env.titles(model.NotificationSuccess), "Expense updated successfully")
	})

	t.Run("DeleteExpense_InvalidatesCaches", func(t *testing.T) {
		env := newExpenseEnv(t)
		env.backend.handle(deleteExpense, http.StatusNoContent, nil)
		primeExpenseCaches(t, env)

		require.NoError(t, env.services.Expense.DeleteExpense(ctx, 1))

		expectRefetch(t, env)
		assert.Contains(t, env.titles(model.NotificationSuccess), "Expense deleted successfully")
	})

	t.Run("CreateExpense_Invalid", func(t *testing.T) {
		env := newExpenseEnv(t)
		env.backend.handle(createExpense, http.StatusCreated, model.Expense{ID: 2})

		req := validExpense()
		req.Amount = 0
		_, err := env.services.Expense.CreateExpense(ctx, req)

		require.Error(t, err)
		assert.True(t, errors.Is(err, apt_errors.ErrInvalidExpenseData))
		assert.Equal(t, 0, env.backend.count(createExpense))
	})

	t.Run("DeleteExpense_FailureKeepsCaches", func(t *testing.T) {
		env := newExpenseEnv(t)
		env.backend.handle(deleteExpense, http.StatusConflict, model.ErrorResponse{Status: 409, Message: "Expense already settled"})
		primeExpenseCaches(t, env)

		err := env.services.Expense.DeleteExpense(ctx, 1)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apt_errors.StatusOf(err))

		_, err = env.services.Expense.ListByBuilding(ctx, 4, model.DateRange{}, service.FetchOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, env.backend.count(buildingExpenses))
		assert.NotContains(t, env.titles(model.NotificationSuccess), "Expense deleted successfully")
	})
}
