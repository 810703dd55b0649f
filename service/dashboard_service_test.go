// console/service/dashboard_service_test.go
package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
)

const expenseBreakdown = "GET /api/expenses/building/{id}/breakdown"

// stubDashboardParts answers every dashboard part except the patterns in skip.
func stubDashboardParts(env *testEnv, skip ...string) {
	handle := func(pattern string, payload interface{}) {
		for _, p := range skip {
			if p == pattern {
				return
			}
		}
		env.backend.handle(pattern, http.StatusOK, payload)
	}
	handle("GET /api/apartment-buildings/{id}/flats", []model.Flat{
		{ID: 1, FlatNumber: "1A", OccupancyStatus: model.OccupancyOccupied},
		{ID: 2, FlatNumber: "1B", OccupancyStatus: model.OccupancyVacant},
		{ID: 3, FlatNumber: "2A", ActiveContract: &model.ActiveContractInfo{}},
	})
	handle("GET /api/contracts/building/{id}/statistics", model.ContractStatistics{Total: 4, Active: 2, Expired: 2})
	handle("GET /api/contracts/building/{id}/monthly-rent", model.MonthlyRentTotal{TotalMonthlyRent: 2400})
	handle(listDebtors, []model.DebtorInfo{
		{FlatID: 1, TotalDebt: 300},
		{FlatID: 3, TotalDebt: 150.5},
	})
	handle("GET /api/monthly-dues/building/{id}/collection-rate", model.CollectionRate{CollectionRate: 87.5})
	handle("GET /api/payments/building/{id}/statistics", model.PaymentStatistics{TotalAmount: 1950})
	handle(expenseBreakdown, model.ExpenseBreakdown{TotalExpenses: 410})
}

func TestDashboardService_GetBuildingDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		stubDashboardParts(env)

		dashboard, err := env.services.Dashboard.GetBuildingDashboard(ctx, 7, service.FetchOptions{})
		require.NoError(t, err)

		stats := dashboard.Statistics
		assert.Equal(t, int64(7), dashboard.BuildingID)
		assert.Equal(t, 3, stats.TotalFlats)
		assert.Equal(t, 2, stats.OccupiedFlats)
		assert.Equal(t, 1, stats.VacantFlats)
		assert.Equal(t, 2400.0, stats.MonthlyIncomeTarget)
		assert.Equal(t, 2, stats.DebtorCount)
		assert.InDelta(t, 450.5, stats.TotalDebt, 0.001)
		assert.Equal(t, 1950.0, stats.CurrentMonthCollection)
		assert.Equal(t, int64(2), dashboard.Contracts.Active)
		assert.Equal(t, 87.5, dashboard.CollectionRate.CollectionRate)
		assert.Equal(t, 410.0, dashboard.ExpenseBreakdown.TotalExpenses)

		// the period is the current calendar month
		assert.True(t, strings.HasSuffix(dashboard.Period.StartDate, "-01"))
		q := env.backend.lastRequest("GET /api/payments/building/{id}/statistics").URL.Query()
		assert.Equal(t, dashboard.Period.StartDate, q.Get("startDate"))
		assert.Equal(t, dashboard.Period.EndDate, q.Get("endDate"))
	})

	t.Run("ServedFromCaches", func(t *testing.T) {
		env := newTestEnv(t)
		stubDashboardParts(env)

		_, err := env.services.Dashboard.GetBuildingDashboard(ctx, 7, service.FetchOptions{})
		require.NoError(t, err)
		_, err = env.services.Dashboard.GetBuildingDashboard(ctx, 7, service.FetchOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, env.backend.count(listDebtors))

		_, err = env.services.Dashboard.GetBuildingDashboard(ctx, 7, service.FetchOptions{ForceRefresh: true})
		require.NoError(t, err)
		assert.Equal(t, 2, env.backend.count(listDebtors))
	})

	t.Run("PartFailure", func(t *testing.T) {
		env := newTestEnv(t)
		stubDashboardParts(env, expenseBreakdown)
		env.backend.handle(expenseBreakdown, http.StatusInternalServerError,
			model.ErrorResponse{Status: 500, Message: "boom"})

		dashboard, err := env.services.Dashboard.GetBuildingDashboard(ctx, 7, service.FetchOptions{})

		assert.Nil(t, dashboard)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load expense breakdown")
	})

	t.Run("InvalidBuilding", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.services.Dashboard.GetBuildingDashboard(ctx, 0, service.FetchOptions{})

		assert.True(t, errors.Is(err, apt_errors.ErrInvalidBuildingID))
	})
}
