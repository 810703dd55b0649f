// console/controller/dues_controller_test.go
package controller_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/aptmgr/console/controller"
	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
	mock_service "github.com/dev-mohitbeniwal/aptmgr/console/test/service_mock"
)

func TestDuesController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDuesService := mock_service.NewMockIMonthlyDueService(ctrl)
	duesController := controller.NewDuesController(mockDuesService)
	router, api := setupRouter()
	duesController.RegisterRoutes(api)

	t.Run("GenerateDues_Success", func(t *testing.T) {
		march := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		mockDuesService.EXPECT().
			GenerateForBuilding(gomock.Any(), int64(4), 1000.0, march, "").
			Return(make([]model.MonthlyDue, 5), nil)

		w := perform(router, "POST", "/console/buildings/4/dues/generate", `{"amount":1000,"month":"2024-03"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"generated":5`)
	})

	t.Run("GenerateDues_DefaultsToNextMonth", func(t *testing.T) {
		mockDuesService.EXPECT().
			GenerateForBuilding(gomock.Any(), int64(4), 1000.0, gomock.Any(), "Rent").
			DoAndReturn(func(_ context.Context, _ int64, _ float64, month time.Time, _ string) ([]model.MonthlyDue, error) {
				assert.Equal(t, 1, month.Day())
				assert.True(t, month.After(time.Now()))
				return []model.MonthlyDue{}, nil
			})

		w := perform(router, "POST", "/console/buildings/4/dues/generate", `{"amount":1000,"description":"Rent"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("GenerateDues_Failure_Locked", func(t *testing.T) {
		mockDuesService.EXPECT().
			GenerateForBuilding(gomock.Any(), int64(4), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("dues:generate:4:2024-03: %w", apt_errors.ErrDueGenerationLocked))

		w := perform(router, "POST", "/console/buildings/4/dues/generate", `{"amount":1000,"month":"2024-03"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("GenerateDues_Failure_InvalidBody", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, perform(router, "POST", "/console/buildings/4/dues/generate", `{"amount":0}`).Code)
		assert.Equal(t, http.StatusBadRequest, perform(router, "POST", "/console/buildings/4/dues/generate", `{"amount":10,"month":"March"}`).Code)
	})

	t.Run("ListDebtors_Success", func(t *testing.T) {
		mockDuesService.EXPECT().
			ListDebtors(gomock.Any(), int64(4), service.FetchOptions{EnablePolling: true}).
			Return([]model.DebtorInfo{{FlatID: 1, TotalDebt: 250}}, nil)

		w := perform(router, "GET", "/console/buildings/4/debtors?poll=true", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalDebt":250`)
	})

	t.Run("GetCollectionRate_Success", func(t *testing.T) {
		dates := model.DateRange{StartDate: "2024-01-01", EndDate: "2024-01-31"}
		mockDuesService.EXPECT().
			GetCollectionRate(gomock.Any(), int64(4), dates, gomock.Any()).
			Return(&model.CollectionRate{BuildingID: 4, CollectionRate: 92.5}, nil)

		w := perform(router, "GET", "/console/buildings/4/collection-rate?startDate=2024-01-01&endDate=2024-01-31", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "92.5")
	})

	t.Run("GetCollectionRate_Failure_InvalidRange", func(t *testing.T) {
		w := perform(router, "GET", "/console/buildings/4/collection-rate?startDate=2024-02-01&endDate=2024-01-31", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
