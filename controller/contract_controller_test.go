// console/controller/contract_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/aptmgr/console/controller"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
	mock_service "github.com/dev-mohitbeniwal/aptmgr/console/test/service_mock"
)

func TestContractController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockContractService := mock_service.NewMockIContractService(ctrl)
	contractController := controller.NewContractController(mockContractService)
	router, api := setupRouter()
	contractController.RegisterRoutes(api)

	t.Run("GetContractsByBuilding_Success", func(t *testing.T) {
		page := model.PageRequest{Page: 2, Size: 25, Sort: "endDate,asc"}
		mockContractService.EXPECT().
			GetContractsByBuilding(gomock.Any(), int64(3), page, service.FetchOptions{ForceRefresh: true}).
			Return(&service.ContractPage{Content: []model.ContractSummary{{ID: 1}}, TotalElements: 1}, nil)

		w := perform(router, "GET", "/console/buildings/3/contracts?page=2&size=25&sort=endDate,asc&refresh=true", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalElements":1`)
	})

	t.Run("GetContractsByBuilding_Failure_InvalidPage", func(t *testing.T) {
		w := perform(router, "GET", "/console/buildings/3/contracts?size=500", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetContract_Success", func(t *testing.T) {
		mockContractService.EXPECT().
			GetContract(gomock.Any(), int64(5), false).
			Return(&model.Contract{ID: 5, TenantName: "Jane Roe"}, nil)

		w := perform(router, "GET", "/console/contracts/5", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Jane Roe")
	})

	t.Run("GetContract_Failure_NotFound", func(t *testing.T) {
		mockContractService.EXPECT().
			GetContract(gomock.Any(), int64(6), false).
			Return(nil, notFound("/contracts/6"))

		w := perform(router, "GET", "/console/contracts/6", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("PreviewDues_Success", func(t *testing.T) {
		start := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
		mockContractService.EXPECT().
			PreviewDues(start, end, 31, 1200.0).
			Return([]model.DuePreview{
				{Month: "January 2024", DueDate: "2024-01-31", Amount: 1200},
				{Month: "February 2024", DueDate: "2024-02-29", Amount: 1200},
				{Month: "March 2024", DueDate: "2024-03-31", Amount: 1200},
			})

		w := perform(router, "GET", "/console/contracts/preview-dues?startDate=2024-01-31&endDate=2024-03-31&dayOfMonth=31&monthlyRent=1200", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var previews []model.DuePreview
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &previews))
		assert.Len(t, previews, 3)
	})

	t.Run("PreviewDues_DefaultsDayToStart", func(t *testing.T) {
		start := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
		mockContractService.EXPECT().
			PreviewDues(start, end, 15, 900.0).
			Return([]model.DuePreview{})

		w := perform(router, "GET", "/console/contracts/preview-dues?startDate=2024-05-15&endDate=2024-06-15&monthlyRent=900", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("PreviewDues_Failure_EndBeforeStart", func(t *testing.T) {
		w := perform(router, "GET", "/console/contracts/preview-dues?startDate=2024-05-15&endDate=2024-04-15&monthlyRent=900", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("PreviewDues_Failure_MissingRent", func(t *testing.T) {
		w := perform(router, "GET", "/console/contracts/preview-dues?startDate=2024-05-15&endDate=2024-06-15", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
