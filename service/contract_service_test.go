// console/service/contract_service_test.go
package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
)

const (
	getContract       = "GET /api/contracts/{id}"
	contractsBuilding = "GET /api/contracts/building/{id}"
	activeContract    = "GET /api/contracts/flat/{id}/active"
	cancelContract    = "POST /api/contracts/{id}/cancel"
	renewContract     = "POST /api/contracts/{id}/renew"
)

func TestContractService(t *testing.T) {
	ctx := context.Background()

	t.Run("GetContract_DetailCached", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handle(getContract, http.StatusOK, model.Contract{ID: 5, FlatNumber: "2B"})

		for i := 0; i < 3; i++ {
			c, err := env.services.Contract.GetContract(ctx, 5, false)
			require.NoError(t, err)
			assert.Equal(t, "2B", c.FlatNumber)
		}
		assert.Equal(t, 1, env.backend.count(getContract))

		_, err := env.services.Contract.GetContract(ctx, 5, true)
		require.NoError(t, err)
		assert.Equal(t, 2, env.backend.count(getContract))
	})

	t.Run("GetContractsByBuilding_PageParams", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handle(contractsBuilding, http.StatusOK, model.PaginatedResponse[model.ContractSummary]{
			Content:       []model.ContractSummary{{ID: 1}, {ID: 2}},
			TotalElements: 2,
		})

		page := model.PageRequest{Page: 1, Size: 20, Sort: "endDate,asc"}
		result, err := env.services.Contract.GetContractsByBuilding(ctx, 3, page, service.FetchOptions{})
		require.NoError(t, err)
		assert.Len(t, result.Content, 2)

		q := env.backend.lastRequest(contractsBuilding).URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "20", q.Get("size"))
		assert.Equal(t, "endDate", q.Get("sortBy"))
		assert.Equal(t, "ASC", q.Get("sortDirection"))

		// another page is another cache key
		_, err = env.services.Contract.GetContractsByBuilding(ctx, 3, model.DefaultPage, service.FetchOptions{})
		require.NoError(t, err)
		_, err = env.services.Contract.GetContractsByBuilding(ctx, 3, page, service.FetchOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2, env.backend.count(contractsBuilding))
	})

	t.Run("CancelContract_ClearsListsAndStalesDetails", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handle(getContract, http.StatusOK, model.Contract{ID: 5, Status: model.ContractActive})
		env.backend.handle(contractsBuilding, http.StatusOK, model.PaginatedResponse[model.ContractSummary]{})
		env.backend.handle(cancelContract, http.StatusOK, model.Contract{ID: 5, Status: model.ContractCancelled})

		_, err := env.services.Contract.GetContract(ctx, 5, false)
		require.NoError(t, err)
		_, err = env.services.Contract.GetContractsByBuilding(ctx, 3, model.DefaultPage, service.FetchOptions{})
		require.NoError(t, err)

		_, err = env.services.Contract.CancelContract(ctx, 5, model.ContractCancellationRequest{
			ReasonCategory: "TENANT_REQUEST", CancellationReason: "Moving abroad",
		})
		require.NoError(t, err)

		_, err = env.services.Contract.GetContract(ctx, 5, false)
		require.NoError(t, err)
		_, err = env.services.Contract.GetContractsByBuilding(ctx, 3, model.DefaultPage, service.FetchOptions{})
		require.NoError(t, err)

		assert.Equal(t, 2, env.backend.count(getContract))
		assert.Equal(t, 2, env.backend.count(contractsBuilding))
		assert.Contains(t, env.titles(model.NotificationSuccess), "Contract 5 cancelled successfully")
	})

	t.Run("RenewContract_InvalidatesFlats", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handle("GET /api/apartment-buildings/{id}/flats", http.StatusOK, []model.Flat{{ID: 1, FlatNumber: "1A"}})
		env.backend.handle(renewContract, http.StatusOK, model.Contract{ID: 9})

		_, err := env.services.Flat.ListFlats(ctx, 3, service.FetchOptions{})
		require.NoError(t, err)

		_, err = env.services.Contract.RenewContract(ctx, 5, model.ContractRenewalRequest{NewEndDate: "2026-01-31"})
		require.NoError(t, err)

		_, err = env.services.Flat.ListFlats(ctx, 3, service.FetchOptions{})
		require.NoError(t, err)

		assert.Equal(t, 2, env.backend.count("GET /api/apartment-buildings/{id}/flats"))
		assert.Contains(t, env.titles(model.NotificationSuccess), "Contract renewed successfully. New contract ID: 9")
	})

	t.Run("UpdateContractStatuses_NotifiesOperator", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handle("POST /api/contracts/update-statuses", http.StatusOK, nil)

		require.NoError(t, env.services.Contract.UpdateContractStatuses(ctx))

		assert.Contains(t, env.titles(model.NotificationSuccess), "Contract statuses updated successfully")
	})

	t.Run("UpdateContractStatuses_BackgroundIsSilent", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handle("POST /api/contracts/update-statuses", http.StatusOK, nil)

		require.NoError(t, env.services.Contract.UpdateContractStatuses(gateway.Background(ctx)))

		assert.Equal(t, 1, env.backend.count("POST /api/contracts/update-statuses"))
		assert.Empty(t, env.titles(model.NotificationSuccess))
	})

	t.Run("HasActiveContract", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handleFunc(activeContract, func(w http.ResponseWriter, r *http.Request) {
			if r.PathValue("id") == "1" {
				writeJSON(w, http.StatusOK, model.Contract{ID: 3})
				return
			}
			writeJSON(w, http.StatusNotFound, model.ErrorResponse{Status: 404, Message: "No active contract"})
		})

		has, err := env.services.Contract.HasActiveContract(ctx, 1)
		require.NoError(t, err)
		assert.True(t, has)

		has, err = env.services.Contract.HasActiveContract(ctx, 2)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("GetTotalMonthlyRent", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handle("GET /api/contracts/building/{id}/monthly-rent", http.StatusOK, map[string]float64{"totalMonthlyRent": 4200})

		total, err := env.services.Contract.GetTotalMonthlyRent(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, 4200.0, total)
	})

	t.Run("GenerateExpiryNotifications", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handle("POST /api/contracts/notifications/expiry", http.StatusOK, []model.ContractExpiryNotification{{ContractID: 1}, {ContractID: 2}})

		notifications, err := env.services.Contract.GenerateExpiryNotifications(ctx)

		require.NoError(t, err)
		assert.Len(t, notifications, 2)
		assert.Contains(t, env.titles(model.NotificationSuccess), "Generated 2 expiry notifications")
	})

	t.Run("ExpiringContracts_DefaultWindow", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handle("GET /api/contracts/expiring", http.StatusOK, []model.ContractSummary{})

		_, err := env.services.Contract.GetExpiringContracts(ctx, 0)

		require.NoError(t, err)
		assert.Equal(t, "30", env.backend.lastRequest("GET /api/contracts/expiring").URL.Query().Get("days"))
	})

	t.Run("PreviewDues_ClampsShortMonths", func(t *testing.T) {
		env := newTestEnv(t)
		start := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)

		previews := env.services.Contract.PreviewDues(start, end, 31, 1200)

		require.Len(t, previews, 4)
		assert.Equal(t, "2024-01-31", previews[0].DueDate)
		assert.Equal(t, "2024-02-29", previews[1].DueDate)
		assert.Equal(t, "2024-03-31", previews[2].DueDate)
		assert.Equal(t, "2024-04-30", previews[3].DueDate)
		assert.Equal(t, "February 2024", previews[1].Month)
		assert.Equal(t, 1200.0, previews[3].Amount)
	})
}
