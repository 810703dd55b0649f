// console/controller/payment_controller_test.go
package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/aptmgr/console/controller"
	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	mock_service "github.com/dev-mohitbeniwal/aptmgr/console/test/service_mock"
)

func TestPaymentController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPaymentService := mock_service.NewMockIPaymentService(ctrl)
	paymentController := controller.NewPaymentController(mockPaymentService)
	router, api := setupRouter()
	paymentController.RegisterRoutes(api)

	t.Run("RecordPayment_Success", func(t *testing.T) {
		mockPaymentService.EXPECT().
			RecordPayment(gomock.Any(), model.PaymentRequest{FlatID: 2, Amount: 500, PaymentDate: "2024-03-05", PaymentMethod: model.PaymentCash}).
			Return(&model.Payment{ID: 11, Amount: 500}, nil)

		w := perform(router, "POST", "/console/payments", `{"flatId":2,"amount":500,"paymentDate":"2024-03-05","paymentMethod":"CASH"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":11`)
	})

	t.Run("RecordPayment_Failure_Validation", func(t *testing.T) {
		mockPaymentService.EXPECT().
			RecordPayment(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: amount must be greater than 0", apt_errors.ErrInvalidPaymentData))

		w := perform(router, "POST", "/console/payments", `{"flatId":2,"amount":0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("RecordPayment_Failure_Conflict", func(t *testing.T) {
		mockPaymentService.EXPECT().
			RecordPayment(gomock.Any(), gomock.Any()).
			Return(nil, &apt_errors.APIError{Status: http.StatusConflict, Message: "Duplicate receipt number"})

		w := perform(router, "POST", "/console/payments", `{"flatId":2,"amount":500,"paymentDate":"2024-03-05","paymentMethod":"CASH"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Duplicate receipt number")
	})

	t.Run("ListFlatPayments_Success", func(t *testing.T) {
		mockPaymentService.EXPECT().
			ListByFlat(gomock.Any(), int64(2), model.DateRange{StartDate: "2024-01-01"}, gomock.Any()).
			Return([]model.Payment{{ID: 1}, {ID: 2}}, nil)

		w := perform(router, "GET", "/console/flats/2/payments?startDate=2024-01-01", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ListFlatPayments_Failure_InvalidID", func(t *testing.T) {
		w := perform(router, "GET", "/console/flats/0/payments", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
