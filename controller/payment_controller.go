// console/controller/payment_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
	helper_util "github.com/dev-mohitbeniwal/aptmgr/console/util/helper"
)

type PaymentController struct {
	paymentService service.IPaymentService
}

func NewPaymentController(paymentService service.IPaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// RegisterRoutes registers the API routes
func (pc *PaymentController) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/payments", pc.RecordPayment)
	r.GET("/flats/:id/payments", pc.ListFlatPayments)
}

// RecordPayment endpoint
func (pc *PaymentController) RecordPayment(c *gin.Context) {
	var req model.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid payment data", apt_errors.ErrInvalidPaymentData)
		return
	}

	payment, err := pc.paymentService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to record payment", err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// ListFlatPayments endpoint
func (pc *PaymentController) ListFlatPayments(c *gin.Context) {
	id, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid flat id", apt_errors.ErrInvalidFlatID)
		return
	}
	dates, err := helper_util.GetDateRange(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid date range", apt_errors.ErrInvalidDateRange)
		return
	}

	payments, err := pc.paymentService.ListByFlat(c.Request.Context(), id, dates, fetchOptions(c))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list payments", err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
