// console/controller/contract_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
	helper_util "github.com/dev-mohitbeniwal/aptmgr/console/util/helper"
)

type ContractController struct {
	contractService service.IContractService
}

func NewContractController(contractService service.IContractService) *ContractController {
	return &ContractController{
		contractService: contractService,
	}
}

// RegisterRoutes registers the API routes
func (cc *ContractController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/buildings/:id/contracts", cc.GetContractsByBuilding)

	contracts := r.Group("/contracts")
	{
		contracts.GET("/preview-dues", cc.PreviewDues)
		contracts.GET("/:id", cc.GetContract)
	}
}

// GetContractsByBuilding endpoint
func (cc *ContractController) GetContractsByBuilding(c *gin.Context) {
	id, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid building id", apt_errors.ErrInvalidBuildingID)
		return
	}
	page, err := helper_util.GetPageRequest(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", apt_errors.ErrInvalidPagination)
		return
	}

	contracts, err := cc.contractService.GetContractsByBuilding(c.Request.Context(), id, page, fetchOptions(c))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list contracts", err)
		return
	}

	c.JSON(http.StatusOK, contracts)
}

// GetContract endpoint
func (cc *ContractController) GetContract(c *gin.Context) {
	id, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid contract id", apt_errors.ErrInvalidContractID)
		return
	}

	contract, err := cc.contractService.GetContract(c.Request.Context(), id, helper_util.GetBoolQuery(c, "refresh"))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to retrieve contract", err)
		return
	}

	c.JSON(http.StatusOK, contract)
}

// PreviewDues lists the dues a contract would generate without creating it.
// Query: startDate, endDate, dayOfMonth, monthlyRent.
func (cc *ContractController) PreviewDues(c *gin.Context) {
	start, err := helper_util.ParseDate(c.Query("startDate"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid startDate", apt_errors.ErrInvalidDateRange)
		return
	}
	end, err := helper_util.ParseDate(c.Query("endDate"))
	if err != nil || end.Before(start) {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid endDate", apt_errors.ErrInvalidDateRange)
		return
	}
	day, err := strconv.Atoi(c.DefaultQuery("dayOfMonth", strconv.Itoa(start.Day())))
	if err != nil || day < 1 || day > 31 {
		util.RespondWithError(c, http.StatusBadRequest, "dayOfMonth must be between 1 and 31", apt_errors.ErrInvalidContractData)
		return
	}
	rent, err := strconv.ParseFloat(c.Query("monthlyRent"), 64)
	if err != nil || rent <= 0 {
		util.RespondWithError(c, http.StatusBadRequest, "monthlyRent must be greater than 0", apt_errors.ErrInvalidContractData)
		return
	}

	c.JSON(http.StatusOK, cc.contractService.PreviewDues(start, end, day, rent))
}
