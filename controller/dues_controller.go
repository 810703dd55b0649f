// console/controller/dues_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
	helper_util "github.com/dev-mohitbeniwal/aptmgr/console/util/helper"
)

const monthLayout = "2006-01"

type DuesController struct {
	duesService service.IMonthlyDueService
	now         func() time.Time
}

func NewDuesController(duesService service.IMonthlyDueService) *DuesController {
	return &DuesController{
		duesService: duesService,
		now:         time.Now,
	}
}

// generateDuesRequest asks for one due per active flat. Month is YYYY-MM and
// defaults to next month.
type generateDuesRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Month       string  `json:"month"`
	Description string  `json:"description"`
}

// RegisterRoutes registers the API routes
func (dc *DuesController) RegisterRoutes(r *gin.RouterGroup) {
	buildings := r.Group("/buildings/:id")
	{
		buildings.POST("/dues/generate", dc.GenerateDues)
		buildings.GET("/debtors", dc.ListDebtors)
		buildings.GET("/collection-rate", dc.GetCollectionRate)
	}
}

// GenerateDues endpoint
func (dc *DuesController) GenerateDues(c *gin.Context) {
	id, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid building id", apt_errors.ErrInvalidBuildingID)
		return
	}
	var req generateDuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid monthly due data", apt_errors.ErrInvalidDueData)
		return
	}

	month := helper_util.FirstOfNextMonth(dc.now())
	if req.Month != "" {
		month, err = time.Parse(monthLayout, req.Month)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "month must be in YYYY-MM format", apt_errors.ErrInvalidDueData)
			return
		}
	}

	dues, err := dc.duesService.GenerateForBuilding(c.Request.Context(), id, req.Amount, month, req.Description)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to generate monthly dues", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"generated": len(dues),
		"dues":      dues,
	})
}

// ListDebtors endpoint
func (dc *DuesController) ListDebtors(c *gin.Context) {
	id, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid building id", apt_errors.ErrInvalidBuildingID)
		return
	}

	debtors, err := dc.duesService.ListDebtors(c.Request.Context(), id, fetchOptions(c))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list debtors", err)
		return
	}

	c.JSON(http.StatusOK, debtors)
}

// GetCollectionRate endpoint
func (dc *DuesController) GetCollectionRate(c *gin.Context) {
	id, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid building id", apt_errors.ErrInvalidBuildingID)
		return
	}
	dates, err := helper_util.GetDateRange(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid date range", apt_errors.ErrInvalidDateRange)
		return
	}

	rate, err := dc.duesService.GetCollectionRate(c.Request.Context(), id, dates, fetchOptions(c))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to retrieve collection rate", err)
		return
	}

	c.JSON(http.StatusOK, rate)
}
