// console/controller/dashboard_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
	helper_util "github.com/dev-mohitbeniwal/aptmgr/console/util/helper"
)

type DashboardController struct {
	dashboardService service.IDashboardService
}

func NewDashboardController(dashboardService service.IDashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func (dc *DashboardController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/buildings/:id/dashboard", dc.GetBuildingDashboard)
}

// GetBuildingDashboard endpoint
func (dc *DashboardController) GetBuildingDashboard(c *gin.Context) {
	id, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid building id", apt_errors.ErrInvalidBuildingID)
		return
	}

	dashboard, err := dc.dashboardService.GetBuildingDashboard(c.Request.Context(), id, fetchOptions(c))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to build dashboard", err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
