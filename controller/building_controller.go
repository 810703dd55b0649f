// console/controller/building_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
	helper_util "github.com/dev-mohitbeniwal/aptmgr/console/util/helper"
)

type BuildingController struct {
	buildingService service.IBuildingService
	flatService     service.IFlatService
}

func NewBuildingController(buildingService service.IBuildingService, flatService service.IFlatService) *BuildingController {
	return &BuildingController{
		buildingService: buildingService,
		flatService:     flatService,
	}
}

// RegisterRoutes registers the API routes
func (bc *BuildingController) RegisterRoutes(r *gin.RouterGroup) {
	buildings := r.Group("/buildings")
	{
		buildings.GET("", bc.ListBuildings)
		buildings.GET("/:id", bc.GetBuilding)
		buildings.GET("/:id/flats", bc.ListFlats)
	}
}

// ListBuildings endpoint
func (bc *BuildingController) ListBuildings(c *gin.Context) {
	buildings, err := bc.buildingService.ListBuildings(c.Request.Context(), fetchOptions(c))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list buildings", err)
		return
	}

	c.JSON(http.StatusOK, buildings)
}

// GetBuilding endpoint
func (bc *BuildingController) GetBuilding(c *gin.Context) {
	id, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid building id", apt_errors.ErrInvalidBuildingID)
		return
	}

	building, err := bc.buildingService.GetBuilding(c.Request.Context(), id, fetchOptions(c))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to retrieve building", err)
		return
	}

	c.JSON(http.StatusOK, building)
}

// ListFlats endpoint
func (bc *BuildingController) ListFlats(c *gin.Context) {
	id, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid building id", apt_errors.ErrInvalidBuildingID)
		return
	}

	flats, err := bc.flatService.ListFlats(c.Request.Context(), id, fetchOptions(c))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list flats", err)
		return
	}

	c.JSON(http.StatusOK, flats)
}
