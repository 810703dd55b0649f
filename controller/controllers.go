// console/controller/controllers.go
package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/aptmgr/console/service"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
	helper_util "github.com/dev-mohitbeniwal/aptmgr/console/util/helper"
)

type Controllers struct {
	Auth         *AuthController
	Notification *NotificationController
	Building     *BuildingController
	Contract     *ContractController
	Dues         *DuesController
	Payment      *PaymentController
	Dashboard    *DashboardController
	Polling      *PollingController
}

func InitializeControllers(services *service.Services, notificationSvc *util.NotificationService, loadingSvc *util.LoadingService, navigator *util.Navigator) *Controllers {
	return &Controllers{
		Auth:         NewAuthController(services.Auth, navigator),
		Notification: NewNotificationController(notificationSvc, loadingSvc),
		Building:     NewBuildingController(services.Building, services.Flat),
		Contract:     NewContractController(services.Contract),
		Dues:         NewDuesController(services.Dues),
		Payment:      NewPaymentController(services.Payment),
		Dashboard:    NewDashboardController(services.Dashboard),
		Polling:      NewPollingController(services.Building, services.Flat, services.Contract, services.Dues),
	}
}

// fetchOptions maps ?refresh=true and ?poll=true onto service read options.
// Pollers started here run until stopped through /polling or logout.
func fetchOptions(c *gin.Context) service.FetchOptions {
	return service.FetchOptions{
		ForceRefresh:  helper_util.GetBoolQuery(c, "refresh"),
		EnablePolling: helper_util.GetBoolQuery(c, "poll"),
	}
}
