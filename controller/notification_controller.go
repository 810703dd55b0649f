// console/controller/notification_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

type NotificationController struct {
	notificationSvc *util.NotificationService
	loadingSvc      *util.LoadingService
}

func NewNotificationController(notificationSvc *util.NotificationService, loadingSvc *util.LoadingService) *NotificationController {
	return &NotificationController{
		notificationSvc: notificationSvc,
		loadingSvc:      loadingSvc,
	}
}

func (nc *NotificationController) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", nc.ListNotifications)
		notifications.DELETE("/:id", nc.DismissNotification)
		notifications.DELETE("", nc.DismissAll)
	}
	r.GET("/loading", nc.GetLoading)
}

// ListNotifications returns the active notifications, oldest first.
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, nc.notificationSvc.Active())
}

// DismissNotification endpoint. Unknown ids are ignored.
func (nc *NotificationController) DismissNotification(c *gin.Context) {
	nc.notificationSvc.Dismiss(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (nc *NotificationController) DismissAll(c *gin.Context) {
	nc.notificationSvc.DismissAll()
	c.Status(http.StatusNoContent)
}

func (nc *NotificationController) GetLoading(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loading": nc.loadingSvc.IsLoading(),
		"keys":    nc.loadingSvc.ActiveKeys(),
	})
}
