// console/router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dev-mohitbeniwal/aptmgr/console/controller"
	"github.com/dev-mohitbeniwal/aptmgr/console/db"
	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	"github.com/dev-mohitbeniwal/aptmgr/console/middleware"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

func SetupRouter(
	controllers *controller.Controllers,
	session middleware.SessionReader,
	navigator *util.Navigator,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	router.GET("/health", health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gateway.Registry, promhttp.HandlerOpts{})))

	console := router.Group("/console")
	console.Use(middleware.TrackLocation(navigator))

	// session and feedback routes answer without a session
	controllers.Auth.RegisterRoutes(console)
	controllers.Notification.RegisterRoutes(console)

	protected := console.Group("")
	protected.Use(middleware.RequireSession(session))

	controllers.Building.RegisterRoutes(protected)
	controllers.Contract.RegisterRoutes(protected)
	controllers.Dues.RegisterRoutes(protected)
	controllers.Payment.RegisterRoutes(protected)
	controllers.Dashboard.RegisterRoutes(protected)
	controllers.Polling.RegisterRoutes(protected)

	return router
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"redis":  db.RedisAvailable(),
	})
}
