// console/router/router_test.go
package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/aptmgr/console/controller"
	"github.com/dev-mohitbeniwal/aptmgr/console/middleware"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/router"
	mock_service "github.com/dev-mohitbeniwal/aptmgr/console/test/service_mock"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

type routerMocks struct {
	auth      *mock_service.MockIAuthService
	buildings *mock_service.MockIBuildingService
}

func setupRouter(t *testing.T) (*gin.Engine, routerMocks, *util.Navigator) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	mocks := routerMocks{
		auth:      mock_service.NewMockIAuthService(ctrl),
		buildings: mock_service.NewMockIBuildingService(ctrl),
	}
	navigator := util.NewNavigator(nil)
	controllers := &controller.Controllers{
		Auth:         controller.NewAuthController(mocks.auth, navigator),
		Notification: controller.NewNotificationController(util.NewNotificationService(), util.NewLoadingService()),
		Building:     controller.NewBuildingController(mocks.buildings, mock_service.NewMockIFlatService(ctrl)),
		Contract:     controller.NewContractController(mock_service.NewMockIContractService(ctrl)),
		Dues:         controller.NewDuesController(mock_service.NewMockIMonthlyDueService(ctrl)),
		Payment:      controller.NewPaymentController(mock_service.NewMockIPaymentService(ctrl)),
		Dashboard:    controller.NewDashboardController(mock_service.NewMockIDashboardService(ctrl)),
		Polling:      controller.NewPollingController(),
	}
	return router.SetupRouter(controllers, mocks.auth, navigator, 100, time.Minute), mocks, navigator
}

func get(r *gin.Engine, path string, header ...string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRouter(t *testing.T) {
	t.Run("Health", func(t *testing.T) {
		r, _, _ := setupRouter(t)

		w := get(r, "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("Metrics", func(t *testing.T) {
		r, _, _ := setupRouter(t)

		w := get(r, "/metrics")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ProtectedRoute_NoSession", func(t *testing.T) {
		r, mocks, _ := setupRouter(t)
		mocks.auth.EXPECT().IsLoggedIn().Return(false)

		w := get(r, "/console/buildings")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ProtectedRoute_WithSession", func(t *testing.T) {
		r, mocks, _ := setupRouter(t)
		mocks.auth.EXPECT().IsLoggedIn().Return(true)
		mocks.auth.EXPECT().CurrentUser().Return(&model.JwtResponse{ID: 1, Username: "admin"})
		mocks.buildings.EXPECT().ListBuildings(gomock.Any(), gomock.Any()).Return([]model.ApartmentBuilding{}, nil)

		w := get(r, "/console/buildings")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NotificationsWithoutSession", func(t *testing.T) {
		r, _, _ := setupRouter(t)

		w := get(r, "/console/notifications")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("TracksLocation", func(t *testing.T) {
		r, _, navigator := setupRouter(t)

		get(r, "/console/loading", middleware.LocationHeader, "/buildings/3/contracts")

		assert.Equal(t, "/buildings/3/contracts", navigator.Location())
	})
}
