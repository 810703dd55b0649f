// console/controller/auth_controller_test.go
package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/aptmgr/console/controller"
	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	mock_service "github.com/dev-mohitbeniwal/aptmgr/console/test/service_mock"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

func TestAuthController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mock_service.NewMockIAuthService(ctrl)
	navigator := util.NewNavigator(nil)
	authController := controller.NewAuthController(mockAuthService, navigator)
	router, api := setupRouter()
	authController.RegisterRoutes(api)

	t.Run("Login_Success", func(t *testing.T) {
		mockAuthService.EXPECT().
			Login(gomock.Any(), model.LoginRequest{Username: "admin", Password: "secret"}).
			Return(&model.JwtResponse{Token: "jwt-token", ID: 1, Username: "admin", Roles: []string{"ROLE_ADMIN"}}, nil)

		w := perform(router, "POST", "/console/auth/login", `{"username":"admin","password":"secret"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "jwt-token")
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["loggedIn"])
		assert.Equal(t, "admin", body["user"].(map[string]interface{})["username"])
	})

	t.Run("Login_Failure_BadCredentials", func(t *testing.T) {
		mockAuthService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, &apt_errors.APIError{Status: http.StatusUnauthorized, Message: "Bad credentials"})

		w := perform(router, "POST", "/console/auth/login", `{"username":"admin","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Bad credentials")
	})

	t.Run("Login_Failure_InvalidBody", func(t *testing.T) {
		w := perform(router, "POST", "/console/auth/login", `{"username":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Logout", func(t *testing.T) {
		mockAuthService.EXPECT().
			Logout(gomock.Any()).
			Return(util.Redirect{Path: util.LoginRoute, Destination: util.LoginRoute})

		w := perform(router, "POST", "/console/auth/logout", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"destination":"/auth/login"`)
	})

	t.Run("GetSession_PendingRedirect", func(t *testing.T) {
		navigator.SetLocation("/buildings/3")
		navigator.RedirectToLogin(context.Background())

		mockAuthService.EXPECT().IsLoggedIn().Return(false).Times(2)
		mockAuthService.EXPECT().IsTokenExpired().Return(false).Times(2)
		mockAuthService.EXPECT().CurrentUser().Return(nil).Times(2)

		w := perform(router, "GET", "/console/auth/session", "")
		assert.Equal(t, http.StatusOK, w.Code)
		var view map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, false, view["loggedIn"])
		redirect := view["redirect"].(map[string]interface{})
		assert.Equal(t, "/auth/login?returnUrl=%2Fbuildings%2F3", redirect["destination"])

		// the redirect is handed out once
		w = perform(router, "GET", "/console/auth/session", "")
		assert.NotContains(t, w.Body.String(), "redirect")
	})
}
