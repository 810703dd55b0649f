// console/service/auth_service_test.go
package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/aptmgr/console/db"
	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   "manager",
		ExpiresAt: expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()

	t.Run("Login_BearerThen401_ClearsSession", func(t *testing.T) {
		env := newTestEnv(t)
		token := signedToken(t, time.Now().Add(time.Hour))
		env.backend.handle("POST /api/auth/login", http.StatusOK, model.JwtResponse{
			Token: token, Type: "Bearer", ID: 7, Username: "manager", Roles: []string{"ROLE_MANAGER"},
		})
		env.backend.handle(listBuildings, http.StatusOK, []model.ApartmentBuilding{{ID: 1, Name: "Maple Court"}})
		env.backend.handle("GET /api/apartment-buildings/{id}/flats", http.StatusUnauthorized, model.ErrorResponse{Status: 401, Message: "Token expired"})

		resp, err := env.services.Auth.Login(ctx, model.LoginRequest{Username: "manager", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, token, resp.Token)
		assert.True(t, env.services.Auth.IsLoggedIn())

		stored, ok, err := env.store.Get(ctx, db.TokenKey)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, token, stored)

		_, err = env.services.Building.ListBuildings(ctx, service.FetchOptions{})
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+token, env.backend.lastRequest(listBuildings).Header.Get("Authorization"))

		env.navigator.SetLocation("/dashboard/buildings/1")
		_, err = env.services.Flat.ListFlats(ctx, 1, service.FetchOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, apt_errors.ErrUnauthorized)

		assert.Empty(t, env.services.Auth.Token())
		assert.False(t, env.services.Auth.IsLoggedIn())
		_, ok, err = env.store.Get(ctx, db.TokenKey)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, env.titles(model.NotificationWarning), "Session Expired")

		redirect, ok := env.navigator.TakeRedirect()
		require.True(t, ok)
		assert.Equal(t, "/auth/login", redirect.Path)
		assert.Equal(t, "/dashboard/buildings/1", redirect.ReturnURL)

		// caches were reset with the session
		_, err = env.services.Building.ListBuildings(ctx, service.FetchOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2, env.backend.count(listBuildings))
		assert.Empty(t, env.backend.lastRequest(listBuildings).Header.Get("Authorization"))
	})

	t.Run("Login_FailureKeepsBackendMessage", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handle("POST /api/auth/login", http.StatusUnauthorized, model.ErrorResponse{Status: 401, Message: "Bad credentials"})

		_, err := env.services.Auth.Login(ctx, model.LoginRequest{Username: "manager", Password: "wrong"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Bad credentials")
		assert.False(t, env.services.Auth.IsLoggedIn())
		// a failed login is not an expired session
		assert.Empty(t, env.titles(model.NotificationWarning))
	})

	t.Run("Login_ValidationError_NoRequest", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.services.Auth.Login(ctx, model.LoginRequest{Username: "manager"})

		assert.ErrorIs(t, err, apt_errors.ErrInvalidCredentials)
		assert.Equal(t, 0, env.backend.count("POST /api/auth/login"))
	})

	t.Run("Logout_RedirectsAndClears", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handle("POST /api/auth/login", http.StatusOK, model.JwtResponse{Token: "opaque", Username: "manager"})

		_, err := env.services.Auth.Login(ctx, model.LoginRequest{Username: "manager", Password: "secret"})
		require.NoError(t, err)

		env.navigator.SetLocation("/dashboard")
		redirect := env.services.Auth.Logout(ctx)

		assert.Equal(t, "/auth/login?returnUrl=%2Fdashboard", redirect.Destination)
		assert.Empty(t, env.services.Auth.Token())
		assert.Nil(t, env.services.Auth.CurrentUser())
	})

	t.Run("Register_ReturnsMessage", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.handle("POST /api/auth/register", http.StatusOK, model.MessageResponse{Message: "User registered successfully!"})

		resp, err := env.services.Auth.Register(ctx, model.SignupRequest{Username: "tenant1", Email: "t@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "User registered successfully!", resp.Message)
	})

	t.Run("Restore_DiscardsExpiredToken", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.store.Set(ctx, db.TokenKey, signedToken(t, time.Now().Add(-time.Minute))))
		require.NoError(t, env.store.Set(ctx, db.UserKey, `{"username":"manager"}`))

		require.NoError(t, env.services.Auth.Restore(ctx))

		assert.False(t, env.services.Auth.IsLoggedIn())
		_, ok, _ := env.store.Get(ctx, db.TokenKey)
		assert.False(t, ok)
	})

	t.Run("Restore_ValidToken", func(t *testing.T) {
		env := newTestEnv(t)
		token := signedToken(t, time.Now().Add(time.Hour))
		require.NoError(t, env.store.Set(ctx, db.TokenKey, token))
		require.NoError(t, env.store.Set(ctx, db.UserKey, `{"username":"manager","roles":["ROLE_MANAGER"]}`))

		require.NoError(t, env.services.Auth.Restore(ctx))

		assert.True(t, env.services.Auth.IsLoggedIn())
		require.NotNil(t, env.services.Auth.CurrentUser())
		assert.True(t, env.services.Auth.CurrentUser().HasRole("ROLE_MANAGER"))
	})

	t.Run("IsTokenExpired_OpaqueToken", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.store.Set(ctx, db.TokenKey, "not-a-jwt"))
		require.NoError(t, env.services.Auth.Restore(ctx))

		assert.False(t, env.services.Auth.IsTokenExpired())
		assert.True(t, env.services.Auth.IsLoggedIn())
	})
}
