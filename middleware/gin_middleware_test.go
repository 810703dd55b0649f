// console/middleware/gin_middleware_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dev-mohitbeniwal/aptmgr/console/middleware"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
)

type staticSession struct {
	user *model.JwtResponse
}

func (s staticSession) IsLoggedIn() bool                { return s.user != nil }
func (s staticSession) CurrentUser() *model.JwtResponse { return s.user }

func serve(r *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_InProcess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimiter(2, time.Hour))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, "GET", "/ping"))
	assert.Equal(t, http.StatusOK, serve(r, "GET", "/ping"))
	assert.Equal(t, http.StatusTooManyRequests, serve(r, "GET", "/ping"))
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("requestingUser"))
	}

	t.Run("NoSession", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", middleware.RequireSession(staticSession{}), handler)
		assert.Equal(t, http.StatusUnauthorized, serve(r, "GET", "/x"))
	})

	t.Run("MissingRole", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", middleware.RequireSession(staticSession{user: &model.JwtResponse{Username: "u", Roles: []string{"ROLE_USER"}}}, "ROLE_ADMIN"), handler)
		assert.Equal(t, http.StatusForbidden, serve(r, "GET", "/x"))
	})

	t.Run("Allowed", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", middleware.RequireSession(staticSession{user: &model.JwtResponse{Username: "admin", Roles: []string{"ROLE_ADMIN"}}}, "ROLE_ADMIN"), handler)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/x", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", w.Body.String())
	})
}
