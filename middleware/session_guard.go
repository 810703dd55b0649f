// console/middleware/session_guard.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

// SessionReader exposes the logged-in user to console handlers.
type SessionReader interface {
	IsLoggedIn() bool
	CurrentUser() *model.JwtResponse
}

// RequireSession rejects console requests while no valid backend session
// exists. When roles are given the user must hold at least one of them.
func RequireSession(session SessionReader, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLoggedIn() {
			logger.Warn("Console request without a session", zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		user := session.CurrentUser()
		if len(roles) > 0 && !hasAnyRole(user, roles) {
			logger.Warn("User does not have the required roles",
				zap.String("path", c.Request.URL.Path),
				zap.Strings("required", roles))
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}

		if user != nil {
			c.Set("requestingUserID", user.ID)
			c.Set("requestingUser", user.Username)
		}
		c.Next()
	}
}

func hasAnyRole(user *model.JwtResponse, roles []string) bool {
	if user == nil {
		return false
	}
	for _, role := range roles {
		if user.HasRole(role) {
			return true
		}
	}
	return false
}

// LocationHeader carries the front end's current route. It becomes the
// returnUrl of a later login redirect.
const LocationHeader = "X-Console-Location"

// TrackLocation records the route the front end reports on every request.
func TrackLocation(navigator *util.Navigator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if location := c.GetHeader(LocationHeader); location != "" {
			navigator.SetLocation(location)
		}
		c.Next()
	}
}
