// console/controller/auth_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

type AuthController struct {
	authService service.IAuthService
	navigator   *util.Navigator
}

func NewAuthController(authService service.IAuthService, navigator *util.Navigator) *AuthController {
	return &AuthController{
		authService: authService,
		navigator:   navigator,
	}
}

type sessionView struct {
	LoggedIn     bool           `json:"loggedIn"`
	TokenExpired bool           `json:"tokenExpired"`
	User         *userView      `json:"user,omitempty"`
	Redirect     *util.Redirect `json:"redirect,omitempty"`
}

type userView struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

func newUserView(user *model.JwtResponse) *userView {
	if user == nil {
		return nil
	}
	return &userView{ID: user.ID, Username: user.Username, Email: user.Email, Roles: user.Roles}
}

// RegisterRoutes registers the session routes. They stay reachable without
// a session.
func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", ac.Login)
		auth.POST("/logout", ac.Logout)
		auth.GET("/session", ac.GetSession)
	}
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid login data", apt_errors.ErrInvalidCredentials)
		return
	}

	user, err := ac.authService.Login(c.Request.Context(), req)
	if err != nil {
		util.RespondWithServiceError(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, sessionView{LoggedIn: true, User: newUserView(user)})
}

// Logout endpoint
func (ac *AuthController) Logout(c *gin.Context) {
	redirect := ac.authService.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"redirect": redirect})
}

// GetSession reports the session state and hands out a pending redirect,
// such as the one left behind by an expired token.
func (ac *AuthController) GetSession(c *gin.Context) {
	view := sessionView{
		LoggedIn:     ac.authService.IsLoggedIn(),
		TokenExpired: ac.authService.IsTokenExpired(),
		User:         newUserView(ac.authService.CurrentUser()),
	}
	if redirect, ok := ac.navigator.TakeRedirect(); ok {
		view.Redirect = &redirect
	}
	c.JSON(http.StatusOK, view)
}
