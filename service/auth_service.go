// console/service/auth_service.go
package service

//go:generate mockgen -source=auth_service.go -destination=../test/service_mock/auth_service_mock.go -package=mock_service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/aptmgr/console/dao"
	"github.com/dev-mohitbeniwal/aptmgr/console/db"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

// PollingStopper is any service that owns background pollers.
type PollingStopper interface {
	StopAllPolling()
}

// IAuthService defines the interface for the backend session
type IAuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.JwtResponse, error)
	Register(ctx context.Context, req model.SignupRequest) (*model.MessageResponse, error)
	Logout(ctx context.Context) util.Redirect
	ClearSession(ctx context.Context)
	Restore(ctx context.Context) error
	Token() string
	CurrentUser() *model.JwtResponse
	IsLoggedIn() bool
	IsTokenExpired() bool
}

// AuthService owns the single backend session of this console. The token is
// kept in memory for the request pipeline and mirrored to the session store.
type AuthService struct {
	authDAO        *dao.AuthDAO
	store          db.SessionStore
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	navigator      *util.Navigator
	eventBus       *util.EventBus
	now            func() time.Time

	mu       sync.RWMutex
	token    string
	user     *model.JwtResponse
	stoppers []PollingStopper
}

var _ IAuthService = &AuthService{}

func NewAuthService(authDAO *dao.AuthDAO, store db.SessionStore, validationUtil *util.ValidationUtil, cacheService *util.CacheService, navigator *util.Navigator, eventBus *util.EventBus) *AuthService {
	return &AuthService{
		authDAO:        authDAO,
		store:          store,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		navigator:      navigator,
		eventBus:       eventBus,
		now:            time.Now,
	}
}

// AddPollingStoppers registers services whose pollers end with the session.
func (s *AuthService) AddPollingStoppers(stoppers ...PollingStopper) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stoppers = append(s.stoppers, stoppers...)
}

// StopAllPolling stops the pollers of every registered service.
func (s *AuthService) StopAllPolling() {
	s.mu.RLock()
	stoppers := append([]PollingStopper(nil), s.stoppers...)
	s.mu.RUnlock()
	for _, st := range stoppers {
		st.StopAllPolling()
	}
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.JwtResponse, error) {
	if err := s.validationUtil.ValidateLogin(req); err != nil {
		return nil, err
	}
	resp, err := s.authDAO.Login(ctx, req)
	if err != nil {
		logger.Warn("Login failed", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	s.token = resp.Token
	s.user = resp
	s.mu.Unlock()

	if err := s.persist(ctx, resp); err != nil {
		logger.Error("Failed to persist session", zap.Error(err), zap.String("username", resp.Username))
		// Continue execution despite the error
	}

	logger.Info("Logged in", zap.String("username", resp.Username), zap.Strings("roles", resp.Roles))
	s.eventBus.Publish(ctx, util.EventSessionStarted, resp.Username)
	return resp, nil
}

func (s *AuthService) Register(ctx context.Context, req model.SignupRequest) (*model.MessageResponse, error) {
	if err := s.validationUtil.ValidateSignup(req); err != nil {
		return nil, err
	}
	return s.authDAO.Register(ctx, req)
}

// Logout ends the session and redirects to the login route.
func (s *AuthService) Logout(ctx context.Context) util.Redirect {
	s.ClearSession(ctx)
	return s.navigator.RedirectToLogin(ctx)
}

// ClearSession drops the token and user, resets every registered cache and
// stops all polling. It does not navigate.
func (s *AuthService) ClearSession(ctx context.Context) {
	s.mu.Lock()
	username := ""
	if s.user != nil {
		username = s.user.Username
	}
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Remove(context.WithoutCancel(ctx), db.TokenKey, db.UserKey); err != nil {
		logger.Error("Failed to remove session from store", zap.Error(err))
		// Continue execution despite the error
	}
	s.cacheService.ClearAll()
	s.StopAllPolling()

	logger.Info("Session cleared", zap.String("username", username))
	s.eventBus.Publish(ctx, util.EventSessionEnded, username)
}

// Restore loads a previously persisted session. An expired token is
// discarded.
func (s *AuthService) Restore(ctx context.Context) error {
	token, ok, err := s.store.Get(ctx, db.TokenKey)
	if err != nil {
		return fmt.Errorf("failed to read session token: %w", err)
	}
	if !ok || token == "" {
		return nil
	}

	var user *model.JwtResponse
	if raw, ok, err := s.store.Get(ctx, db.UserKey); err != nil {
		return fmt.Errorf("failed to read session user: %w", err)
	} else if ok {
		user = &model.JwtResponse{}
		if err := json.Unmarshal([]byte(raw), user); err != nil {
			logger.Warn("Stored session user is unreadable", zap.Error(err))
			user = nil
		}
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	if s.IsTokenExpired() {
		logger.Info("Stored session has expired")
		s.ClearSession(ctx)
		return nil
	}
	logger.Info("Session restored")
	return nil
}

func (s *AuthService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *AuthService) CurrentUser() *model.JwtResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsLoggedIn is true when a token is held and it has not expired.
func (s *AuthService) IsLoggedIn() bool {
	return s.Token() != "" && !s.IsTokenExpired()
}

// IsTokenExpired reads the exp claim without verifying the signature; the
// backend remains the authority. Tokens without exp never expire here.
func (s *AuthService) IsTokenExpired() bool {
	token := s.Token()
	if token == "" {
		return true
	}
	claims := &jwt.StandardClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		// opaque tokens are left to the backend
		return false
	}
	if claims.ExpiresAt == 0 {
		return false
	}
	return s.now().Unix() >= claims.ExpiresAt
}

func (s *AuthService) persist(ctx context.Context, resp *model.JwtResponse) error {
	userJSON, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}
	if err := s.store.Set(ctx, db.TokenKey, resp.Token); err != nil {
		return err
	}
	return s.store.Set(ctx, db.UserKey, string(userJSON))
}
