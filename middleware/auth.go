// console/middleware/auth.go
package middleware

import (
	"context"
	"errors"

	"go.uber.org/zap"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

// Session is what the auth interceptor needs from the auth service.
type Session interface {
	Token() string
	ClearSession(ctx context.Context)
}

type LoginRedirector interface {
	RedirectToLogin(ctx context.Context) util.Redirect
}

// Auth attaches the session's bearer token. A 401 from the backend ends the
// session and redirects to login, keeping the current location as returnUrl.
func Auth(session Session, navigator LoginRedirector) gateway.Middleware {
	return func(next gateway.Handler) gateway.Handler {
		return func(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
			if token := session.Token(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}

			resp, err := next(ctx, req)
			if err != nil && errors.Is(err, apt_errors.ErrUnauthorized) {
				logger.Warn("Backend rejected credentials, ending session",
					zap.String("method", req.Method),
					zap.String("url", req.URL))
				session.ClearSession(ctx)
				navigator.RedirectToLogin(ctx)
			}
			return resp, err
		}
	}
}
