// console/middleware/http_error.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
)

// Notifier is the part of util.NotificationService used for error toasts.
type Notifier interface {
	Error(title, message string) string
	Warning(title, message string) string
}

// HTTPError turns a failed backend call into a user notification and returns
// the original error unchanged.
func HTTPError(notifier Notifier) gateway.Middleware {
	return func(next gateway.Handler) gateway.Handler {
		return func(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
			resp, err := next(ctx, req)
			if err != nil {
				notifyFailure(notifier, req, err)
			}
			return resp, err
		}
	}
}

func notifyFailure(notifier Notifier, req *gateway.Request, err error) {
	var apiErr *apt_errors.APIError
	if !errors.As(err, &apiErr) {
		return
	}
	// the caller gave up; nothing to tell the user
	if errors.Is(err, context.Canceled) {
		return
	}

	status := apiErr.Status
	switch {
	case status == http.StatusUnauthorized:
		if !strings.Contains(req.URL, "/auth/login") {
			notifier.Warning("Session Expired", "Please log in again to continue.")
		}
	case status == http.StatusForbidden:
		notifier.Error("Access Denied", "You do not have permission to perform this action.")
	case status == http.StatusNotFound:
		notifier.Warning("Not Found", messageOr(err, "The requested resource was not found."))
	case status == http.StatusConflict:
		notifier.Error("Conflict", messageOr(err, "A conflict occurred with the current state."))
	case status >= http.StatusInternalServerError:
		notifier.Error("Server Error", messageOr(err, "An unexpected server error occurred.")+" Please try again later.")
	case status == 0:
		notifier.Error("Network Error", "Unable to connect to the server. Please check your internet connection.")
	case status == http.StatusBadRequest:
		// left to the form that sent it
	default:
		notifier.Error("Error", messageOr(err, "An unexpected error occurred."))
	}
}

func messageOr(err error, fallback string) string {
	if msg := gateway.ErrorMessage(err); msg != "" {
		return msg
	}
	return fallback
}
