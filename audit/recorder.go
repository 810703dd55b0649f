// console/audit/recorder.go
package audit

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
)

// Recorder is a gateway middleware that records every mutating call and every
// failed call. username reports the user the call was made for.
func Recorder(svc Service, username func() string) gateway.Middleware {
	return func(next gateway.Handler) gateway.Handler {
		return func(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
			resp, err := next(ctx, req)
			if req.Method == http.MethodGet && err == nil {
				return resp, err
			}

			activity := newActivity(req, resp, err)
			if username != nil {
				activity.Username = username()
			}
			if logErr := svc.LogActivity(context.WithoutCancel(ctx), activity); logErr != nil {
				logger.Error("Failed to record activity",
					zap.Error(logErr),
					zap.String("action", activity.Action),
					zap.String("path", activity.Path))
				// Continue execution despite the error
			}
			return resp, err
		}
	}
}

func newActivity(req *gateway.Request, resp *gateway.Response, err error) Activity {
	segments := gateway.PathSegments(req.URL)
	activity := Activity{
		Timestamp:     time.Now().UTC(),
		Action:        actionFor(req.Method, segments),
		ResourceType:  gateway.RouteLabel(req.URL),
		Method:        req.Method,
		Path:          req.Path,
		Success:       err == nil,
		CorrelationID: req.Header.Get(gateway.CorrelationIDHeader),
	}
	for _, s := range segments[min(1, len(segments)):] {
		if _, convErr := strconv.ParseInt(s, 10, 64); convErr == nil {
			activity.ResourceID = s
			break
		}
	}
	if err != nil {
		activity.Status = apt_errors.StatusOf(err)
		var apiErr *apt_errors.APIError
		if errors.As(err, &apiErr) {
			activity.Details = apiErr.Details
		}
	} else if resp != nil {
		activity.Status = resp.Status
	}
	return activity
}

// actionFor names the call, e.g. "post-monthly-dues-generate".
func actionFor(method string, segments []string) string {
	var named []string
	for _, s := range segments {
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			continue
		}
		named = append(named, s)
	}
	return strings.ToLower(method) + "-" + strings.Join(named, "-")
}
