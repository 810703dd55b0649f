// console/middleware/loading.go
package middleware

import (
	"context"
	"strings"

	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
)

// Backend URLs that never toggle the loading registry.
var loadingExcludedURLs = []string{
	"/api/auth/refresh",
	"/api/health",
	"/api/config",
}

// LoadingTracker is the part of util.LoadingService the interceptor needs.
type LoadingTracker interface {
	StartLoading(key string)
	StopLoading(key string)
}

// Loading marks the request's key as loading for the duration of the call.
// Requests carrying the skip header are passed through with the header
// removed.
func Loading(tracker LoadingTracker) gateway.Middleware {
	return func(next gateway.Handler) gateway.Handler {
		return func(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
			if req.Header.Get(gateway.SkipLoadingHeader) != "" {
				req.Header.Del(gateway.SkipLoadingHeader)
				return next(ctx, req)
			}
			if !showsLoading(req.URL) {
				return next(ctx, req)
			}

			key := LoadingKey(req.Method, req.URL)
			tracker.StartLoading(key)
			defer tracker.StopLoading(key)
			return next(ctx, req)
		}
	}
}

func showsLoading(rawURL string) bool {
	u := strings.ToLower(rawURL)
	for _, excluded := range loadingExcludedURLs {
		if strings.Contains(u, excluded) {
			return false
		}
	}
	return true
}

// LoadingKey is the lower-cased method followed by the first two path
// segments other than "api", e.g. "get-apartment-buildings-1".
func LoadingKey(method, rawURL string) string {
	segments := gateway.PathSegments(rawURL)
	if len(segments) > 2 {
		segments = segments[:2]
	}
	endpoint := strings.Join(segments, "-")
	if endpoint == "" {
		endpoint = "global"
	}
	return strings.ToLower(method) + "-" + endpoint
}
