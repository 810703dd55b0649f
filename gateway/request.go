// console/gateway/request.go
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// SkipLoadingHeader marks a request that must not toggle the loading
// registry, e.g. background polling.
const SkipLoadingHeader = "X-Skip-Loading"

// Request is one logical call through the gateway. Path is relative to the
// configured base URL; URL is filled in by the client before the middleware
// chain runs.
type Request struct {
	Method string
	Path   string
	URL    string
	Query  url.Values
	Header http.Header
	Body   interface{}
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Handler performs a request and returns the final outcome.
type Handler func(ctx context.Context, req *Request) (*Response, error)

// Middleware wraps a Handler. Middlewares run in registration order: the
// first one registered sees the request first and the response last.
type Middleware func(next Handler) Handler

// Chain composes middlewares around h.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// RequestOption customises a single call.
type RequestOption func(*Request)

func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		r.Header.Set(key, value)
	}
}

// WithParams adds query parameters, skipping nil values and empty strings.
func WithParams(params map[string]interface{}) RequestOption {
	return func(r *Request) {
		for k, v := range params {
			switch val := v.(type) {
			case nil:
				continue
			case string:
				if val == "" {
					continue
				}
				r.Query.Add(k, val)
			case []string:
				for _, item := range val {
					r.Query.Add(k, item)
				}
			default:
				r.Query.Add(k, fmt.Sprint(val))
			}
		}
	}
}

func WithQuery(key, value string) RequestOption {
	return func(r *Request) {
		r.Query.Set(key, value)
	}
}

// SkipLoading keeps the call out of the loading registry.
func SkipLoading() RequestOption {
	return WithHeader(SkipLoadingHeader, "true")
}

type backgroundKey struct{}

// Background marks every call made with the returned context as background
// work, as if each carried SkipLoading.
func Background(ctx context.Context) context.Context {
	return context.WithValue(ctx, backgroundKey{}, true)
}

// IsBackground reports whether ctx was produced by Background.
func IsBackground(ctx context.Context) bool {
	v, _ := ctx.Value(backgroundKey{}).(bool)
	return v
}

func newRequest(method, path string, body interface{}, opts []RequestOption) *Request {
	req := &Request{
		Method: method,
		Path:   path,
		Query:  url.Values{},
		Header: http.Header{},
		Body:   body,
	}
	for _, opt := range opts {
		opt(req)
	}
	return req
}

// PathSegments returns the non-empty segments of a URL path, dropping any
// "api" segment.
func PathSegments(rawURL string) []string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	var segments []string
	for _, part := range strings.Split(p, "/") {
		if part == "" || part == "api" {
			continue
		}
		segments = append(segments, part)
	}
	return segments
}

// RouteLabel is a low-cardinality name for the resource a request targets.
func RouteLabel(rawURL string) string {
	segments := PathSegments(rawURL)
	if len(segments) == 0 {
		return "root"
	}
	return segments[0]
}
