// console/gateway/client.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dev-mohitbeniwal/aptmgr/console/config"
	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	maxResponseBody     = 10 << 20
)

// Config holds the backend connection settings.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	// RateLimit is the outbound request rate per second; 0 disables throttling.
	RateLimit float64
	RateBurst int
}

// ConfigFromViper reads the api.* keys.
func ConfigFromViper() Config {
	return Config{
		BaseURL:    config.GetString("api.baseURL"),
		Timeout:    config.GetDuration("api.timeout"),
		Retries:    config.GetInt("api.retries"),
		RetryDelay: config.GetDuration("api.retryDelay"),
		RateLimit:  config.GetFloat64("api.rateLimit"),
		RateBurst:  config.GetInt("api.rateBurst"),
	}
}

// Client is the single entry point to the backend REST API. It is safe for
// concurrent use and keeps no per-call state.
type Client struct {
	baseURL    string
	timeout    time.Duration
	retry      RetryPolicy
	httpClient *http.Client
	limiter    *rate.Limiter

	mu          sync.RWMutex
	middlewares []Middleware
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithMiddleware(mws ...Middleware) Option {
	return func(c *Client) {
		c.middlewares = append(c.middlewares, mws...)
	}
}

func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	policy := DefaultRetryPolicy()
	policy.MaxRetries = max(cfg.Retries, 0)
	policy.Delay = max(cfg.RetryDelay, 0)

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		retry:      policy,
		httpClient: &http.Client{},
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Use appends middlewares to the chain. The order of Use calls is the order
// in which the middlewares see each request.
func (c *Client) Use(mws ...Middleware) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.middlewares = append(c.middlewares, mws...)
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do runs req through the middleware chain and the retrying transport.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	req.URL = c.baseURL + req.Path
	if len(req.Query) > 0 {
		req.URL += "?" + req.Query.Encode()
	}
	if req.Header.Get(CorrelationIDHeader) == "" {
		req.Header.Set(CorrelationIDHeader, uuid.New().String())
	}

	c.mu.RLock()
	mws := make([]Middleware, len(c.middlewares))
	copy(mws, c.middlewares)
	c.mu.RUnlock()

	return Chain(c.send, mws...)(ctx, req)
}

func (c *Client) Get(ctx context.Context, path string, out interface{}, opts ...RequestOption) error {
	return c.call(ctx, http.MethodGet, path, nil, out, opts)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}, opts ...RequestOption) error {
	return c.call(ctx, http.MethodPost, path, body, out, opts)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}, opts ...RequestOption) error {
	return c.call(ctx, http.MethodPut, path, body, out, opts)
}

func (c *Client) Patch(ctx context.Context, path string, body, out interface{}, opts ...RequestOption) error {
	return c.call(ctx, http.MethodPatch, path, body, out, opts)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}, opts ...RequestOption) error {
	return c.call(ctx, http.MethodDelete, path, nil, out, opts)
}

func (c *Client) call(ctx context.Context, method, path string, body, out interface{}, opts []RequestOption) error {
	req := newRequest(method, path, body, opts)
	if IsBackground(ctx) {
		SkipLoading()(req)
	}
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s %s: %w", method, path, err)
	}
	return nil
}

// send is the innermost handler: it owns the retry loop, so middlewares see
// one logical request and its final outcome.
func (c *Client) send(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	for attempt := 1; ; attempt++ {
		resp, err := c.attempt(ctx, req)
		observeAttempt(req, err)
		if err == nil {
			observeRequest(req, resp.Status, start)
			return resp, nil
		}

		if !c.retry.ShouldRetry(ctx, req.Method, attempt, err) {
			observeRequest(req, apt_errors.StatusOf(err), start)
			return nil, err
		}

		logger.Debug("Retrying backend request",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if waitErr := c.retry.Wait(ctx); waitErr != nil {
			observeRequest(req, apt_errors.StatusOf(err), start)
			return nil, err
		}
	}
}

func (c *Client) attempt(ctx context.Context, req *Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, normalizeTransportError(req, err, false)
		}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body for %s %s: %w", req.Method, req.Path, err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s %s: %w", req.Method, req.Path, err)
	}
	for k, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		timedOut := ctx.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded)
		return nil, normalizeTransportError(req, err, timedOut)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBody))
	if err != nil {
		return nil, normalizeTransportError(req, err, false)
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return nil, normalizeResponse(req, httpResp.StatusCode, respBody)
	}

	return &Response{
		Status: httpResp.StatusCode,
		Header: httpResp.Header,
		Body:   respBody,
	}, nil
}
