// console/gateway/retry.go
package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
)

// RetryPolicy retries a bounded number of times with a fixed delay.
// Mutating verbs never retry the statuses in NonRetryable.
type RetryPolicy struct {
	MaxRetries   int
	Delay        time.Duration
	NonRetryable map[int]bool
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 2,
		Delay:      time.Second,
		NonRetryable: map[int]bool{
			http.StatusBadRequest:   true,
			http.StatusUnauthorized: true,
			http.StatusForbidden:    true,
			http.StatusNotFound:     true,
			http.StatusConflict:     true,
		},
	}
}

// ShouldRetry reports whether attempt number `attempt` (1-based) that failed
// with err may be followed by another one.
func (p RetryPolicy) ShouldRetry(ctx context.Context, method string, attempt int, err error) bool {
	if attempt > p.MaxRetries {
		return false
	}
	if ctx.Err() != nil {
		return false
	}
	var apiErr *apt_errors.APIError
	if !errors.As(err, &apiErr) {
		// encoding and request-building failures are not transient
		return false
	}
	if errors.Is(apiErr.Err, context.Canceled) {
		return false
	}
	if method == http.MethodGet {
		return true
	}
	return !p.NonRetryable[apiErr.Status]
}

// Wait sleeps for the retry delay or until ctx is done.
func (p RetryPolicy) Wait(ctx context.Context) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
