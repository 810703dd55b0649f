// console/errors/api_error.go
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is the normalised shape of every terminal gateway failure.
// Status is 0 for transport failures and timeouts.
type APIError struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`

	Method string `json:"-"`
	URL    string `json:"-"`
	Err    error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Status, e.Message)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is lets callers match on the sentinel for the status class,
// e.g. errors.Is(err, ErrNotFound).
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.Status == http.StatusBadRequest
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrConflict:
		return e.Status == http.StatusConflict
	case ErrServer:
		return e.Status >= http.StatusInternalServerError
	case ErrNetwork:
		return e.Status == 0
	}
	return false
}

// StatusOf returns the HTTP status carried by err, or -1 when err is not an APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return -1
}
