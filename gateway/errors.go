// console/gateway/errors.go
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
)

const networkErrorMessage = "Network error: Unable to connect to the server"

// messageFields are probed in order when a body is not the typed envelope.
var messageFields = []string{"message", "error", "detail", "title"}

// normalizeResponse turns a non-2xx response into an APIError. Details keep
// the body as JSON; a non-JSON body is stored as a JSON string.
func normalizeResponse(req *Request, status int, body []byte) *apt_errors.APIError {
	apiErr := &apt_errors.APIError{
		Status: status,
		Method: req.Method,
		URL:    req.URL,
	}

	if len(body) > 0 {
		if gjson.ValidBytes(body) {
			apiErr.Details = json.RawMessage(body)
		} else {
			quoted, _ := json.Marshal(string(body))
			apiErr.Details = quoted
		}
	}

	var envelope model.ErrorResponse
	if len(body) > 0 && json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
		apiErr.Message = envelope.Message
	} else if text := http.StatusText(status); text != "" {
		apiErr.Message = text
	} else {
		apiErr.Message = fmt.Sprintf("Server Error: %d", status)
	}
	return apiErr
}

// normalizeTransportError covers failures with no HTTP response at all.
func normalizeTransportError(req *Request, err error, timeout bool) *apt_errors.APIError {
	apiErr := &apt_errors.APIError{
		Status:  0,
		Message: networkErrorMessage,
		Method:  req.Method,
		URL:     req.URL,
		Err:     err,
	}
	if timeout {
		apiErr.Message = "Request timed out"
		apiErr.Err = fmt.Errorf("%w: %v", apt_errors.ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		apiErr.Message = "Request cancelled"
	}
	return apiErr
}

// ErrorEnvelope decodes the backend's typed error body carried by err.
func ErrorEnvelope(err error) (*model.ErrorResponse, bool) {
	var apiErr *apt_errors.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Details) == 0 {
		return nil, false
	}
	var envelope model.ErrorResponse
	if json.Unmarshal(apiErr.Details, &envelope) != nil {
		return nil, false
	}
	return &envelope, true
}

// ErrorMessage extracts a user-facing message from a failure. Structured
// bodies are probed field by field, falling back to the raw JSON; plain
// string bodies are returned as-is; otherwise the status text is used.
func ErrorMessage(err error) string {
	var apiErr *apt_errors.APIError
	if !errors.As(err, &apiErr) {
		if err == nil {
			return ""
		}
		return err.Error()
	}

	if len(apiErr.Details) > 0 && gjson.ValidBytes(apiErr.Details) {
		parsed := gjson.ParseBytes(apiErr.Details)
		switch {
		case parsed.IsObject():
			for _, field := range messageFields {
				if v := parsed.Get(field); v.Exists() && v.String() != "" {
					return v.String()
				}
			}
			return parsed.Raw
		case parsed.Type == gjson.String && parsed.String() != "":
			return parsed.String()
		}
	}
	return http.StatusText(apiErr.Status)
}
