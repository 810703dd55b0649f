// console/util/http_util.go
package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// RespondWithServiceError picks the HTTP status from err. Backend failures
// keep their status; a network failure becomes 502 Bad Gateway.
func RespondWithServiceError(c *gin.Context, message string, err error) {
	code := StatusForError(err)
	body := gin.H{"error": message}
	var apiErr *apt_errors.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		body["details"] = apiErr.Message
	}
	logger.Error(message,
		zap.Error(err),
		zap.Int("status", code),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, body)
}

func StatusForError(err error) int {
	switch {
	case errors.Is(err, apt_errors.ErrNoSession), errors.Is(err, apt_errors.ErrSessionExpired),
		errors.Is(err, apt_errors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apt_errors.ErrInvalidCredentials), errors.Is(err, apt_errors.ErrInvalidSignupData),
		errors.Is(err, apt_errors.ErrInvalidBuildingID), errors.Is(err, apt_errors.ErrInvalidFlatID),
		errors.Is(err, apt_errors.ErrInvalidContractID), errors.Is(err, apt_errors.ErrInvalidDueData),
		errors.Is(err, apt_errors.ErrInvalidPaymentData), errors.Is(err, apt_errors.ErrInvalidExpenseData),
		errors.Is(err, apt_errors.ErrInvalidContractData), errors.Is(err, apt_errors.ErrInvalidDateRange),
		errors.Is(err, apt_errors.ErrInvalidPagination), errors.Is(err, apt_errors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apt_errors.ErrDueGenerationLocked), errors.Is(err, apt_errors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apt_errors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apt_errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apt_errors.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, apt_errors.ErrNetwork):
		return http.StatusBadGateway
	}
	if status := apt_errors.StatusOf(err); status >= 400 {
		return status
	}
	return http.StatusInternalServerError
}
