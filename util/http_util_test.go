// console/util/http_util_test.go
package util_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"NoSession", apt_errors.ErrNoSession, http.StatusUnauthorized},
		{"Validation", fmt.Errorf("%w: amount", apt_errors.ErrInvalidPaymentData), http.StatusBadRequest},
		{"Locked", apt_errors.ErrDueGenerationLocked, http.StatusConflict},
		{"BackendNotFound", &apt_errors.APIError{Status: 404}, http.StatusNotFound},
		{"BackendServer", &apt_errors.APIError{Status: 503}, http.StatusServiceUnavailable},
		{"Network", &apt_errors.APIError{Status: 0}, http.StatusBadGateway},
		{"Timeout", &apt_errors.APIError{Status: 0, Err: apt_errors.ErrTimeout}, http.StatusGatewayTimeout},
		{"Unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, util.StatusForError(tc.err))
		})
	}
}
