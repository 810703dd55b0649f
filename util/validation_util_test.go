// console/util/validation_util_test.go
package util_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

func TestValidationUtil(t *testing.T) {
	v := util.NewValidationUtil()

	t.Run("Login", func(t *testing.T) {
		assert.NoError(t, v.ValidateLogin(model.LoginRequest{Username: "admin", Password: "secret"}))

		err := v.ValidateLogin(model.LoginRequest{Username: "admin"})
		assert.True(t, errors.Is(err, apt_errors.ErrInvalidCredentials))
		assert.Contains(t, err.Error(), "password is required")
	})

	t.Run("MonthlyDue_NeedsTarget", func(t *testing.T) {
		err := v.ValidateMonthlyDue(model.MonthlyDueRequest{DueAmount: 1000, DueDate: "2024-02-01T00:00:00"})
		assert.True(t, errors.Is(err, apt_errors.ErrInvalidDueData))

		building := int64(3)
		assert.NoError(t, v.ValidateMonthlyDue(model.MonthlyDueRequest{
			BuildingID: &building, DueAmount: 1000, DueDate: "2024-02-01T00:00:00",
		}))
	})

	t.Run("Payment_Method", func(t *testing.T) {
		req := model.PaymentRequest{FlatID: 1, Amount: 50, PaymentDate: "2024-02-03", PaymentMethod: "BARTER"}
		err := v.ValidatePayment(req)
		assert.True(t, errors.Is(err, apt_errors.ErrInvalidPaymentData))
		assert.Contains(t, err.Error(), "paymentMethod must be one of")
	})

	t.Run("ID", func(t *testing.T) {
		assert.NoError(t, v.ValidateID(1, apt_errors.ErrInvalidFlatID))
		assert.True(t, errors.Is(v.ValidateID(0, apt_errors.ErrInvalidFlatID), apt_errors.ErrInvalidFlatID))
	})
}
