// console/util/validation_util.go

package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &ValidationUtil{validate: v}
}

func (v *ValidationUtil) ValidateLogin(req model.LoginRequest) error {
	return v.check(req, apt_errors.ErrInvalidCredentials)
}

func (v *ValidationUtil) ValidateSignup(req model.SignupRequest) error {
	return v.check(req, apt_errors.ErrInvalidSignupData)
}

func (v *ValidationUtil) ValidateMonthlyDue(req model.MonthlyDueRequest) error {
	return v.check(req, apt_errors.ErrInvalidDueData)
}

func (v *ValidationUtil) ValidatePayment(req model.PaymentRequest) error {
	return v.check(req, apt_errors.ErrInvalidPaymentData)
}

func (v *ValidationUtil) ValidateExpense(req model.ExpenseRequest) error {
	return v.check(req, apt_errors.ErrInvalidExpenseData)
}

func (v *ValidationUtil) ValidateContract(req model.ContractRequest) error {
	return v.check(req, apt_errors.ErrInvalidContractData)
}

// ValidateID rejects non-positive resource ids.
func (v *ValidationUtil) ValidateID(id int64, sentinel error) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", sentinel, id)
	}
	return nil
}

func (v *ValidationUtil) check(s interface{}, sentinel error) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", sentinel, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without", "required_unless":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
