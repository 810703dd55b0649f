// console/errors/domain_errors.go
package errors

import "errors"

var (
	ErrNoSession          = errors.New("no active session")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidCredentials = errors.New("invalid login data")
	ErrInvalidSignupData  = errors.New("invalid signup data")

	ErrInvalidBuildingID = errors.New("invalid building id")
	ErrInvalidFlatID     = errors.New("invalid flat id")
	ErrInvalidContractID = errors.New("invalid contract id")

	ErrInvalidDueData        = errors.New("invalid monthly due data")
	ErrDueGenerationLocked   = errors.New("monthly due generation already running for this building and month")
	ErrInvalidPaymentData    = errors.New("invalid payment data")
	ErrInvalidExpenseData    = errors.New("invalid expense data")
	ErrInvalidContractData   = errors.New("invalid contract data")
	ErrInvalidDateRange      = errors.New("invalid date range")
	ErrInvalidPagination     = errors.New("invalid pagination parameters")
	ErrSessionStoreOperation = errors.New("session store operation failed")
)
