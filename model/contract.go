package model

type ContractStatus string

const (
	ContractPending    ContractStatus = "PENDING"
	ContractActive     ContractStatus = "ACTIVE"
	ContractExpired    ContractStatus = "EXPIRED"
	ContractCancelled  ContractStatus = "CANCELLED"
	ContractRenewed    ContractStatus = "RENEWED"
	ContractSuperseded ContractStatus = "SUPERSEDED"
)

type ContractRequest struct {
	FlatID                  int64    `json:"flatId" validate:"required,gt=0"`
	StartDate               string   `json:"startDate" validate:"required"`
	EndDate                 string   `json:"endDate" validate:"required"`
	MonthlyRent             float64  `json:"monthlyRent" validate:"gt=0"`
	DayOfMonth              int      `json:"dayOfMonth" validate:"min=1,max=31"`
	SecurityDeposit         *float64 `json:"securityDeposit,omitempty" validate:"omitempty,gte=0"`
	TenantName              string   `json:"tenantName" validate:"required,max=255"`
	TenantContact           string   `json:"tenantContact,omitempty"`
	TenantEmail             string   `json:"tenantEmail,omitempty" validate:"omitempty,email"`
	Notes                   string   `json:"notes,omitempty"`
	GenerateDuesImmediately bool     `json:"generateDuesImmediately"`
}

type ContractRenewalRequest struct {
	NewEndDate              string   `json:"newEndDate" validate:"required"`
	NewMonthlyRent          *float64 `json:"newMonthlyRent,omitempty" validate:"omitempty,gt=0"`
	NewSecurityDeposit      *float64 `json:"newSecurityDeposit,omitempty" validate:"omitempty,gte=0"`
	KeepSameDayOfMonth      bool     `json:"keepSameDayOfMonth"`
	NewDayOfMonth           *int     `json:"newDayOfMonth,omitempty" validate:"omitempty,min=1,max=31"`
	RenewalNotes            string   `json:"renewalNotes,omitempty"`
	GenerateDuesImmediately bool     `json:"generateDuesImmediately"`
}

type ContractCancellationRequest struct {
	ReasonCategory           string   `json:"reasonCategory" validate:"required"`
	CancellationReason       string   `json:"cancellationReason" validate:"required"`
	EffectiveDate            string   `json:"effectiveDate,omitempty"`
	CancelUnpaidDues         bool     `json:"cancelUnpaidDues"`
	RefundSecurityDeposit    bool     `json:"refundSecurityDeposit"`
	SecurityDepositDeduction *float64 `json:"securityDepositDeduction,omitempty"`
	Notes                    string   `json:"notes,omitempty"`
}

type ContractModificationRequest struct {
	EffectiveDate       string   `json:"effectiveDate" validate:"required"`
	NewMonthlyRent      float64  `json:"newMonthlyRent" validate:"gt=0"`
	Reason              string   `json:"reason" validate:"required"`
	ModificationDetails string   `json:"modificationDetails" validate:"required"`
	KeepOtherTerms      bool     `json:"keepOtherTerms"`
	NewSecurityDeposit  *float64 `json:"newSecurityDeposit,omitempty"`
	NewDayOfMonth       *int     `json:"newDayOfMonth,omitempty" validate:"omitempty,min=1,max=31"`
	Notes               string   `json:"notes,omitempty"`
	EndDate             string   `json:"endDate,omitempty"`
	RegenerateDues      bool     `json:"regenerateDues"`
}

type Contract struct {
	ID                     int64          `json:"id"`
	FlatID                 int64          `json:"flatId"`
	FlatNumber             string         `json:"flatNumber"`
	BuildingID             int64          `json:"buildingId"`
	BuildingName           string         `json:"buildingName"`
	StartDate              string         `json:"startDate"`
	EndDate                string         `json:"endDate"`
	ContractLengthInMonths int            `json:"contractLengthInMonths"`
	MonthlyRent            float64        `json:"monthlyRent"`
	SecurityDeposit        float64        `json:"securityDeposit"`
	DayOfMonth             int            `json:"dayOfMonth"`
	Status                 ContractStatus `json:"status"`
	TenantName             string         `json:"tenantName"`
	TenantContact          string         `json:"tenantContact,omitempty"`
	TenantEmail            string         `json:"tenantEmail,omitempty"`
	Notes                  string         `json:"notes,omitempty"`
	DuesGenerated          bool           `json:"duesGenerated"`
	PreviousContractID     *int64         `json:"previousContractId,omitempty"`
	CreatedAt              string         `json:"createdAt,omitempty"`
	UpdatedAt              string         `json:"updatedAt,omitempty"`
}

type ContractSummary struct {
	ID              int64          `json:"id"`
	FlatID          int64          `json:"flatId"`
	FlatNumber      string         `json:"flatNumber"`
	TenantName      string         `json:"tenantName"`
	StartDate       string         `json:"startDate"`
	EndDate         string         `json:"endDate"`
	MonthlyRent     float64        `json:"monthlyRent"`
	Status          ContractStatus `json:"status"`
	DaysUntilExpiry *int           `json:"daysUntilExpiry,omitempty"`
	HasOverdueDues  bool           `json:"hasOverdueDues"`
}

// ContractStatistics counts a building's contracts by status.
type ContractStatistics struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Expired int64 `json:"expired"`
	Pending int64 `json:"pending"`
}

type ContractExpiryNotification struct {
	ContractID      int64  `json:"contractId"`
	FlatNumber      string `json:"flatNumber"`
	TenantName      string `json:"tenantName"`
	EndDate         string `json:"endDate"`
	DaysUntilExpiry int    `json:"daysUntilExpiry"`
	UrgencyLevel    string `json:"urgencyLevel"`
}

type MonthlyRentTotal struct {
	TotalMonthlyRent float64 `json:"totalMonthlyRent"`
}

// DuePreview is one month of a contract's projected dues.
type DuePreview struct {
	Month   string  `json:"month"`
	DueDate string  `json:"dueDate"`
	Amount  float64 `json:"amount"`
}
