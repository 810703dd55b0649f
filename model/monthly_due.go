package model

type DueStatus string

const (
	DueUnpaid        DueStatus = "UNPAID"
	DuePaid          DueStatus = "PAID"
	DuePartiallyPaid DueStatus = "PARTIALLY_PAID"
	DueOverdue       DueStatus = "OVERDUE"
	DueWaived        DueStatus = "WAIVED"
	DueCancelled     DueStatus = "CANCELLED"
)

type DueFlatSummary struct {
	ID            int64  `json:"id"`
	FlatNumber    string `json:"flatNumber"`
	TenantName    string `json:"tenantName,omitempty"`
	TenantContact string `json:"tenantContact,omitempty"`
}

type MonthlyDue struct {
	ID                           int64          `json:"id"`
	Flat                         DueFlatSummary `json:"flat"`
	DueAmount                    float64        `json:"dueAmount"`
	DueDate                      string         `json:"dueDate"`
	Status                       DueStatus      `json:"status"`
	DueDescription               string         `json:"dueDescription,omitempty"`
	PaidAmount                   *float64       `json:"paidAmount,omitempty"`
	PaymentDate                  string         `json:"paymentDate,omitempty"`
	BaseRent                     *float64       `json:"baseRent,omitempty"`
	AdditionalCharges            *float64       `json:"additionalCharges,omitempty"`
	AdditionalChargesDescription string         `json:"additionalChargesDescription,omitempty"`
	IsOverdue                    bool           `json:"isOverdue"`
	CreatedAt                    string         `json:"createdAt,omitempty"`
	UpdatedAt                    string         `json:"updatedAt,omitempty"`
}

// MonthlyDueRequest creates a single due (FlatID) or generates dues for
// every active flat of a building (BuildingID).
type MonthlyDueRequest struct {
	FlatID                       *int64   `json:"flatId,omitempty" validate:"required_without=BuildingID"`
	BuildingID                   *int64   `json:"buildingId,omitempty" validate:"required_without=FlatID"`
	DueAmount                    float64  `json:"dueAmount" validate:"required_unless=UseFlatsMonthlyRent true,gte=0"`
	DueDate                      string   `json:"dueDate" validate:"required"`
	DueDescription               string   `json:"dueDescription,omitempty" validate:"max=500"`
	BaseRent                     *float64 `json:"baseRent,omitempty" validate:"omitempty,gte=0"`
	AdditionalCharges            *float64 `json:"additionalCharges,omitempty" validate:"omitempty,gte=0"`
	AdditionalChargesDescription string   `json:"additionalChargesDescription,omitempty" validate:"max=500"`
	UseFlatsMonthlyRent          bool     `json:"useFlatsMonthlyRent,omitempty"`
	FallbackAmount               *float64 `json:"fallbackAmount,omitempty" validate:"omitempty,gt=0"`
}

type DebtorInfo struct {
	FlatID        int64   `json:"flatId"`
	FlatNumber    string  `json:"flatNumber"`
	TenantName    string  `json:"tenantName"`
	TenantContact string  `json:"tenantContact,omitempty"`
	TotalDebt     float64 `json:"totalDebt"`
}

type CollectionRate struct {
	BuildingID     int64   `json:"buildingId"`
	CollectionRate float64 `json:"collectionRate"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
}
