package model

type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "CASH"
	PaymentBankTransfer  PaymentMethod = "BANK_TRANSFER"
	PaymentCreditCard    PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard     PaymentMethod = "DEBIT_CARD"
	PaymentCheck         PaymentMethod = "CHECK"
	PaymentOnlinePayment PaymentMethod = "ONLINE_PAYMENT"
	PaymentOther         PaymentMethod = "OTHER"
)

type PaymentFlatSummary struct {
	ID           int64  `json:"id"`
	FlatNumber   string `json:"flatNumber"`
	TenantName   string `json:"tenantName,omitempty"`
	BuildingID   int64  `json:"buildingId"`
	BuildingName string `json:"buildingName"`
}

type Payment struct {
	ID              int64              `json:"id"`
	Flat            PaymentFlatSummary `json:"flat"`
	Amount          float64            `json:"amount"`
	PaymentDate     string             `json:"paymentDate"`
	PaymentMethod   PaymentMethod      `json:"paymentMethod"`
	ReferenceNumber string             `json:"referenceNumber,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	Description     string             `json:"description,omitempty"`
	ReceiptNumber   string             `json:"receiptNumber,omitempty"`
	RecordedBy      string             `json:"recordedBy,omitempty"`
	CreatedAt       string             `json:"createdAt,omitempty"`
	UpdatedAt       string             `json:"updatedAt,omitempty"`
	Version         int                `json:"version"`
}

type PaymentRequest struct {
	FlatID          int64         `json:"flatId" validate:"required,gt=0"`
	Amount          float64       `json:"amount" validate:"gt=0"`
	PaymentDate     string        `json:"paymentDate" validate:"required"`
	PaymentMethod   PaymentMethod `json:"paymentMethod" validate:"required,oneof=CASH BANK_TRANSFER CREDIT_CARD DEBIT_CARD CHECK ONLINE_PAYMENT OTHER"`
	ReferenceNumber string        `json:"referenceNumber,omitempty" validate:"max=100"`
	Notes           string        `json:"notes,omitempty" validate:"max=500"`
	Description     string        `json:"description,omitempty" validate:"max=500"`
	ReceiptNumber   string        `json:"receiptNumber,omitempty" validate:"max=100"`
}

type PaymentStatistics struct {
	BuildingID     int64   `json:"buildingId"`
	TotalAmount    float64 `json:"totalAmount"`
	PaymentCount   int     `json:"paymentCount"`
	AveragePayment float64 `json:"averagePayment"`
	StartDate      string  `json:"startDate,omitempty"`
	EndDate        string  `json:"endDate,omitempty"`
}

type FlatBalance struct {
	FlatID             int64   `json:"flatId"`
	OutstandingBalance float64 `json:"outstandingBalance"`
	CalculatedAt       string  `json:"calculatedAt,omitempty"`
}
