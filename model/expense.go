package model

type ExpenseCategory string

type RecurrenceFrequency string

type ExpenseBuildingSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type Expense struct {
	ID                  int64                  `json:"id"`
	Building            ExpenseBuildingSummary `json:"building"`
	Category            ExpenseCategory        `json:"category"`
	CategoryDisplayName string                 `json:"categoryDisplayName,omitempty"`
	Amount              float64                `json:"amount"`
	ExpenseDate         string                 `json:"expenseDate"`
	Description         string                 `json:"description"`
	VendorName          string                 `json:"vendorName,omitempty"`
	InvoiceNumber       string                 `json:"invoiceNumber,omitempty"`
	IsRecurring         bool                   `json:"isRecurring"`
	RecurrenceFrequency RecurrenceFrequency    `json:"recurrenceFrequency,omitempty"`
	RecordedBy          string                 `json:"recordedBy,omitempty"`
	CreatedAt           string                 `json:"createdAt,omitempty"`
	UpdatedAt           string                 `json:"updatedAt,omitempty"`
}

type ExpenseRequest struct {
	BuildingID          int64               `json:"buildingId" validate:"required,gt=0"`
	Category            ExpenseCategory     `json:"category" validate:"required"`
	Amount              float64             `json:"amount" validate:"gt=0"`
	ExpenseDate         string              `json:"expenseDate" validate:"required"`
	Description         string              `json:"description" validate:"required,max=500"`
	VendorName          string              `json:"vendorName,omitempty" validate:"max=255"`
	InvoiceNumber       string              `json:"invoiceNumber,omitempty" validate:"max=100"`
	IsRecurring         bool                `json:"isRecurring,omitempty"`
	RecurrenceFrequency RecurrenceFrequency `json:"recurrenceFrequency,omitempty" validate:"required_if=IsRecurring true"`
	DistributeToFlats   bool                `json:"distributeToFlats,omitempty"`
}

// CategoryAmount is one row of an expense breakdown.
type CategoryAmount struct {
	Category     ExpenseCategory `json:"category"`
	CategoryName string          `json:"categoryName,omitempty"`
	TotalAmount  float64         `json:"totalAmount"`
}

type ExpenseBreakdown struct {
	BuildingID    int64            `json:"buildingId"`
	StartDate     string           `json:"startDate,omitempty"`
	EndDate       string           `json:"endDate,omitempty"`
	Breakdown     []CategoryAmount `json:"breakdown"`
	TotalExpenses float64          `json:"totalExpenses"`
}

type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type MonthlyExpenseTrends struct {
	BuildingID            int64        `json:"buildingId"`
	MonthlyTrends         []MonthTotal `json:"monthlyTrends"`
	AverageMonthlyExpense float64      `json:"averageMonthlyExpense"`
	Months                int          `json:"months"`
}
