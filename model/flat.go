package model

type OccupancyStatus string

const (
	OccupancyOccupied      OccupancyStatus = "OCCUPIED"
	OccupancyVacant        OccupancyStatus = "VACANT"
	OccupancyPendingMoveIn OccupancyStatus = "PENDING_MOVE_IN"
)

type ActiveContractInfo struct {
	ContractID         int64    `json:"contractId"`
	TenantName         string   `json:"tenantName,omitempty"`
	TenantEmail        string   `json:"tenantEmail,omitempty"`
	TenantContact      string   `json:"tenantContact,omitempty"`
	MonthlyRent        float64  `json:"monthlyRent"`
	SecurityDeposit    float64  `json:"securityDeposit"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	MoveInDate         string   `json:"moveInDate,omitempty"`
	DaysUntilExpiry    *int     `json:"daysUntilExpiry,omitempty"`
	IsExpiringSoon     bool     `json:"isExpiringSoon"`
	ContractStatus     string   `json:"contractStatus"`
	OutstandingBalance *float64 `json:"outstandingBalance,omitempty"`
	HasOverdueDues     bool     `json:"hasOverdueDues,omitempty"`
}

type Flat struct {
	ID                    int64               `json:"id"`
	FlatNumber            string              `json:"flatNumber"`
	NumberOfRooms         *int                `json:"numberOfRooms,omitempty"`
	AreaSqMeters          *float64            `json:"areaSqMeters,omitempty"`
	ApartmentBuildingID   int64               `json:"apartmentBuildingId"`
	ApartmentBuildingName string              `json:"apartmentBuildingName,omitempty"`
	IsActive              bool                `json:"isActive"`
	CurrentBalance        *float64            `json:"currentBalance,omitempty"`
	ActiveContract        *ActiveContractInfo `json:"activeContract,omitempty"`
	OccupancyStatus       OccupancyStatus     `json:"occupancyStatus,omitempty"`
	CreatedAt             string              `json:"createdAt,omitempty"`
	UpdatedAt             string              `json:"updatedAt,omitempty"`
}

type FlatRequest struct {
	FlatNumber          string   `json:"flatNumber" validate:"required,max=50"`
	NumberOfRooms       *int     `json:"numberOfRooms,omitempty" validate:"omitempty,min=0"`
	AreaSqMeters        *float64 `json:"areaSqMeters,omitempty" validate:"omitempty,gt=0"`
	ApartmentBuildingID int64    `json:"apartmentBuildingId" validate:"required,gt=0"`
	IsActive            *bool    `json:"isActive,omitempty"`
}
