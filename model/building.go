package model

type ApartmentBuilding struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type ApartmentBuildingRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address,omitempty" validate:"max=500"`
}

type BuildingStatistics struct {
	TotalFlats             int     `json:"totalFlats"`
	OccupiedFlats          int     `json:"occupiedFlats"`
	VacantFlats            int     `json:"vacantFlats"`
	TotalTenants           int     `json:"totalTenants"`
	MonthlyIncomeTarget    float64 `json:"monthlyIncomeTarget"`
	CurrentMonthCollection float64 `json:"currentMonthCollection"`
	TotalDebt              float64 `json:"totalDebt"`
	DebtorCount            int     `json:"debtorCount"`
	ActiveManagers         int     `json:"activeManagers"`
}
