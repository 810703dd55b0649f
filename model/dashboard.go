package model

import "time"

// BuildingDashboard is the collections overview of one building.
type BuildingDashboard struct {
	BuildingID       int64               `json:"buildingId"`
	Statistics       BuildingStatistics  `json:"statistics"`
	Contracts        *ContractStatistics `json:"contracts,omitempty"`
	Debtors          []DebtorInfo        `json:"debtors"`
	CollectionRate   *CollectionRate     `json:"collectionRate,omitempty"`
	ExpenseBreakdown *ExpenseBreakdown   `json:"expenseBreakdown,omitempty"`
	Period           DateRange           `json:"period"`
	GeneratedAt      time.Time           `json:"generatedAt"`
}
