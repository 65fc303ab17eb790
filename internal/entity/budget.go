package entity

import "time"

type BudgetTimeframe string

const (
	BudgetTimeframeWeekly  BudgetTimeframe = "weekly"
	BudgetTimeframeMonthly BudgetTimeframe = "monthly"
	BudgetTimeframeYearly  BudgetTimeframe = "yearly"
)

func IsValidBudgetTimeframe(timeframe string) bool {
	switch BudgetTimeframe(timeframe) {
	case BudgetTimeframeWeekly, BudgetTimeframeMonthly, BudgetTimeframeYearly:
		return true
	default:
		return false
	}
}

type Budget struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	Name        string               `json:"name"`
	Amount      float64              `json:"amount"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	Timeframe   string               `json:"timeframe"`
	Allocations []CategoryAllocation `json:"allocations,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// CategoryAllocation is the budgeted amount for one category within one
// budget. At most one allocation per category per budget.
type CategoryAllocation struct {
	ID         string  `json:"id"`
	BudgetID   string  `json:"budget_id"`
	CategoryID string  `json:"category_id"`
	Amount     float64 `json:"amount"`
}
