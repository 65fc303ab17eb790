package entity

import "time"

type PlanType string

const (
	PlanTypeDaily   PlanType = "daily"
	PlanTypeWeekly  PlanType = "weekly"
	PlanTypeMonthly PlanType = "monthly"
)

func IsValidPlanType(planType string) bool {
	switch PlanType(planType) {
	case PlanTypeDaily, PlanTypeWeekly, PlanTypeMonthly:
		return true
	default:
		return false
	}
}

type PlanItemType string

const (
	PlanItemTypeIncome  PlanItemType = "income"
	PlanItemTypeExpense PlanItemType = "expense"
	PlanItemTypeSavings PlanItemType = "savings"
)

func IsValidPlanItemType(itemType string) bool {
	switch PlanItemType(itemType) {
	case PlanItemTypeIncome, PlanItemTypeExpense, PlanItemTypeSavings:
		return true
	default:
		return false
	}
}

// PlanItem is one line of a plan. A plan itself is not stored: it is the
// aggregate view over all items sharing (user_id, plan_type).
type PlanItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	CategoryID  string    `json:"category_id,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	PlanType    string    `json:"plan_type"`
	ItemType    string    `json:"item_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
