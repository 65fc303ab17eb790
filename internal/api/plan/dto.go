package plan

type PlanItemRequest struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	CategoryID  string  `json:"category_id"`
	Notes       string  `json:"notes"`
	ItemType    string  `json:"item_type" validate:"required,oneof=income expense savings"`
}

type CreatePlanItemRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	PlanType    string  `json:"plan_type" validate:"required,oneof=daily weekly monthly"`
	ItemType    string  `json:"item_type" validate:"required,oneof=income expense savings"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	CategoryID  string  `json:"category_id"`
	Notes       string  `json:"notes"`
}

type UpdatePlanItemRequest struct {
	ID          string  `json:"id" validate:"required"`
	UserID      string  `json:"user_id" validate:"required"`
	ItemType    string  `json:"item_type" validate:"required,oneof=income expense savings"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	CategoryID  string  `json:"category_id"`
	Notes       string  `json:"notes"`
}

// ReplacePlanRequest swaps the full item set of one plan. The old items
// are gone once this succeeds; on failure nothing changes.
type ReplacePlanRequest struct {
	UserID   string            `json:"user_id" validate:"required"`
	PlanType string            `json:"plan_type" validate:"required,oneof=daily weekly monthly"`
	Items    []PlanItemRequest `json:"items" validate:"dive"`
}

type PlanItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	CategoryID  string  `json:"category_id,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	ItemType    string  `json:"item_type"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type PlanResponse struct {
	PlanType     string             `json:"plan_type"`
	Income       []PlanItemResponse `json:"income"`
	Expenses     []PlanItemResponse `json:"expenses"`
	Savings      []PlanItemResponse `json:"savings"`
	TotalIncome  float64            `json:"total_income"`
	TotalExpense float64            `json:"total_expense"`
	TotalSavings float64            `json:"total_savings"`
	Remaining    float64            `json:"remaining"`
}
