package budget

type AllocationRequest struct {
	CategoryID string  `json:"category_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

type CreateBudgetRequest struct {
	UserID      string              `json:"user_id" validate:"required"`
	Name        string              `json:"name" validate:"required"`
	Amount      float64             `json:"amount" validate:"required,gt=0"`
	StartDate   string              `json:"start_date" validate:"required"`
	EndDate     string              `json:"end_date" validate:"required"`
	Timeframe   string              `json:"timeframe" validate:"required,oneof=weekly monthly yearly"`
	Allocations []AllocationRequest `json:"allocations" validate:"dive"`
}

type UpdateBudgetRequest struct {
	ID          string              `json:"id" validate:"required"`
	UserID      string              `json:"user_id" validate:"required"`
	Name        string              `json:"name" validate:"required"`
	Amount      float64             `json:"amount" validate:"required,gt=0"`
	StartDate   string              `json:"start_date" validate:"required"`
	EndDate     string              `json:"end_date" validate:"required"`
	Timeframe   string              `json:"timeframe" validate:"required,oneof=weekly monthly yearly"`
	Allocations []AllocationRequest `json:"allocations" validate:"dive"`
}

type AllocationResponse struct {
	ID         string  `json:"id"`
	CategoryID string  `json:"category_id"`
	Amount     float64 `json:"amount"`
}

type BudgetResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	Name        string               `json:"name"`
	Amount      float64              `json:"amount"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Timeframe   string               `json:"timeframe"`
	Allocations []AllocationResponse `json:"allocations"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}
