package goal

type CreateGoalRequest struct {
	UserID       string  `json:"user_id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	TargetAmount float64 `json:"target_amount" validate:"required,gt=0"`
	TargetDate   string  `json:"target_date"`
	Notes        string  `json:"notes"`
}

type UpdateGoalRequest struct {
	ID           string  `json:"id" validate:"required"`
	UserID       string  `json:"user_id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	TargetAmount float64 `json:"target_amount" validate:"required,gt=0"`
	TargetDate   string  `json:"target_date"`
	Notes        string  `json:"notes"`
}

type AddFundsRequest struct {
	ID     string  `json:"id" validate:"required"`
	UserID string  `json:"user_id" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type GoalResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	TargetDate    string  `json:"target_date,omitempty"`
	Completed     bool    `json:"completed"`
	Notes         string  `json:"notes,omitempty"`
	Percentage    float64 `json:"percentage"`
	DaysRemaining *int    `json:"days_remaining,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}
