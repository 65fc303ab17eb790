package goal

import "BudgetGolang/pkg/response"

var (
	ErrGoalNotFound         = response.NewError(404, "savings goal not found")
	ErrGoalNotOwned         = response.NewError(403, "savings goal does not belong to user")
	ErrGoalAlreadyCompleted = response.NewError(403, "savings goal is already completed")
	ErrInvalidFundsAmount   = response.NewError(400, "funds amount must be positive")
	ErrInvalidTargetDate    = response.NewError(400, "invalid target date")
)
