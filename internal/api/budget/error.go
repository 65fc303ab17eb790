package budget

import "BudgetGolang/pkg/response"

var (
	ErrBudgetNotFound      = response.NewError(404, "budget not found")
	ErrBudgetNotOwned      = response.NewError(403, "budget does not belong to user")
	ErrInvalidTimeframe    = response.NewError(400, "invalid budget timeframe")
	ErrInvalidDateRange    = response.NewError(400, "budget end date must not precede start date")
	ErrDuplicateAllocation = response.NewError(400, "duplicate category allocation")
)
