package plan

import "BudgetGolang/pkg/response"

var (
	ErrPlanItemNotFound = response.NewError(404, "plan item not found")
	ErrPlanItemNotOwned = response.NewError(403, "plan item does not belong to user")
	ErrInvalidPlanType  = response.NewError(400, "invalid plan type")
	ErrInvalidItemType  = response.NewError(400, "invalid plan item type")
)
