package bill

import "BudgetGolang/pkg/response"

var (
	ErrBillNotFound        = response.NewError(404, "bill not found")
	ErrBillNotOwned        = response.NewError(403, "bill does not belong to user")
	ErrInvalidFrequency    = response.NewError(400, "invalid bill frequency")
	ErrInvalidDueDate      = response.NewError(400, "invalid bill due date")
	ErrInvalidPaymentDate  = response.NewError(400, "invalid payment date")
	ErrInvalidStatusFilter = response.NewError(400, "invalid bill status filter")
)
