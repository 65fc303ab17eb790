package statistics

import "BudgetGolang/pkg/response"

var (
	ErrInvalidGranularity = response.NewError(400, "invalid chart granularity")
	ErrInvalidRange       = response.NewError(400, "invalid date range")
	ErrInvalidMonths      = response.NewError(400, "months must be positive")
	ErrInvalidDays        = response.NewError(400, "days must be positive")
	ErrInvalidBreakdown   = response.NewError(400, "invalid breakdown mode")
)
