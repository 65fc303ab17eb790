package dashboard

import "BudgetGolang/pkg/response"

var (
	ErrInvalidPeriod = response.NewError(400, "invalid budget progress period")
	ErrInvalidLimit  = response.NewError(400, "invalid recent expenses limit")
)
