package transaction

import "BudgetGolang/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrTransactionNotOwned    = response.NewError(403, "transaction does not belong to user")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidAmount          = response.NewError(400, "invalid transaction amount")
	ErrInvalidDate            = response.NewError(400, "invalid transaction date")
	ErrInvalidCategory        = response.NewError(400, "invalid category for transaction")
	ErrInvalidReceiptFile     = response.NewError(400, "invalid receipt file type")
)
