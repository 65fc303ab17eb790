package transaction

import "time"

type CreateTransactionRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Date        string  `json:"date" validate:"required"`
	CategoryID  string  `json:"category_id" validate:"required"`
	Description string  `json:"description"`
	Notes       string  `json:"notes"`
}

type UpdateTransactionRequest struct {
	ID            string  `json:"id" validate:"required"`
	UserID        string  `json:"user_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Type          string  `json:"type" validate:"required,oneof=income expense"`
	Date          string  `json:"date" validate:"required"`
	CategoryID    string  `json:"category_id" validate:"required"`
	Description   string  `json:"description"`
	Notes         string  `json:"notes"`
	DeleteReceipt bool    `json:"delete_receipt"`
}

// ListTransactionsQuery mirrors the optional query-string filters.
type ListTransactionsQuery struct {
	Type       string
	CategoryID string
	BillID     string
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
	Limit      int
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	CategoryID  string  `json:"category_id"`
	BillID      string  `json:"bill_id,omitempty"`
	Description string  `json:"description,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	ReceiptLink string  `json:"receipt_link,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  float64               `json:"total_income"`
	TotalExpense float64               `json:"total_expense"`
	Balance      float64               `json:"balance"`
}
