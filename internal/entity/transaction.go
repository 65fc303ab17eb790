package entity

import "time"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	CategoryID  string    `json:"category_id"`
	BillID      string    `json:"bill_id,omitempty"`
	Description string    `json:"description,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	ReceiptLink string    `json:"receipt_link,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionFilter carries the optional list filters. A nil field means
// the corresponding clause is not added to the query.
type TransactionFilter struct {
	Type       *string
	CategoryID *string
	BillID     *string
	StartDate  *time.Time
	EndDate    *time.Time
	Search     *string
	Limit      int
}
