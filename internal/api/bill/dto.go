package bill

type CreateBillRequest struct {
	UserID     string  `json:"user_id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	DueDate    string  `json:"due_date" validate:"required"`
	Frequency  string  `json:"frequency" validate:"required,oneof=daily weekly biweekly monthly quarterly biannually annually"`
	Autopay    bool    `json:"autopay"`
	Notes      string  `json:"notes"`
	CategoryID string  `json:"category_id" validate:"required"`
}

type UpdateBillRequest struct {
	ID         string  `json:"id" validate:"required"`
	UserID     string  `json:"user_id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	DueDate    string  `json:"due_date" validate:"required"`
	Frequency  string  `json:"frequency" validate:"required,oneof=daily weekly biweekly monthly quarterly biannually annually"`
	Autopay    bool    `json:"autopay"`
	Notes      string  `json:"notes"`
	CategoryID string  `json:"category_id" validate:"required"`
}

type PayBillRequest struct {
	ID          string `json:"id" validate:"required"`
	UserID      string `json:"user_id" validate:"required"`
	PaymentDate string `json:"payment_date"`
	// SkipTransaction suppresses the expense record that payment normally
	// writes. Zero value keeps the default behavior of recording one.
	SkipTransaction bool `json:"skip_transaction"`
}

type BillResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	DueDate      string  `json:"due_date"`
	Frequency    string  `json:"frequency"`
	Autopay      bool    `json:"autopay"`
	Notes        string  `json:"notes,omitempty"`
	CategoryID   string  `json:"category_id"`
	Status       string  `json:"status"`
	DaysUntilDue int     `json:"days_until_due"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
}

// PayBillResponse echoes the payment date back to the caller. It is not
// stored anywhere; the bill itself only moves its due date forward.
type PayBillResponse struct {
	Bill            BillResponse `json:"bill"`
	LastPaymentDate string       `json:"last_payment_date"`
}
