package entity

import "time"

type BillFrequency string

const (
	BillFrequencyDaily      BillFrequency = "daily"
	BillFrequencyWeekly     BillFrequency = "weekly"
	BillFrequencyBiweekly   BillFrequency = "biweekly"
	BillFrequencyMonthly    BillFrequency = "monthly"
	BillFrequencyQuarterly  BillFrequency = "quarterly"
	BillFrequencyBiannually BillFrequency = "biannually"
	BillFrequencyAnnually   BillFrequency = "annually"
)

func IsValidBillFrequency(frequency string) bool {
	switch BillFrequency(frequency) {
	case BillFrequencyDaily, BillFrequencyWeekly, BillFrequencyBiweekly,
		BillFrequencyMonthly, BillFrequencyQuarterly, BillFrequencyBiannually,
		BillFrequencyAnnually:
		return true
	default:
		return false
	}
}

type BillStatus string

const (
	BillStatusUpcoming BillStatus = "upcoming"
	BillStatusOverdue  BillStatus = "overdue"
	// BillStatusPaid is part of the domain vocabulary but is never derived
	// from stored data: bills carry no payment history, only a forward-moving
	// due date.
	BillStatusPaid BillStatus = "paid"
)

func IsValidBillStatus(status string) bool {
	switch BillStatus(status) {
	case BillStatusUpcoming, BillStatusOverdue, BillStatusPaid:
		return true
	default:
		return false
	}
}

type Bill struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	DueDate    time.Time `json:"due_date"`
	Frequency  string    `json:"frequency"`
	Autopay    bool      `json:"autopay"`
	Notes      string    `json:"notes,omitempty"`
	CategoryID string    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BillFilter struct {
	Status     *string
	CategoryID *string
	DueBefore  *time.Time
	DueAfter   *time.Time
}
