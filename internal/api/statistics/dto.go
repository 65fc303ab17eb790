package statistics

import "BudgetGolang/pkg/finance"

type IncomeVsExpensesResponse struct {
	Granularity string                 `json:"granularity"`
	Months      int                    `json:"months"`
	Buckets     []finance.BucketTotals `json:"buckets"`
}

type ExpenseCategoriesResponse struct {
	StartDate  string                `json:"start_date"`
	EndDate    string                `json:"end_date"`
	Total      float64               `json:"total"`
	Categories []finance.CategorySum `json:"categories"`
}

type MonthlyTotals struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Savings float64 `json:"savings"`
}

type MonthlyTrendsResponse struct {
	Months       []MonthlyTotals `json:"months"`
	IncomeTrend  float64         `json:"income_trend"`
	ExpenseTrend float64         `json:"expense_trend"`
	SavingsTrend float64         `json:"savings_trend"`
}

type DailySpendEntry struct {
	Date                string  `json:"date"`
	Amount              float64 `json:"amount"`
	ComparisonToAverage float64 `json:"comparison_to_average"`
}

type DailySpendingResponse struct {
	Days    []DailySpendEntry `json:"days"`
	Average float64           `json:"average"`
	Highest DailySpendEntry   `json:"highest"`
	// LowestNonZero is nil when every day in the window had zero spending.
	LowestNonZero *DailySpendEntry `json:"lowest_non_zero,omitempty"`
}

type BudgetVsActualResponse struct {
	Breakdown string                `json:"breakdown"`
	Rows      []finance.VarianceRow `json:"rows"`
}
