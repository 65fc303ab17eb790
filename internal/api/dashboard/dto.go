package dashboard

// SummaryResponse is the current-month financial summary. Remaining is
// income minus expenses minus planned savings.
type SummaryResponse struct {
	Month        string  `json:"month"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	TotalSavings float64 `json:"total_savings"`
	Remaining    float64 `json:"remaining"`
}

type TodayResponse struct {
	Date        string  `json:"date"`
	SpentToday  float64 `json:"spent_today"`
	DailyBudget float64 `json:"daily_budget"`
	Remaining   float64 `json:"remaining"`
}

type BudgetProgressResponse struct {
	Period         string  `json:"period"`
	Target         float64 `json:"target"`
	Spending       float64 `json:"spending"`
	PercentageUsed float64 `json:"percentage_used"`
	Remaining      float64 `json:"remaining"`
}

type RecentExpenseItem struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	CategoryID  string  `json:"category_id"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
}

type RecentExpenseDay struct {
	Date         string              `json:"date"`
	Total        float64             `json:"total"`
	Transactions []RecentExpenseItem `json:"transactions"`
}

type RecentExpensesResponse struct {
	Days []RecentExpenseDay `json:"days"`
}
