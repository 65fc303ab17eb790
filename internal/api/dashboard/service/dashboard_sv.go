package dashboardService

import (
	"BudgetGolang/internal/api/budget"
	"BudgetGolang/internal/api/dashboard"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"BudgetGolang/pkg/finance"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

const defaultRecentExpenses = 10

func expenseType() *string {
	t := string(entity.TransactionTypeExpense)
	return &t
}

func (s *dashboardService) transactionsInRange(ctx context.Context, userID string, start, end time.Time, onlyExpenses bool) ([]entity.Transaction, error) {
	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	filter := entity.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	}
	if onlyExpenses {
		filter.Type = expenseType()
	}

	return repo.Transaction.GetByUserID(ctx, userID, filter)
}

// activeBudgetAmount resolves the covering budget of the timeframe, or 0
// when the user has none for the reference instant.
func (s *dashboardService) activeBudgetAmount(ctx context.Context, userID string, timeframe string, at time.Time) (float64, error) {
	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		return 0, err
	}

	b, err := repo.Budget.GetActive(ctx, userID, timeframe, at)
	if err != nil {
		if errors.Is(err, budget.ErrBudgetNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return b.Amount, nil
}

func (s *dashboardService) Summary(ctx context.Context, userID string) (dashboard.SummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	now := s.now()

	monthStart := finance.StartOfMonth(now)
	monthEnd := finance.EndOfMonth(now)

	transactions, err := s.transactionsInRange(ctx, userID, monthStart, monthEnd, false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to load transactions for summary")
		return dashboard.SummaryResponse{}, err
	}

	var totalIncome, totalExpense float64
	for _, tx := range transactions {
		switch entity.TransactionType(tx.Type) {
		case entity.TransactionTypeIncome:
			totalIncome += tx.Amount
		case entity.TransactionTypeExpense:
			totalExpense += tx.Amount
		}
	}

	// Planned savings come from the monthly plan, not from transactions.
	planRepo, err := s.planRepository.NewClient(false)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	items, err := planRepo.PlanItem.GetByUserAndType(ctx, userID, string(entity.PlanTypeMonthly))
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	var totalSavings float64
	for _, item := range items {
		if entity.PlanItemType(item.ItemType) == entity.PlanItemTypeSavings {
			totalSavings += item.Amount
		}
	}

	return dashboard.SummaryResponse{
		Month:        now.Format("2006-01"),
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		TotalSavings: totalSavings,
		Remaining:    totalIncome - totalExpense - totalSavings,
	}, nil
}

func (s *dashboardService) Today(ctx context.Context, userID string) (dashboard.TodayResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	now := s.now()

	expenses, err := s.transactionsInRange(ctx, userID, finance.StartOfDay(now), finance.EndOfDay(now), true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to load today's expenses")
		return dashboard.TodayResponse{}, err
	}

	var spentToday float64
	for _, tx := range expenses {
		spentToday += tx.Amount
	}

	monthlyBudget, err := s.activeBudgetAmount(ctx, userID, string(entity.BudgetTimeframeMonthly), now)
	if err != nil {
		return dashboard.TodayResponse{}, err
	}

	dailyBudget := monthlyBudget / float64(finance.DaysInMonth(now))

	remaining := dailyBudget - spentToday
	if remaining < 0 {
		remaining = 0
	}

	return dashboard.TodayResponse{
		Date:        now.Format("2006-01-02"),
		SpentToday:  spentToday,
		DailyBudget: dailyBudget,
		Remaining:   remaining,
	}, nil
}

func (s *dashboardService) BudgetProgress(ctx context.Context, userID string, period string) (dashboard.BudgetProgressResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	now := s.now()

	if period == "" {
		period = "month"
	}

	var start, end time.Time
	var timeframe string

	switch period {
	case "week":
		start = finance.StartOfWeek(now)
		end = finance.EndOfDay(start.AddDate(0, 0, 6))
		timeframe = string(entity.BudgetTimeframeWeekly)
	case "month":
		start = finance.StartOfMonth(now)
		end = finance.EndOfMonth(now)
		timeframe = string(entity.BudgetTimeframeMonthly)
	default:
		return dashboard.BudgetProgressResponse{}, dashboard.ErrInvalidPeriod
	}

	expenses, err := s.transactionsInRange(ctx, userID, start, end, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"period":     period,
			"error":      err.Error(),
		}).Error("Failed to load expenses for budget progress")
		return dashboard.BudgetProgressResponse{}, err
	}

	var spending float64
	for _, tx := range expenses {
		spending += tx.Amount
	}

	target, err := s.activeBudgetAmount(ctx, userID, timeframe, now)
	if err != nil {
		return dashboard.BudgetProgressResponse{}, err
	}

	var percentageUsed float64
	if target > 0 {
		percentageUsed = spending / target * 100
	}

	remaining := target - spending
	if remaining < 0 {
		remaining = 0
	}

	return dashboard.BudgetProgressResponse{
		Period:         period,
		Target:         target,
		Spending:       spending,
		PercentageUsed: percentageUsed,
		Remaining:      remaining,
	}, nil
}

func (s *dashboardService) RecentExpenses(ctx context.Context, userID string, limit int) (dashboard.RecentExpensesResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if limit < 0 {
		return dashboard.RecentExpensesResponse{}, dashboard.ErrInvalidLimit
	}
	if limit == 0 {
		limit = defaultRecentExpenses
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return dashboard.RecentExpensesResponse{}, err
	}

	expenses, err := repo.Transaction.GetRecentExpenses(ctx, userID, limit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to load recent expenses")
		return dashboard.RecentExpensesResponse{}, err
	}

	// Rows come back newest first, so sequential grouping keeps the days
	// in descending order.
	days := make([]dashboard.RecentExpenseDay, 0)
	for _, tx := range expenses {
		label := tx.Date.Format("2006-01-02")

		item := dashboard.RecentExpenseItem{
			ID:          tx.ID,
			Amount:      tx.Amount,
			CategoryID:  tx.CategoryID,
			Description: tx.Description,
			Date:        tx.Date.Format(time.RFC3339),
		}

		if n := len(days); n > 0 && days[n-1].Date == label {
			days[n-1].Transactions = append(days[n-1].Transactions, item)
			days[n-1].Total += tx.Amount
			continue
		}

		days = append(days, dashboard.RecentExpenseDay{
			Date:         label,
			Total:        tx.Amount,
			Transactions: []dashboard.RecentExpenseItem{item},
		})
	}

	return dashboard.RecentExpensesResponse{Days: days}, nil
}
