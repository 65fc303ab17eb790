package statisticsService

import (
	"BudgetGolang/internal/api/budget"
	"BudgetGolang/internal/api/statistics"
	"BudgetGolang/internal/entity"
	"errors"
	contextPkg "BudgetGolang/pkg/context"
	"BudgetGolang/pkg/finance"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

const (
	defaultChartMonths = 3
	defaultTrendMonths = 6
	defaultSpendDays   = 14
)

func (s *statisticsService) transactionsInRange(ctx context.Context, userID string, start, end time.Time, onlyExpenses bool) ([]entity.Transaction, error) {
	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	filter := entity.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	}
	if onlyExpenses {
		t := string(entity.TransactionTypeExpense)
		filter.Type = &t
	}

	return repo.Transaction.GetByUserID(ctx, userID, filter)
}

func (s *statisticsService) IncomeVsExpenses(ctx context.Context, userID string, months int, granularity string) (statistics.IncomeVsExpensesResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if months < 0 {
		return statistics.IncomeVsExpensesResponse{}, statistics.ErrInvalidMonths
	}
	if months == 0 {
		months = defaultChartMonths
	}

	if granularity == "" {
		granularity = string(finance.GranularityMonth)
	}
	g := finance.Granularity(granularity)
	if g != finance.GranularityWeek && g != finance.GranularityMonth {
		return statistics.IncomeVsExpensesResponse{}, statistics.ErrInvalidGranularity
	}

	now := s.now()
	start := finance.StartOfMonth(now.AddDate(0, -(months - 1), 0))
	end := finance.EndOfMonth(now)

	transactions, err := s.transactionsInRange(ctx, userID, start, end, false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to load transactions for income vs expenses chart")
		return statistics.IncomeVsExpensesResponse{}, err
	}

	buckets := finance.Bucketize(start, end, g)

	return statistics.IncomeVsExpensesResponse{
		Granularity: granularity,
		Months:      months,
		Buckets:     finance.SumByBucket(buckets, transactions),
	}, nil
}

func (s *statisticsService) ExpenseCategories(ctx context.Context, userID string, startDate, endDate time.Time) (statistics.ExpenseCategoriesResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if endDate.Before(startDate) {
		return statistics.ExpenseCategoriesResponse{}, statistics.ErrInvalidRange
	}

	expenses, err := s.transactionsInRange(ctx, userID, startDate, endDate, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to load expenses for category breakdown")
		return statistics.ExpenseCategoriesResponse{}, err
	}

	categories := finance.GroupByCategory(expenses)

	var total float64
	for _, c := range categories {
		total += c.Amount
	}

	return statistics.ExpenseCategoriesResponse{
		StartDate:  startDate.Format(time.RFC3339),
		EndDate:    endDate.Format(time.RFC3339),
		Total:      total,
		Categories: categories,
	}, nil
}

// MonthlyTrends reports per-month income, expense and savings totals plus
// the two-point trend over the window. Savings figures are attributed to
// the month each plan item was created in.
func (s *statisticsService) MonthlyTrends(ctx context.Context, userID string, months int) (statistics.MonthlyTrendsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if months < 0 {
		return statistics.MonthlyTrendsResponse{}, statistics.ErrInvalidMonths
	}
	if months == 0 {
		months = defaultTrendMonths
	}

	now := s.now()
	start := finance.StartOfMonth(now.AddDate(0, -(months - 1), 0))
	end := finance.EndOfMonth(now)

	transactions, err := s.transactionsInRange(ctx, userID, start, end, false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to load transactions for monthly trends")
		return statistics.MonthlyTrendsResponse{}, err
	}

	planRepo, err := s.planRepository.NewClient(false)
	if err != nil {
		return statistics.MonthlyTrendsResponse{}, err
	}

	savingsItems, err := planRepo.PlanItem.GetSavingsByUserID(ctx, userID)
	if err != nil {
		return statistics.MonthlyTrendsResponse{}, err
	}

	buckets := finance.Bucketize(start, end, finance.GranularityMonth)
	totals := finance.SumByBucket(buckets, transactions)

	savingsByBucket := make([]float64, len(buckets))
	for _, item := range savingsItems {
		if i := finance.IndexOf(buckets, item.CreatedAt); i >= 0 {
			savingsByBucket[i] += item.Amount
		}
	}

	monthly := make([]statistics.MonthlyTotals, len(buckets))
	for i := range buckets {
		monthly[i] = statistics.MonthlyTotals{
			Month:   totals[i].Label,
			Income:  totals[i].Income,
			Expense: totals[i].Expense,
			Savings: savingsByBucket[i],
		}
	}

	response := statistics.MonthlyTrendsResponse{Months: monthly}
	if n := len(monthly); n > 1 {
		first, last := monthly[0], monthly[n-1]
		response.IncomeTrend = finance.TrendPercentage(first.Income, last.Income)
		response.ExpenseTrend = finance.TrendPercentage(first.Expense, last.Expense)
		response.SavingsTrend = finance.TrendPercentage(first.Savings, last.Savings)
	}

	return response, nil
}

func (s *statisticsService) DailySpending(ctx context.Context, userID string, days int) (statistics.DailySpendingResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if days < 0 {
		return statistics.DailySpendingResponse{}, statistics.ErrInvalidDays
	}
	if days == 0 {
		days = defaultSpendDays
	}

	now := s.now()
	start := finance.StartOfDay(now.AddDate(0, 0, -(days - 1)))
	end := finance.EndOfDay(now)

	expenses, err := s.transactionsInRange(ctx, userID, start, end, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to load expenses for daily spending")
		return statistics.DailySpendingResponse{}, err
	}

	buckets := finance.Bucketize(start, end, finance.GranularityDay)
	totals := finance.SumByBucket(buckets, expenses)

	var sum float64
	for _, t := range totals {
		sum += t.Expense
	}
	average := sum / float64(len(buckets))

	entries := make([]statistics.DailySpendEntry, len(totals))
	var highest statistics.DailySpendEntry
	var lowestNonZero *statistics.DailySpendEntry

	for i, t := range totals {
		entry := statistics.DailySpendEntry{
			Date:   t.Label,
			Amount: t.Expense,
		}
		if average > 0 {
			entry.ComparisonToAverage = (t.Expense - average) / average * 100
		}
		entries[i] = entry

		if entry.Amount > highest.Amount {
			highest = entry
		}
		// Zero-spend days are excluded from the low watermark.
		if entry.Amount > 0 && (lowestNonZero == nil || entry.Amount < lowestNonZero.Amount) {
			e := entry
			lowestNonZero = &e
		}
	}

	if highest.Date == "" && len(entries) > 0 {
		highest = entries[0]
	}

	return statistics.DailySpendingResponse{
		Days:          entries,
		Average:       average,
		Highest:       highest,
		LowestNonZero: lowestNonZero,
	}, nil
}

// BudgetVsActual compares spending against budgets, either month by month
// over the current year or category by category over the current month.
func (s *statisticsService) BudgetVsActual(ctx context.Context, userID string, breakdown string) (statistics.BudgetVsActualResponse, error) {
	if breakdown == "" {
		breakdown = "month"
	}

	switch breakdown {
	case "month":
		rows, err := s.budgetVsActualByMonth(ctx, userID)
		if err != nil {
			return statistics.BudgetVsActualResponse{}, err
		}
		return statistics.BudgetVsActualResponse{Breakdown: breakdown, Rows: rows}, nil
	case "category":
		rows, err := s.budgetVsActualByCategory(ctx, userID)
		if err != nil {
			return statistics.BudgetVsActualResponse{}, err
		}
		return statistics.BudgetVsActualResponse{Breakdown: breakdown, Rows: rows}, nil
	default:
		return statistics.BudgetVsActualResponse{}, statistics.ErrInvalidBreakdown
	}
}

func (s *statisticsService) budgetVsActualByMonth(ctx context.Context, userID string) ([]finance.VarianceRow, error) {
	requestID := contextPkg.GetRequestID(ctx)
	now := s.now()

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	yearEnd := finance.EndOfMonth(time.Date(now.Year(), time.December, 1, 0, 0, 0, 0, now.Location()))

	expenses, err := s.transactionsInRange(ctx, userID, yearStart, yearEnd, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to load expenses for budget vs actual")
		return nil, err
	}

	budgetRepo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	budgets, err := budgetRepo.Budget.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	buckets := finance.Bucketize(yearStart, yearEnd, finance.GranularityMonth)
	totals := finance.SumByBucket(buckets, expenses)

	budgeted := make(map[string]float64, len(buckets))
	actual := make(map[string]float64, len(buckets))

	for i, b := range buckets {
		actual[b.Label] = totals[i].Expense

		// Rows are newest-first, so the first monthly budget covering the
		// month start wins.
		for _, bd := range budgets {
			if bd.Timeframe != string(entity.BudgetTimeframeMonthly) {
				continue
			}
			if !b.Start.Before(bd.StartDate) && !b.Start.After(bd.EndDate) {
				budgeted[b.Label] = bd.Amount
				break
			}
		}
	}

	return finance.BudgetVariance(budgeted, actual), nil
}

func (s *statisticsService) budgetVsActualByCategory(ctx context.Context, userID string) ([]finance.VarianceRow, error) {
	requestID := contextPkg.GetRequestID(ctx)
	now := s.now()

	monthStart := finance.StartOfMonth(now)
	monthEnd := finance.EndOfMonth(now)

	expenses, err := s.transactionsInRange(ctx, userID, monthStart, monthEnd, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to load expenses for budget vs actual by category")
		return nil, err
	}

	actual := make(map[string]float64)
	for _, tx := range expenses {
		actual[tx.CategoryID] += tx.Amount
	}

	budgetRepo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	// No active monthly budget means every category is unbudgeted, which
	// BudgetVariance already handles with zero targets.
	budgeted := make(map[string]float64)

	active, err := budgetRepo.Budget.GetActive(ctx, userID, string(entity.BudgetTimeframeMonthly), now)
	if err != nil && !errors.Is(err, budget.ErrBudgetNotFound) {
		return nil, err
	}
	if err == nil {
		allocations, err := budgetRepo.Budget.GetAllocations(ctx, active.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range allocations {
			budgeted[a.CategoryID] = a.Amount
		}
	}

	return finance.BudgetVariance(budgeted, actual), nil
}
