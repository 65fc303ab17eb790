package statisticsService

import (
	"BudgetGolang/internal/api/budget"
	budgetRepository "BudgetGolang/internal/api/budget/repository"
	planRepository "BudgetGolang/internal/api/plan/repository"
	"BudgetGolang/internal/api/statistics"
	transactionRepository "BudgetGolang/internal/api/transaction/repository"
	"BudgetGolang/internal/entity"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeTransactionStore struct {
	transactions []entity.Transaction
}

func (f *fakeTransactionStore) NewClient(tx bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transaction: f,
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

func (f *fakeTransactionStore) Create(_ context.Context, tx entity.Transaction) error {
	f.transactions = append(f.transactions, tx)
	return nil
}

func (f *fakeTransactionStore) GetByID(_ context.Context, id string) (entity.Transaction, error) {
	for _, tx := range f.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return entity.Transaction{}, nil
}

func (f *fakeTransactionStore) GetByUserID(_ context.Context, userID string, filter entity.TransactionFilter) ([]entity.Transaction, error) {
	var result []entity.Transaction
	for _, tx := range f.transactions {
		if tx.UserID != userID {
			continue
		}
		if filter.Type != nil && tx.Type != *filter.Type {
			continue
		}
		if filter.StartDate != nil && tx.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && tx.Date.After(*filter.EndDate) {
			continue
		}
		result = append(result, tx)
	}
	return result, nil
}

func (f *fakeTransactionStore) GetRecentExpenses(_ context.Context, userID string, limit int) ([]entity.Transaction, error) {
	var result []entity.Transaction
	for _, tx := range f.transactions {
		if tx.UserID == userID && tx.Type == string(entity.TransactionTypeExpense) {
			result = append(result, tx)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeTransactionStore) Update(_ context.Context, tx entity.Transaction) error {
	return nil
}

func (f *fakeTransactionStore) Delete(_ context.Context, id string) error {
	return nil
}

// fakeBudgetStore hands budgets back in insertion order; callers reading
// them as newest-first should insert accordingly.
type fakeBudgetStore struct {
	budgets     []entity.Budget
	allocations map[string][]entity.CategoryAllocation
}

func (f *fakeBudgetStore) NewClient(tx bool) (budgetRepository.Client, error) {
	return budgetRepository.Client{
		Budget:   f,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakeBudgetStore) Create(_ context.Context, b entity.Budget) error {
	f.budgets = append(f.budgets, b)
	return nil
}

func (f *fakeBudgetStore) GetByID(_ context.Context, id string) (entity.Budget, error) {
	for _, b := range f.budgets {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Budget{}, budget.ErrBudgetNotFound
}

func (f *fakeBudgetStore) GetByUserID(_ context.Context, userID string) ([]entity.Budget, error) {
	var result []entity.Budget
	for _, b := range f.budgets {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBudgetStore) GetActive(_ context.Context, userID string, timeframe string, at time.Time) (entity.Budget, error) {
	for _, b := range f.budgets {
		if b.UserID == userID && b.Timeframe == timeframe && !at.Before(b.StartDate) && !at.After(b.EndDate) {
			return b, nil
		}
	}
	return entity.Budget{}, budget.ErrBudgetNotFound
}

func (f *fakeBudgetStore) Update(_ context.Context, b entity.Budget) error {
	return nil
}

func (f *fakeBudgetStore) Delete(_ context.Context, id string) error {
	return nil
}

func (f *fakeBudgetStore) CreateAllocation(_ context.Context, a entity.CategoryAllocation) error {
	if f.allocations == nil {
		f.allocations = make(map[string][]entity.CategoryAllocation)
	}
	f.allocations[a.BudgetID] = append(f.allocations[a.BudgetID], a)
	return nil
}

func (f *fakeBudgetStore) GetAllocations(_ context.Context, budgetID string) ([]entity.CategoryAllocation, error) {
	return f.allocations[budgetID], nil
}

func (f *fakeBudgetStore) DeleteAllocations(_ context.Context, budgetID string) error {
	delete(f.allocations, budgetID)
	return nil
}

type fakePlanStore struct {
	items []entity.PlanItem
}

func (f *fakePlanStore) NewClient(tx bool) (planRepository.Client, error) {
	return planRepository.Client{
		PlanItem: f,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakePlanStore) Create(_ context.Context, item entity.PlanItem) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakePlanStore) GetByID(_ context.Context, id string) (entity.PlanItem, error) {
	return entity.PlanItem{}, nil
}

func (f *fakePlanStore) GetByUserAndType(_ context.Context, userID string, planType string) ([]entity.PlanItem, error) {
	var result []entity.PlanItem
	for _, item := range f.items {
		if item.UserID == userID && item.PlanType == planType {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *fakePlanStore) GetSavingsByUserID(_ context.Context, userID string) ([]entity.PlanItem, error) {
	var result []entity.PlanItem
	for _, item := range f.items {
		if item.UserID == userID && item.ItemType == string(entity.PlanItemTypeSavings) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *fakePlanStore) Update(_ context.Context, item entity.PlanItem) error {
	return nil
}

func (f *fakePlanStore) Delete(_ context.Context, id string) error {
	return nil
}

func (f *fakePlanStore) DeleteByUserAndType(_ context.Context, userID string, planType string) error {
	return nil
}

// The reporting windows anchor on the service clock, so tests pin it to a
// fixed instant.
var statsNow = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

func newStatisticsService(tr *fakeTransactionStore, br *fakeBudgetStore, pr *fakePlanStore) IStatisticsService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &statisticsService{
		log:                   log,
		transactionRepository: tr,
		budgetRepository:      br,
		planRepository:        pr,
		now:                   func() time.Time { return statsNow },
	}
}

func expense(id string, date time.Time, amount float64, categoryID string) entity.Transaction {
	return entity.Transaction{
		ID:         id,
		UserID:     "user-1",
		Amount:     amount,
		Type:       string(entity.TransactionTypeExpense),
		Date:       date,
		CategoryID: categoryID,
	}
}

func income(id string, date time.Time, amount float64) entity.Transaction {
	return entity.Transaction{
		ID:     id,
		UserID: "user-1",
		Amount: amount,
		Type:   string(entity.TransactionTypeIncome),
		Date:   date,
	}
}

func TestDailySpending(t *testing.T) {
	tr := &fakeTransactionStore{transactions: []entity.Transaction{
		expense("t1", statsNow.AddDate(0, 0, -2), 30, "cat-food"),
		// Nothing on June 9: that day stays out of the low watermark but
		// still drags the average down.
		expense("t2", statsNow, 90, "cat-food"),
	}}
	svc := newStatisticsService(tr, &fakeBudgetStore{}, &fakePlanStore{})

	resp, err := svc.DailySpending(context.Background(), "user-1", 3)
	require.NoError(t, err)
	require.Len(t, resp.Days, 3)

	assert.Equal(t, "2025-06-08", resp.Days[0].Date)
	assert.InDelta(t, 40.0, resp.Average, 0.001)
	assert.InDelta(t, -25.0, resp.Days[0].ComparisonToAverage, 0.001)
	assert.InDelta(t, -100.0, resp.Days[1].ComparisonToAverage, 0.001)
	assert.InDelta(t, 125.0, resp.Days[2].ComparisonToAverage, 0.001)

	assert.Equal(t, 90.0, resp.Highest.Amount)
	require.NotNil(t, resp.LowestNonZero)
	assert.Equal(t, 30.0, resp.LowestNonZero.Amount)
}

func TestDailySpendingAllZero(t *testing.T) {
	svc := newStatisticsService(&fakeTransactionStore{}, &fakeBudgetStore{}, &fakePlanStore{})

	resp, err := svc.DailySpending(context.Background(), "user-1", 5)
	require.NoError(t, err)
	require.Len(t, resp.Days, 5)

	assert.Equal(t, 0.0, resp.Average)
	for _, day := range resp.Days {
		assert.Equal(t, 0.0, day.ComparisonToAverage)
	}
	assert.Equal(t, resp.Days[0], resp.Highest)
	assert.Nil(t, resp.LowestNonZero)

	_, err = svc.DailySpending(context.Background(), "user-1", -1)
	assert.ErrorIs(t, err, statistics.ErrInvalidDays)
}

func TestIncomeVsExpenses(t *testing.T) {
	tr := &fakeTransactionStore{transactions: []entity.Transaction{
		income("t1", time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC), 1000),
		expense("t2", statsNow, 400, "cat-food"),
	}}
	svc := newStatisticsService(tr, &fakeBudgetStore{}, &fakePlanStore{})

	resp, err := svc.IncomeVsExpenses(context.Background(), "user-1", 2, "")
	require.NoError(t, err)
	assert.Equal(t, "month", resp.Granularity)
	require.Len(t, resp.Buckets, 2)
	assert.Equal(t, 1000.0, resp.Buckets[0].Income)
	assert.Equal(t, 1000.0, resp.Buckets[0].Net)
	assert.Equal(t, 400.0, resp.Buckets[1].Expense)
	assert.Equal(t, -400.0, resp.Buckets[1].Net)

	_, err = svc.IncomeVsExpenses(context.Background(), "user-1", 2, "year")
	assert.ErrorIs(t, err, statistics.ErrInvalidGranularity)

	_, err = svc.IncomeVsExpenses(context.Background(), "user-1", -1, "")
	assert.ErrorIs(t, err, statistics.ErrInvalidMonths)
}

func TestExpenseCategoriesRange(t *testing.T) {
	tr := &fakeTransactionStore{transactions: []entity.Transaction{
		expense("t1", statsNow.AddDate(0, 0, -1), 60, "cat-food"),
		expense("t2", statsNow, 40, "cat-fun"),
	}}
	svc := newStatisticsService(tr, &fakeBudgetStore{}, &fakePlanStore{})

	resp, err := svc.ExpenseCategories(context.Background(), "user-1", statsNow.AddDate(0, 0, -7), statsNow)
	require.NoError(t, err)
	assert.Equal(t, 100.0, resp.Total)
	require.Len(t, resp.Categories, 2)
	assert.Equal(t, "cat-food", resp.Categories[0].CategoryID)
	assert.InDelta(t, 60.0, resp.Categories[0].Percentage, 0.001)

	_, err = svc.ExpenseCategories(context.Background(), "user-1", statsNow, statsNow.AddDate(0, 0, -7))
	assert.ErrorIs(t, err, statistics.ErrInvalidRange)
}

func TestMonthlyTrendsSavingsAttribution(t *testing.T) {
	may := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)

	tr := &fakeTransactionStore{transactions: []entity.Transaction{
		income("t1", may, 1000),
		income("t2", statsNow, 1200),
	}}
	pr := &fakePlanStore{items: []entity.PlanItem{
		{ID: "p1", UserID: "user-1", PlanType: "monthly", ItemType: "savings", Amount: 100, CreatedAt: may},
		{ID: "p2", UserID: "user-1", PlanType: "monthly", ItemType: "savings", Amount: 50, CreatedAt: statsNow},
		{ID: "p3", UserID: "user-1", PlanType: "monthly", ItemType: "expense", Amount: 999, CreatedAt: statsNow},
	}}
	svc := newStatisticsService(tr, &fakeBudgetStore{}, pr)

	resp, err := svc.MonthlyTrends(context.Background(), "user-1", 2)
	require.NoError(t, err)
	require.Len(t, resp.Months, 2)

	// Savings land in the month each plan item was created in; other item
	// kinds never count.
	assert.Equal(t, "2025-05", resp.Months[0].Month)
	assert.Equal(t, 100.0, resp.Months[0].Savings)
	assert.Equal(t, 50.0, resp.Months[1].Savings)

	assert.InDelta(t, 20.0, resp.IncomeTrend, 0.001)
	assert.InDelta(t, -50.0, resp.SavingsTrend, 0.001)
	assert.Equal(t, 0.0, resp.ExpenseTrend)
}

func TestBudgetVsActualByMonth(t *testing.T) {
	tr := &fakeTransactionStore{transactions: []entity.Transaction{
		expense("t1", statsNow, 300, "cat-food"),
	}}
	// Insertion order is the newest-first contract: the June-only budget
	// must win over the year-long one for June itself.
	br := &fakeBudgetStore{budgets: []entity.Budget{
		{
			ID: "b-june", UserID: "user-1", Amount: 800,
			Timeframe: string(entity.BudgetTimeframeMonthly),
			StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC),
		},
		{
			ID: "b-year", UserID: "user-1", Amount: 500,
			Timeframe: string(entity.BudgetTimeframeMonthly),
			StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC),
		},
	}}
	svc := newStatisticsService(tr, br, &fakePlanStore{})

	resp, err := svc.BudgetVsActual(context.Background(), "user-1", "month")
	require.NoError(t, err)
	assert.Equal(t, "month", resp.Breakdown)
	require.Len(t, resp.Rows, 12)

	byKey := make(map[string]int)
	for i, row := range resp.Rows {
		byKey[row.Key] = i
	}

	june := resp.Rows[byKey["2025-06"]]
	assert.Equal(t, 800.0, june.BudgetAmount)
	assert.Equal(t, 300.0, june.ActualAmount)
	assert.Equal(t, -500.0, june.Variance)
	assert.InDelta(t, -62.5, june.VariancePercentage, 0.001)

	march := resp.Rows[byKey["2025-03"]]
	assert.Equal(t, 500.0, march.BudgetAmount)
	assert.Equal(t, 0.0, march.ActualAmount)
	assert.InDelta(t, -100.0, march.VariancePercentage, 0.001)

	_, err = svc.BudgetVsActual(context.Background(), "user-1", "weekly")
	assert.ErrorIs(t, err, statistics.ErrInvalidBreakdown)
}

func TestBudgetVsActualByCategory(t *testing.T) {
	tr := &fakeTransactionStore{transactions: []entity.Transaction{
		expense("t1", statsNow, 250, "cat-food"),
		expense("t2", statsNow, 40, "cat-transport"),
	}}
	br := &fakeBudgetStore{
		budgets: []entity.Budget{{
			ID: "b1", UserID: "user-1", Amount: 300,
			Timeframe: string(entity.BudgetTimeframeMonthly),
			StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC),
		}},
		allocations: map[string][]entity.CategoryAllocation{
			"b1": {
				{ID: "a1", BudgetID: "b1", CategoryID: "cat-food", Amount: 200},
				{ID: "a2", BudgetID: "b1", CategoryID: "cat-fun", Amount: 100},
			},
		},
	}
	svc := newStatisticsService(tr, br, &fakePlanStore{})

	resp, err := svc.BudgetVsActual(context.Background(), "user-1", "category")
	require.NoError(t, err)
	require.Len(t, resp.Rows, 3)

	byKey := make(map[string]int)
	for i, row := range resp.Rows {
		byKey[row.Key] = i
	}

	food := resp.Rows[byKey["cat-food"]]
	assert.Equal(t, 200.0, food.BudgetAmount)
	assert.Equal(t, 250.0, food.ActualAmount)
	assert.Equal(t, 50.0, food.Variance)
	assert.InDelta(t, 25.0, food.VariancePercentage, 0.001)

	fun := resp.Rows[byKey["cat-fun"]]
	assert.Equal(t, 100.0, fun.BudgetAmount)
	assert.Equal(t, 0.0, fun.ActualAmount)

	// Unbudgeted spending still shows, with a zero target and zero
	// percentage.
	transport := resp.Rows[byKey["cat-transport"]]
	assert.Equal(t, 0.0, transport.BudgetAmount)
	assert.Equal(t, 40.0, transport.ActualAmount)
	assert.Equal(t, 0.0, transport.VariancePercentage)
}

func TestBudgetVsActualByCategoryNoActiveBudget(t *testing.T) {
	tr := &fakeTransactionStore{transactions: []entity.Transaction{
		expense("t1", statsNow, 75, "cat-food"),
	}}
	svc := newStatisticsService(tr, &fakeBudgetStore{}, &fakePlanStore{})

	resp, err := svc.BudgetVsActual(context.Background(), "user-1", "category")
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, 0.0, resp.Rows[0].BudgetAmount)
	assert.Equal(t, 75.0, resp.Rows[0].ActualAmount)
}
