package finance

import (
	"BudgetGolang/internal/entity"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(amount float64, categoryID string, date time.Time) entity.Transaction {
	return entity.Transaction{
		Amount:     amount,
		Type:       string(entity.TransactionTypeExpense),
		CategoryID: categoryID,
		Date:       date,
	}
}

func income(amount float64, categoryID string, date time.Time) entity.Transaction {
	return entity.Transaction{
		Amount:     amount,
		Type:       string(entity.TransactionTypeIncome),
		CategoryID: categoryID,
		Date:       date,
	}
}

// Three expenses on three different days inside a 7-day window: seven day
// buckets come back, three non-zero, four zero, totalling $100.
func TestSumByBucketSevenDayScenario(t *testing.T) {
	start := date(2025, time.March, 3)
	end := EndOfDay(date(2025, time.March, 9))
	buckets := Bucketize(start, end, GranularityDay)

	txs := []entity.Transaction{
		expense(50, "food", date(2025, time.March, 3).Add(9*time.Hour)),
		expense(30, "food", date(2025, time.March, 5).Add(13*time.Hour)),
		expense(20, "food", date(2025, time.March, 8).Add(20*time.Hour)),
	}

	totals := SumByBucket(buckets, txs)

	require.Len(t, totals, 7)

	var nonZero, zero int
	var sum float64
	for _, bt := range totals {
		if bt.Expense == 0 {
			zero++
		} else {
			nonZero++
		}
		sum += bt.Expense
	}

	assert.Equal(t, 3, nonZero)
	assert.Equal(t, 4, zero)
	assert.Equal(t, 100.0, sum)
}

func TestSumByBucketSplitsTypesAndDerivesNet(t *testing.T) {
	start := date(2025, time.March, 1)
	end := EndOfMonth(start)
	buckets := Bucketize(start, end, GranularityMonth)

	txs := []entity.Transaction{
		income(2000, "salary", date(2025, time.March, 1)),
		expense(750, "rent", date(2025, time.March, 2)),
		expense(250, "food", date(2025, time.March, 20)),
		// Outside the range, must be ignored.
		expense(999, "food", date(2025, time.April, 1)),
	}

	totals := SumByBucket(buckets, txs)

	require.Len(t, totals, 1)
	assert.Equal(t, 2000.0, totals[0].Income)
	assert.Equal(t, 1000.0, totals[0].Expense)
	assert.Equal(t, 1000.0, totals[0].Net)
}

func TestGroupByCategory(t *testing.T) {
	day := date(2025, time.March, 10)
	txs := []entity.Transaction{
		expense(60, "food", day),
		expense(30, "transport", day),
		expense(10, "food", day),
	}

	sums := GroupByCategory(txs)

	require.Len(t, sums, 2)
	assert.Equal(t, "food", sums[0].CategoryID)
	assert.Equal(t, 70.0, sums[0].Amount)
	assert.Equal(t, 2, sums[0].Count)
	assert.Equal(t, 70.0, sums[0].Percentage)
	assert.Equal(t, "transport", sums[1].CategoryID)
	assert.Equal(t, 30.0, sums[1].Percentage)

	var percentageSum float64
	for _, s := range sums {
		percentageSum += s.Percentage
	}
	assert.InDelta(t, 100.0, percentageSum, 1e-9)
}

func TestGroupByCategoryZeroTotal(t *testing.T) {
	day := date(2025, time.March, 10)
	sums := GroupByCategory([]entity.Transaction{
		expense(0, "food", day),
		expense(0, "transport", day),
	})

	require.Len(t, sums, 2)
	for _, s := range sums {
		assert.Equal(t, 0.0, s.Percentage)
	}
}

func TestBudgetVariance(t *testing.T) {
	rows := BudgetVariance(
		map[string]float64{"food": 400, "transport": 100},
		map[string]float64{"food": 500, "entertainment": 80},
	)

	require.Len(t, rows, 3)

	byKey := make(map[string]VarianceRow)
	for _, row := range rows {
		byKey[row.Key] = row
	}

	food := byKey["food"]
	assert.Equal(t, 100.0, food.Variance)
	assert.Equal(t, 25.0, food.VariancePercentage)

	// Spent but never budgeted: zero budget, zero percentage.
	entertainment := byKey["entertainment"]
	assert.Equal(t, 0.0, entertainment.BudgetAmount)
	assert.Equal(t, 80.0, entertainment.Variance)
	assert.Equal(t, 0.0, entertainment.VariancePercentage)

	// Budgeted but unspent.
	transport := byKey["transport"]
	assert.Equal(t, 0.0, transport.ActualAmount)
	assert.Equal(t, -100.0, transport.Variance)
	assert.Equal(t, -100.0, transport.VariancePercentage)
}

func TestTrendPercentage(t *testing.T) {
	assert.Equal(t, 50.0, TrendPercentage(100, 150))
	assert.Equal(t, -25.0, TrendPercentage(200, 150))
	// A zero first month reports no trend instead of blowing up.
	assert.Equal(t, 0.0, TrendPercentage(0, 500))
	assert.Equal(t, 0.0, TrendPercentage(0, 0))
}
