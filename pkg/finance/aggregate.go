package finance

import (
	"BudgetGolang/internal/entity"
	"sort"
)

// BucketTotals is the income/expense sum for one time bucket.
type BucketTotals struct {
	Label   string  `json:"label"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// SumByBucket sums transaction amounts per bucket, split by transaction
// type. Every bucket appears in the result, zero-valued when empty;
// transactions falling outside the bucket range are ignored.
func SumByBucket(buckets []Bucket, transactions []entity.Transaction) []BucketTotals {
	totals := make([]BucketTotals, len(buckets))
	for i, b := range buckets {
		totals[i].Label = b.Label
	}

	for _, tx := range transactions {
		i := IndexOf(buckets, tx.Date)
		if i < 0 {
			continue
		}
		switch entity.TransactionType(tx.Type) {
		case entity.TransactionTypeIncome:
			totals[i].Income += tx.Amount
		case entity.TransactionTypeExpense:
			totals[i].Expense += tx.Amount
		}
	}

	for i := range totals {
		totals[i].Net = totals[i].Income - totals[i].Expense
	}

	return totals
}

// CategorySum is the aggregate for one category within a grouping.
type CategorySum struct {
	CategoryID string  `json:"category_id"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// GroupByCategory sums amount and count per category and derives each
// category's share of the total, sorted by descending amount. Every
// percentage is 0 when the total is 0.
func GroupByCategory(transactions []entity.Transaction) []CategorySum {
	byCategory := make(map[string]*CategorySum)
	var total float64

	for _, tx := range transactions {
		sum, ok := byCategory[tx.CategoryID]
		if !ok {
			sum = &CategorySum{CategoryID: tx.CategoryID}
			byCategory[tx.CategoryID] = sum
		}
		sum.Amount += tx.Amount
		sum.Count++
		total += tx.Amount
	}

	result := make([]CategorySum, 0, len(byCategory))
	for _, sum := range byCategory {
		if total > 0 {
			sum.Percentage = sum.Amount / total * 100
		}
		result = append(result, *sum)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount != result[j].Amount {
			return result[i].Amount > result[j].Amount
		}
		return result[i].CategoryID < result[j].CategoryID
	})

	return result
}

// VarianceRow compares a budgeted amount against the actual amount for one
// key (a category id or a month label).
type VarianceRow struct {
	Key                string  `json:"key"`
	BudgetAmount       float64 `json:"budget_amount"`
	ActualAmount       float64 `json:"actual_amount"`
	Variance           float64 `json:"variance"`
	VariancePercentage float64 `json:"variance_percentage"`
}

// BudgetVariance joins budgeted and actual amounts over the union of their
// keys: keys present only in actuals get a zero budget, budgeted-but-unspent
// keys get a zero actual. Variance is actual minus budget; the percentage is
// 0 when the budget is 0. Rows are sorted by key for stable output.
func BudgetVariance(budgeted, actual map[string]float64) []VarianceRow {
	keys := make(map[string]struct{}, len(budgeted)+len(actual))
	for k := range budgeted {
		keys[k] = struct{}{}
	}
	for k := range actual {
		keys[k] = struct{}{}
	}

	rows := make([]VarianceRow, 0, len(keys))
	for k := range keys {
		row := VarianceRow{
			Key:          k,
			BudgetAmount: budgeted[k],
			ActualAmount: actual[k],
		}
		row.Variance = row.ActualAmount - row.BudgetAmount
		if row.BudgetAmount != 0 {
			row.VariancePercentage = row.Variance / row.BudgetAmount * 100
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })

	return rows
}

// TrendPercentage is the two-point change between the first and last value
// of a window: (last - first) / first * 100, and 0 when first is 0. It is
// deliberately not a regression.
func TrendPercentage(first, last float64) float64 {
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}
