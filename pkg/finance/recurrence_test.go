package finance

import (
	"BudgetGolang/internal/entity"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvance(t *testing.T) {
	start := date(2025, time.January, 15)

	tests := []struct {
		name      string
		frequency entity.BillFrequency
		want      time.Time
	}{
		{"daily", entity.BillFrequencyDaily, date(2025, time.January, 16)},
		{"weekly", entity.BillFrequencyWeekly, date(2025, time.January, 22)},
		{"biweekly", entity.BillFrequencyBiweekly, date(2025, time.January, 29)},
		{"monthly", entity.BillFrequencyMonthly, date(2025, time.February, 15)},
		{"quarterly", entity.BillFrequencyQuarterly, date(2025, time.April, 15)},
		{"biannually", entity.BillFrequencyBiannually, date(2025, time.July, 15)},
		{"annually", entity.BillFrequencyAnnually, date(2026, time.January, 15)},
		{"unknown falls back to monthly", entity.BillFrequency("fortnightly"), date(2025, time.February, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Advance(start, tt.frequency))
		})
	}
}

func TestAdvanceRepeatedEqualsOneStep(t *testing.T) {
	start := date(2025, time.January, 15)

	twice := Advance(Advance(start, entity.BillFrequencyMonthly), entity.BillFrequencyMonthly)
	assert.Equal(t, start.AddDate(0, 2, 0), twice)

	thrice := Advance(Advance(Advance(start, entity.BillFrequencyWeekly), entity.BillFrequencyWeekly), entity.BillFrequencyWeekly)
	assert.Equal(t, start.AddDate(0, 0, 21), thrice)
}

func TestAdvanceMonthOverflowNormalizes(t *testing.T) {
	// Jan 31 + 1 month lands in early March under AddDate normalization.
	got := Advance(date(2025, time.January, 31), entity.BillFrequencyMonthly)
	assert.Equal(t, date(2025, time.March, 3), got)
}
