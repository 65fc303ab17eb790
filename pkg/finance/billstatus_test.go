package finance

import (
	"BudgetGolang/internal/entity"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"same instant", now, 0},
		{"later today rounds up", now.Add(6 * time.Hour), 1},
		{"exactly three days ahead", now.AddDate(0, 0, 3), 3},
		{"three and a half days ahead", now.Add(84 * time.Hour), 4},
		{"exactly three days ago", now.AddDate(0, 0, -3), -3},
		{"two and a half days ago", now.Add(-60 * time.Hour), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(tt.target, now))
		})
	}
}

func TestClassify(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	status, days := Classify(now.AddDate(0, 0, 5), now)
	assert.Equal(t, entity.BillStatusUpcoming, status)
	assert.Equal(t, 5, days)

	status, days = Classify(now, now)
	assert.Equal(t, entity.BillStatusUpcoming, status)
	assert.Equal(t, 0, days)

	status, days = Classify(now.AddDate(0, 0, -1), now)
	assert.Equal(t, entity.BillStatusOverdue, status)
	assert.Equal(t, -1, days)
}

// A bill three days past due is overdue with -3 days; paying it advances
// the due date one month past the original, not one month from today.
func TestClassifyThenPayScenario(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	dueDate := now.AddDate(0, 0, -3)

	status, days := Classify(dueDate, now)
	assert.Equal(t, entity.BillStatusOverdue, status)
	assert.Equal(t, -3, days)

	newDue := Advance(dueDate, entity.BillFrequencyMonthly)
	assert.Equal(t, dueDate.AddDate(0, 1, 0), newDue)

	status, days = Classify(newDue, now)
	assert.Equal(t, entity.BillStatusUpcoming, status)
	assert.Equal(t, 27, days)
}

// The overdue status and a negative day count always travel together.
func TestOverdueIffNegativeDays(t *testing.T) {
	now := time.Date(2025, time.June, 10, 9, 30, 0, 0, time.UTC)

	for offset := -10; offset <= 10; offset++ {
		status, days := Classify(now.AddDate(0, 0, offset), now)
		if days < 0 {
			assert.Equal(t, entity.BillStatusOverdue, status, "offset %d", offset)
		} else {
			assert.Equal(t, entity.BillStatusUpcoming, status, "offset %d", offset)
		}
	}
}
