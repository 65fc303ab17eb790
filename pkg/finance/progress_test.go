package finance

import (
	"BudgetGolang/internal/entity"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPercentage(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		target  float64
		current float64
		want    float64
	}{
		{"halfway", 1000, 500, 50},
		{"complete", 1000, 1000, 100},
		{"overshoot clamps to 100", 1000, 1500, 100},
		{"zero target yields zero", 0, 500, 0},
		{"negative target yields zero", -100, 500, 0},
		{"nothing saved", 1000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := entity.SavingsGoal{TargetAmount: tt.target, CurrentAmount: tt.current}
			percentage, days := Progress(goal, now)
			assert.Equal(t, tt.want, percentage)
			assert.Nil(t, days)
		})
	}
}

func TestProgressDaysRemaining(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	future := now.AddDate(0, 0, 30)
	goal := entity.SavingsGoal{TargetAmount: 1000, CurrentAmount: 250, TargetDate: &future}
	percentage, days := Progress(goal, now)
	assert.Equal(t, 25.0, percentage)
	require.NotNil(t, days)
	assert.Equal(t, 30, *days)

	// A target date in the past floors at zero instead of going negative.
	past := now.AddDate(0, 0, -5)
	goal.TargetDate = &past
	_, days = Progress(goal, now)
	require.NotNil(t, days)
	assert.Equal(t, 0, *days)
}
