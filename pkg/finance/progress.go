package finance

import (
	"BudgetGolang/internal/entity"
	"time"
)

// Progress returns the percentage of the target already saved, clamped to
// [0, 100], and the number of days left before the target date. The
// percentage is 0 when the target amount is not positive. The day count is
// nil when the goal has no target date, and never negative.
func Progress(goal entity.SavingsGoal, now time.Time) (float64, *int) {
	var percentage float64
	if goal.TargetAmount > 0 {
		percentage = goal.CurrentAmount / goal.TargetAmount * 100
		if percentage > 100 {
			percentage = 100
		}
		if percentage < 0 {
			percentage = 0
		}
	}

	if goal.TargetDate == nil {
		return percentage, nil
	}

	days := DaysUntil(*goal.TargetDate, now)
	if days < 0 {
		days = 0
	}

	return percentage, &days
}
