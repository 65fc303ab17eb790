package finance

import (
	"BudgetGolang/internal/entity"
	"time"
)

// DaysUntil returns the number of calendar days from now until target,
// rounding fractional remainders toward the later boundary: a target later
// today counts as one day away, a target three full days ago as -3.
func DaysUntil(target, now time.Time) int {
	diff := target.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// Classify derives a bill's lifecycle status and days-until-due from its
// due date and the current time. A negative day count means overdue;
// everything else is upcoming. BillStatusPaid is never produced here
// because bills carry no persisted payment history.
func Classify(dueDate, now time.Time) (entity.BillStatus, int) {
	days := DaysUntil(dueDate, now)
	if days < 0 {
		return entity.BillStatusOverdue, days
	}
	return entity.BillStatusUpcoming, days
}
