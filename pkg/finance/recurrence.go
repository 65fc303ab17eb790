package finance

import (
	"BudgetGolang/internal/entity"
	"time"
)

// Advance moves a date forward by exactly one unit of the given bill
// frequency. Calendar month and year additions use time.Time.AddDate,
// which normalizes overflow days into the following month
// (Jan 31 + 1 month = Mar 2 or Mar 3); that normalization is the one
// clamping convention used everywhere in this package.
func Advance(t time.Time, frequency entity.BillFrequency) time.Time {
	switch frequency {
	case entity.BillFrequencyDaily:
		return t.AddDate(0, 0, 1)
	case entity.BillFrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case entity.BillFrequencyBiweekly:
		return t.AddDate(0, 0, 14)
	case entity.BillFrequencyMonthly:
		return t.AddDate(0, 1, 0)
	case entity.BillFrequencyQuarterly:
		return t.AddDate(0, 3, 0)
	case entity.BillFrequencyBiannually:
		return t.AddDate(0, 6, 0)
	case entity.BillFrequencyAnnually:
		return t.AddDate(1, 0, 0)
	default:
		// Unknown frequencies advance by one month rather than leaving the
		// due date stuck in the past.
		return t.AddDate(0, 1, 0)
	}
}
