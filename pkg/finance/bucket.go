package finance

import "time"

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func IsValidGranularity(granularity string) bool {
	switch Granularity(granularity) {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return true
	default:
		return false
	}
}

// Bucket is one fixed time sub-range used to group records for charting.
// Both bounds are inclusive: a record with timestamp t belongs to the
// bucket where Start <= t <= End.
type Bucket struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the bucket.
func (b Bucket) Contains(t time.Time) bool {
	return !t.Before(b.Start) && !t.After(b.End)
}

// Bucketize partitions [rangeStart, rangeEnd] into contiguous,
// non-overlapping buckets of the given granularity, ordered ascending.
// The first bucket starts exactly at rangeStart and the last one ends
// exactly at rangeEnd; interior boundaries snap to calendar edges, with
// weeks always starting on Sunday. Every bucket is materialized even when
// no record will land in it.
func Bucketize(rangeStart, rangeEnd time.Time, granularity Granularity) []Bucket {
	if rangeEnd.Before(rangeStart) {
		return nil
	}

	var buckets []Bucket
	cursor := rangeStart

	for !cursor.After(rangeEnd) {
		next := nextBoundary(cursor, granularity)
		end := next.Add(-time.Nanosecond)
		if end.After(rangeEnd) {
			end = rangeEnd
		}

		buckets = append(buckets, Bucket{
			Label: bucketLabel(cursor, granularity),
			Start: cursor,
			End:   end,
		})

		cursor = next
	}

	return buckets
}

// IndexOf returns the index of the bucket containing t, or -1 when t falls
// outside every bucket.
func IndexOf(buckets []Bucket, t time.Time) int {
	for i, b := range buckets {
		if b.Contains(t) {
			return i
		}
	}
	return -1
}

func nextBoundary(cursor time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityWeek:
		return startOfWeek(cursor).AddDate(0, 0, 7)
	case GranularityMonth:
		return startOfMonth(cursor).AddDate(0, 1, 0)
	default:
		return startOfDay(cursor).AddDate(0, 0, 1)
	}
}

func bucketLabel(start time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityWeek:
		return startOfWeek(start).Format("2006-01-02")
	case GranularityMonth:
		return start.Format("2006-01")
	default:
		return start.Format("2006-01-02")
	}
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// startOfWeek snaps to the preceding (or same) Sunday.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

func startOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// StartOfDay exposes the day boundary used by the bucketer so callers
// build windows aligned with it.
func StartOfDay(t time.Time) time.Time { return startOfDay(t) }

// StartOfWeek exposes the Sunday week boundary used by the bucketer.
func StartOfWeek(t time.Time) time.Time { return startOfWeek(t) }

// StartOfMonth exposes the month boundary used by the bucketer.
func StartOfMonth(t time.Time) time.Time { return startOfMonth(t) }

// EndOfMonth returns the last instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// EndOfDay returns the last instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Hour).Day()
}
