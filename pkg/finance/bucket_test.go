package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Buckets must tile the requested range exactly: first starts at rangeStart,
// last ends at rangeEnd, and each bucket begins one nanosecond after its
// predecessor ends.
func assertTiling(t *testing.T, buckets []Bucket, rangeStart, rangeEnd time.Time) {
	t.Helper()
	require.NotEmpty(t, buckets)
	assert.Equal(t, rangeStart, buckets[0].Start)
	assert.Equal(t, rangeEnd, buckets[len(buckets)-1].End)

	for i := 1; i < len(buckets); i++ {
		assert.Equal(t, buckets[i-1].End.Add(time.Nanosecond), buckets[i].Start,
			"gap or overlap between bucket %d and %d", i-1, i)
	}
}

func TestBucketizeDay(t *testing.T) {
	start := date(2025, time.March, 3)
	end := EndOfDay(date(2025, time.March, 9))

	buckets := Bucketize(start, end, GranularityDay)

	require.Len(t, buckets, 7)
	assertTiling(t, buckets, start, end)
	assert.Equal(t, "2025-03-03", buckets[0].Label)
	assert.Equal(t, "2025-03-09", buckets[6].Label)
}

func TestBucketizeWeekStartsSunday(t *testing.T) {
	// March 3 2025 is a Monday, so the first bucket is the partial week up
	// to Saturday night and the second starts on Sunday March 9.
	start := date(2025, time.March, 3)
	end := EndOfDay(date(2025, time.March, 22))

	buckets := Bucketize(start, end, GranularityWeek)

	require.Len(t, buckets, 3)
	assertTiling(t, buckets, start, end)
	assert.Equal(t, date(2025, time.March, 9), buckets[1].Start)
	assert.Equal(t, time.Sunday, buckets[1].Start.Weekday())
	assert.Equal(t, time.Sunday, buckets[2].Start.Weekday())
}

func TestBucketizeMonth(t *testing.T) {
	start := date(2025, time.January, 15)
	end := EndOfMonth(date(2025, time.April, 1))

	buckets := Bucketize(start, end, GranularityMonth)

	require.Len(t, buckets, 4)
	assertTiling(t, buckets, start, end)
	assert.Equal(t, "2025-01", buckets[0].Label)
	assert.Equal(t, date(2025, time.February, 1), buckets[1].Start)
	assert.Equal(t, "2025-04", buckets[3].Label)
}

func TestBucketizeInvertedRange(t *testing.T) {
	buckets := Bucketize(date(2025, time.March, 9), date(2025, time.March, 3), GranularityDay)
	assert.Empty(t, buckets)
}

// Every instant inside the range lands in exactly one bucket.
func TestBucketMembershipIsExclusive(t *testing.T) {
	start := date(2025, time.March, 3)
	end := EndOfDay(date(2025, time.March, 16))
	buckets := Bucketize(start, end, GranularityWeek)

	probes := []time.Time{
		start,
		end,
		date(2025, time.March, 8).Add(23 * time.Hour),
		date(2025, time.March, 9),
		date(2025, time.March, 12).Add(30 * time.Minute),
	}

	for _, probe := range probes {
		matches := 0
		for _, b := range buckets {
			if b.Contains(probe) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "probe %s", probe)
	}

	assert.Equal(t, -1, IndexOf(buckets, start.Add(-time.Nanosecond)))
	assert.Equal(t, -1, IndexOf(buckets, end.Add(time.Nanosecond)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(date(2025, time.January, 10)))
	assert.Equal(t, 28, DaysInMonth(date(2025, time.February, 1)))
	assert.Equal(t, 29, DaysInMonth(date(2024, time.February, 15)))
	assert.Equal(t, 30, DaysInMonth(date(2025, time.April, 30)))
}
