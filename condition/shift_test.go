package condition_test

import (
	"testing"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/condition"
	"github.com/reugn/go-remind/internal/assert"
)

func TestShift(t *testing.T) {
	t.Parallel()
	start := date(2010, 3, 31)

	fridays13th := condition.MustConstrained(condition.Day(13),
		condition.Weekdays(calendar.Friday))
	mondaysBefore := condition.NewShift(fridays13th, -4)
	assert.Equal(t, take(t, mondaysBefore.Scan(start), 2), []calendar.Date{
		date(2010, 8, 9),
		date(2011, 5, 9),
	})

	single := condition.MustConstrained(condition.Year(2010), condition.Month(4), condition.Day(1))
	assert.Equal(t, len(collect(t, condition.NewShift(single, -5).Scan(start))), 0)
	assert.True(t, condition.NewShift(single, -5).Finite())

	day20 := condition.MustConstrained(condition.Year(2010), condition.Day(20))
	assert.Equal(t, take(t, condition.NewShift(day20, 40).Scan(start), 3), []calendar.Date{
		date(2010, 4, 1),
		date(2010, 4, 29),
		date(2010, 5, 30),
	})

	day30 := condition.MustConstrained(condition.Day(30))
	assert.Equal(t, take(t, condition.NewShift(day30, 40).Scan(start), 3), []calendar.Date{
		date(2010, 4, 9),
		date(2010, 5, 9),
		date(2010, 6, 9),
	})
}

func TestShift_ScanBack(t *testing.T) {
	t.Parallel()
	start := date(2010, 3, 31)

	day30 := condition.MustConstrained(condition.Year(2010), condition.Day(30))
	assert.Equal(t, take(t, condition.NewShift(day30, 2).ScanBack(start), 1),
		[]calendar.Date{date(2010, 3, 2)})

	day1 := condition.MustConstrained(condition.Day(1))
	assert.Equal(t, take(t, condition.NewShift(day1, -40).ScanBack(start), 3), []calendar.Date{
		date(2010, 3, 22),
		date(2010, 2, 20),
		date(2010, 1, 20),
	})

	assert.Equal(t, take(t, condition.NewShift(day1, 0).ScanBack(start), 2), []calendar.Date{
		date(2010, 3, 1),
		date(2010, 2, 1),
	})
}

func TestShift_Error(t *testing.T) {
	t.Parallel()
	day31 := condition.MustConstrained(condition.Day(31), condition.WithPolicy(calendar.Raise))

	_, err := condition.Collect(condition.NewShift(day31, 40).Scan(date(2010, 4, 15)))
	assert.ErrorIs(t, err, calendar.ErrNonExistentDate)
}
