package calendar_test

import (
	"testing"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/internal/assert"
)

func TestLastDayOfMonth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, calendar.LastDayOfMonth(2010, 2), calendar.MustNew(2010, 2, 28))
	assert.Equal(t, calendar.LastDayOfMonth(2012, 2), calendar.MustNew(2012, 2, 29))
	assert.Equal(t, calendar.LastDayOfMonth(2010, 12), calendar.MustNew(2010, 12, 31))
	assert.Equal(t, calendar.LastDayOfMonth(2010, 4), calendar.MustNew(2010, 4, 30))
	assert.Equal(t, calendar.FirstDayOfMonth(2010, 4), calendar.MustNew(2010, 4, 1))
}

func TestDayOfYear(t *testing.T) {
	t.Parallel()
	assert.Equal(t, calendar.DayOfYear(calendar.MustNew(2005, 1, 1)), 1)
	assert.Equal(t, calendar.DayOfYear(calendar.MustNew(2010, 12, 31)), 365)
	assert.Equal(t, calendar.DayOfYear(calendar.MustNew(2012, 12, 31)), 366)
}

func TestISOWeek(t *testing.T) {
	t.Parallel()
	assert.Equal(t, calendar.ISOWeek(calendar.MustNew(2007, 12, 31)), 1)
	assert.Equal(t, calendar.ISOWeek(calendar.MustNew(2008, 1, 1)), 1)
	assert.Equal(t, calendar.ISOWeek(calendar.MustNew(2008, 1, 5)), 1)
	assert.Equal(t, calendar.ISOWeek(calendar.MustNew(2008, 1, 9)), 2)
	// years without a Thursday in the first days
	assert.Equal(t, calendar.ISOWeek(calendar.MustNew(2010, 1, 2)), 53)
	assert.Equal(t, calendar.ISOWeek(calendar.MustNew(2010, 1, 5)), 1)
}

func TestWeekNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		date     calendar.Date
		start    calendar.Weekday
		expected int
	}{
		{calendar.MustNew(2010, 1, 1), calendar.Monday, 1},
		{calendar.MustNew(2010, 1, 3), calendar.Monday, 1},
		{calendar.MustNew(2010, 1, 4), calendar.Monday, 2},
		{calendar.MustNew(2007, 1, 1), calendar.Monday, 1},
		{calendar.MustNew(2007, 1, 7), calendar.Monday, 1},
		{calendar.MustNew(2007, 1, 8), calendar.Monday, 2},
		{calendar.MustNew(2008, 1, 1), calendar.Thursday, 1},
		{calendar.MustNew(2008, 1, 2), calendar.Thursday, 1},
		{calendar.MustNew(2008, 1, 3), calendar.Thursday, 2},
		{calendar.MustNew(2008, 1, 7), calendar.Thursday, 2},
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			assert.Equal(t, calendar.WeekNumber(tt.date, tt.start), tt.expected)
		})
	}
}
