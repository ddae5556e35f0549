package condition_test

import (
	"testing"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/condition"
	"github.com/reugn/go-remind/internal/assert"
)

func TestSatisfy(t *testing.T) {
	t.Parallel()

	everyMonday := condition.MustConstrained(condition.Year(2010),
		condition.Weekdays(calendar.Monday))
	everySecondMonday := must(condition.NewSatisfy(everyMonday, condition.EveryNth(2)))
	dates := take(t, everySecondMonday.Scan(date(2010, 1, 1)), 10)
	assert.Equal(t, dates[0], date(2010, 1, 11))
	assert.Equal(t, dates[9], date(2010, 5, 17))
	assert.True(t, everySecondMonday.Finite())

	// every scan counts from its own start
	dates = take(t, everySecondMonday.Scan(date(2010, 1, 1)), 1)
	assert.Equal(t, dates[0], date(2010, 1, 11))

	everySecondDay := must(condition.NewSatisfy(nil, condition.EveryNth(2)))
	dates = take(t, everySecondDay.ScanBack(date(2009, 12, 31)), 3)
	assert.Equal(t, dates[2], date(2009, 12, 26))
	assert.True(t, !everySecondDay.Finite())

	_, err := condition.NewSatisfy(nil, nil)
	assert.ErrorIs(t, err, condition.ErrIllegalArgument)
}

func TestPredicates(t *testing.T) {
	t.Parallel()
	mondays := condition.MustConstrained(condition.Weekdays(calendar.Monday))
	tests := []struct {
		name     string
		child    condition.Condition
		factory  condition.PredicateFactory
		expected []calendar.Date
	}{
		{
			name:     "odd ISO week",
			child:    mondays,
			factory:  condition.OddISOWeek(),
			expected: []calendar.Date{date(2010, 1, 4), date(2010, 1, 18), date(2010, 2, 1)},
		},
		{
			name:     "even ISO week",
			child:    mondays,
			factory:  condition.EvenISOWeek(),
			expected: []calendar.Date{date(2010, 1, 11), date(2010, 1, 25), date(2010, 2, 8)},
		},
		{
			name:     "day of year",
			factory:  condition.OnDayOfYear(60),
			expected: []calendar.Date{date(2010, 3, 1), date(2011, 3, 1), date(2012, 2, 29)},
		},
		{
			name:  "and",
			child: mondays,
			factory: condition.And(condition.EvenISOWeek(),
				condition.Stateless(func(d calendar.Date) bool { return d.Month == 2 })),
			expected: []calendar.Date{date(2010, 2, 8), date(2010, 2, 22), date(2011, 2, 7)},
		},
		{
			name:  "or",
			child: condition.MustConstrained(condition.Day(1)),
			factory: condition.Or(condition.OnDayOfYear(1),
				condition.Stateless(func(d calendar.Date) bool { return d.Month == 7 })),
			expected: []calendar.Date{date(2010, 1, 1), date(2010, 7, 1), date(2011, 1, 1)},
		},
		{
			name:     "not",
			child:    mondays,
			factory:  condition.Not(condition.EveryNth(3)),
			expected: []calendar.Date{date(2010, 1, 4), date(2010, 1, 11), date(2010, 1, 25)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := must(condition.NewSatisfy(tt.child, tt.factory))
			assert.Equal(t, take(t, cond.Scan(date(2010, 1, 1)), len(tt.expected)), tt.expected)
		})
	}
}
