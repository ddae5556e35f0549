package condition_test

import (
	"testing"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/condition"
	"github.com/reugn/go-remind/internal/assert"
)

func date(year, month, day int) calendar.Date {
	return calendar.MustNew(year, month, day)
}

func take(t *testing.T, it condition.Iterator, n int) []calendar.Date {
	t.Helper()
	dates, err := condition.Take(it, n)
	assert.IsNil(t, err)
	return dates
}

func collect(t *testing.T, it condition.Iterator) []calendar.Date {
	t.Helper()
	dates, err := condition.Collect(it)
	assert.IsNil(t, err)
	return dates
}

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// ordered reports whether the dates are strictly monotonic in the scan
// direction and never cross the start date.
func ordered(dates []calendar.Date, start calendar.Date, back bool) bool {
	for i, d := range dates {
		if back && d.After(start) || !back && d.Before(start) {
			return false
		}
		if i == 0 {
			continue
		}
		if back && !d.Before(dates[i-1]) || !back && !d.After(dates[i-1]) {
			return false
		}
	}
	return true
}
