package condition_test

import (
	"testing"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/condition"
	"github.com/reugn/go-remind/internal/assert"
)

func TestFixed(t *testing.T) {
	t.Parallel()
	d := date(2010, 9, 1)
	tests := []struct {
		name     string
		weekdays []calendar.Weekday
		start    calendar.Date
		forward  []calendar.Date
		backward []calendar.Date
	}{
		{"before", nil, date(2010, 8, 1), []calendar.Date{d}, nil},
		{"on", nil, d, []calendar.Date{d}, []calendar.Date{d}},
		{"after", nil, date(2010, 10, 1), nil, []calendar.Date{d}},
		{"weekday match", []calendar.Weekday{calendar.Monday, calendar.Wednesday}, d,
			[]calendar.Date{d}, []calendar.Date{d}},
		{"weekday mismatch", []calendar.Weekday{calendar.Tuesday}, d, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := condition.NewFixed(d, tt.weekdays...)
			assert.True(t, cond.Finite())
			assert.Equal(t, collect(t, cond.Scan(tt.start)), tt.forward)
			assert.Equal(t, collect(t, cond.ScanBack(tt.start)), tt.backward)
		})
	}
}

func TestFixedOn(t *testing.T) {
	t.Parallel()
	d := date(2010, 9, 1)
	assert.Equal(t, collect(t, condition.NewFixedOn(d, nil).Scan(d)), []calendar.Date{d})
	assert.Equal(t, collect(t, condition.NewFixedOn(d, []calendar.Weekday{calendar.Wednesday}).Scan(d)),
		[]calendar.Date{d})
	assert.Equal(t, len(collect(t, condition.NewFixedOn(d, []calendar.Weekday{}).Scan(d))), 0)
	assert.Equal(t, len(collect(t, condition.NewFixedOn(d, []calendar.Weekday{}).ScanBack(d))), 0)
}

func TestIsFinite(t *testing.T) {
	t.Parallel()
	assert.True(t, condition.IsFinite(condition.NewFixed(startDate)))
	assert.True(t, !condition.IsFinite(every(t, 1)))
	assert.True(t, !condition.IsFinite(condition.NewShift(every(t, 1), 3)))
}

func TestTake(t *testing.T) {
	t.Parallel()
	dates, err := condition.Take(condition.Empty(), 3)
	assert.IsNil(t, err)
	assert.Equal(t, len(dates), 0)

	first, ok, err := condition.First(every(t, 2).Scan(startDate))
	assert.IsNil(t, err)
	assert.True(t, ok)
	assert.Equal(t, first, startDate)
}
