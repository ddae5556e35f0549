package condition

import (
	"slices"

	"github.com/reugn/go-remind/calendar"
)

// Fixed matches a single concrete date.
type Fixed struct {
	date  calendar.Date
	never bool
}

var (
	_ Condition = (*Fixed)(nil)
	_ Finite    = (*Fixed)(nil)
)

// NewFixed returns a condition matching only date. When weekdays are given,
// the condition never matches unless the date falls on one of them.
func NewFixed(date calendar.Date, weekdays ...calendar.Weekday) *Fixed {
	if len(weekdays) == 0 {
		return &Fixed{date: date}
	}
	return NewFixedOn(date, weekdays)
}

// NewFixedOn returns a condition matching date if it falls on one of the
// weekdays. A nil weekday list admits any weekday, an empty one none.
func NewFixedOn(date calendar.Date, weekdays []calendar.Weekday) *Fixed {
	f := &Fixed{date: date}
	if weekdays != nil {
		f.never = !slices.Contains(weekdays, date.Weekday())
	}
	return f
}

// Date returns the matched date and whether the weekday filter admits it.
func (f *Fixed) Date() (calendar.Date, bool) {
	return f.date, !f.never
}

// Scan implements the Condition interface.
func (f *Fixed) Scan(start calendar.Date) Iterator {
	if f.never || f.date.Before(start) {
		return Empty()
	}
	return &sliceIterator{dates: []calendar.Date{f.date}}
}

// ScanBack implements the Condition interface.
func (f *Fixed) ScanBack(start calendar.Date) Iterator {
	if f.never || f.date.After(start) {
		return Empty()
	}
	return &sliceIterator{dates: []calendar.Date{f.date}}
}

// Finite always returns true.
func (f *Fixed) Finite() bool {
	return true
}

// String returns a readable form of the condition.
func (f *Fixed) String() string {
	if f.never {
		return "Fixed(never)"
	}
	return "Fixed(" + f.date.String() + ")"
}
