package condition

import (
	"fmt"

	"github.com/reugn/go-remind/calendar"
)

// Shift moves every date of the underlying condition by a constant number
// of days.
//
// A shift can carry matches of the child from one side of the scan start to
// the other, so the dates crossing the start are recovered by scanning the
// child in the opposite direction first.
type Shift struct {
	child Condition
	days  int
}

var _ Condition = (*Shift)(nil)

// NewShift returns a condition yielding the dates of child moved by days,
// which may be negative.
func NewShift(child Condition, days int) *Shift {
	return &Shift{child: child, days: days}
}

// Scan implements the Condition interface.
func (s *Shift) Scan(start calendar.Date) Iterator {
	return s.scan(start, Forward)
}

// ScanBack implements the Condition interface.
func (s *Shift) ScanBack(start calendar.Date) Iterator {
	return s.scan(start, Backward)
}

// Finite reports whether the child is finite.
func (s *Shift) Finite() bool {
	return IsFinite(s.child)
}

// String returns a readable form of the condition.
func (s *Shift) String() string {
	return fmt.Sprintf("Shift(%v, %+d)", s.child, s.days)
}

func (s *Shift) scan(start calendar.Date, dir Direction) Iterator {
	shifted := func(it Iterator) Iterator {
		if s.days == 0 {
			return it
		}
		return &mapIterator{src: it, fn: func(d calendar.Date) calendar.Date {
			return d.AddDays(s.days)
		}}
	}

	main := shifted(scan(s.child, start, dir))
	// a shift against the scan direction only needs the early dates dropped
	if s.days*dir.unit() <= 0 {
		return &dropWhileIterator{src: main, pred: strictlyBefore(start, dir)}
	}

	// the child's matches behind start that land on the near side of it
	behind := &takeWhileIterator{
		src:  shifted(scan(s.child, start.AddDays(-dir.unit()), dir.opposite())),
		pred: notBefore(start, dir),
	}
	crossing, err := Collect(behind)
	if err != nil {
		return errorIterator{err: err}
	}
	return chain(newStackIterator(crossing, nil), main)
}
