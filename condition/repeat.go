package condition

import (
	"fmt"

	"github.com/reugn/go-remind/calendar"
)

// Every matches every period-th day counted from the scan start in the scan
// direction. It is meant to be the inner operand of a Combine.
type Every struct {
	period int
}

var _ Condition = (*Every)(nil)

// NewEvery returns a new Every condition. The sign of period is ignored.
func NewEvery(period int) (*Every, error) {
	if period == 0 {
		return nil, illegalArgumentError("period must not be zero")
	}
	if period < 0 {
		period = -period
	}
	return &Every{period: period}, nil
}

// Scan implements the Condition interface.
func (e *Every) Scan(start calendar.Date) Iterator {
	return &stepIterator{next: start, step: e.period}
}

// ScanBack implements the Condition interface.
func (e *Every) ScanBack(start calendar.Date) Iterator {
	return &stepIterator{next: start, step: -e.period}
}

// String returns a readable form of the condition.
func (e *Every) String() string {
	return fmt.Sprintf("Every(%d)", e.period)
}

// Repeat matches the earliest date of a finite anchor condition and every
// period-th day after it.
type Repeat struct {
	anchor calendar.Date
	period int
	empty  bool
}

var _ Condition = (*Repeat)(nil)

// NewRepeat returns a new Repeat condition. The anchor must be provably
// finite and the period positive.
func NewRepeat(anchor Condition, period int) (*Repeat, error) {
	if period <= 0 {
		return nil, illegalArgumentError(fmt.Sprintf("period %d must be positive", period))
	}
	if !IsFinite(anchor) {
		return nil, fmt.Errorf("%w: %v", ErrInfiniteAnchor, anchor)
	}
	first, ok, err := First(anchor.Scan(calendar.MinDate))
	if err != nil {
		return nil, err
	}
	return &Repeat{anchor: first, period: period, empty: !ok}, nil
}

// Anchor returns the first matching date and false if the anchor condition
// has no matches.
func (r *Repeat) Anchor() (calendar.Date, bool) {
	return r.anchor, !r.empty
}

// Scan implements the Condition interface.
func (r *Repeat) Scan(start calendar.Date) Iterator {
	if r.empty {
		return Empty()
	}
	next := r.anchor
	if elapsed := r.anchor.DaysUntil(start); elapsed > 0 {
		steps := (elapsed + r.period - 1) / r.period
		next = r.anchor.AddDays(steps * r.period)
	}
	return &stepIterator{next: next, step: r.period}
}

// ScanBack implements the Condition interface.
func (r *Repeat) ScanBack(start calendar.Date) Iterator {
	elapsed := r.anchor.DaysUntil(start)
	if r.empty || elapsed < 0 {
		return Empty()
	}
	next := r.anchor.AddDays(elapsed / r.period * r.period)
	return &takeWhileIterator{
		src:  &stepIterator{next: next, step: -r.period},
		pred: notBefore(r.anchor, Forward),
	}
}

// String returns a readable form of the condition.
func (r *Repeat) String() string {
	if r.empty {
		return "Repeat(never)"
	}
	return fmt.Sprintf("Repeat(%v, %d)", r.anchor, r.period)
}

// stepIterator counts days without end.
type stepIterator struct {
	next calendar.Date
	step int
}

func (it *stepIterator) Next() (calendar.Date, bool) {
	d := it.next
	it.next = d.AddDays(it.step)
	return d, true
}

func (it *stepIterator) Err() error {
	return nil
}
