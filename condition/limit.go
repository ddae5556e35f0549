package condition

import (
	"fmt"

	"github.com/reugn/go-remind/calendar"
)

// Limit bounds the dates of a child condition by an inclusive range and a
// maximum number of matches per scan.
type Limit struct {
	child Condition
	from  *calendar.Date
	until *calendar.Date
	count int // negative when unlimited
}

var (
	_ Condition = (*Limit)(nil)
	_ Finite    = (*Limit)(nil)
)

// LimitOption configures a Limit condition.
type LimitOption func(*Limit) error

// LimitFrom drops the dates before from.
func LimitFrom(from calendar.Date) LimitOption {
	return func(l *Limit) error {
		l.from = &from
		return nil
	}
}

// LimitUntil drops the dates after until.
func LimitUntil(until calendar.Date) LimitOption {
	return func(l *Limit) error {
		l.until = &until
		return nil
	}
}

// LimitCount stops every scan after count dates.
func LimitCount(count int) LimitOption {
	return func(l *Limit) error {
		if count < 0 {
			return illegalArgumentError(fmt.Sprintf("negative count %d", count))
		}
		l.count = count
		return nil
	}
}

// NewLimit returns a new Limit condition.
func NewLimit(child Condition, opts ...LimitOption) (*Limit, error) {
	l := &Limit{child: child, count: -1}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	if l.from != nil && l.until != nil && l.from.After(*l.until) {
		return nil, illegalArgumentError(fmt.Sprintf("from %v is after until %v",
			*l.from, *l.until))
	}
	return l, nil
}

// Scan implements the Condition interface.
func (l *Limit) Scan(start calendar.Date) Iterator {
	if l.from != nil {
		start = calendar.Max(start, *l.from)
	}
	return l.bound(l.child.Scan(start), l.until, Forward)
}

// ScanBack implements the Condition interface.
func (l *Limit) ScanBack(start calendar.Date) Iterator {
	if l.until != nil {
		start = calendar.Min(start, *l.until)
	}
	return l.bound(l.child.ScanBack(start), l.from, Backward)
}

// Finite reports whether the bounds or the child make the condition finite.
func (l *Limit) Finite() bool {
	return l.count >= 0 || l.from != nil && l.until != nil || IsFinite(l.child)
}

// String returns a readable form of the condition.
func (l *Limit) String() string {
	s := fmt.Sprintf("Limit(%v", l.child)
	if l.from != nil {
		s += " from " + l.from.String()
	}
	if l.until != nil {
		s += " until " + l.until.String()
	}
	if l.count >= 0 {
		s += fmt.Sprintf(" count %d", l.count)
	}
	return s + ")"
}

func (l *Limit) bound(it Iterator, end *calendar.Date, dir Direction) Iterator {
	if end != nil {
		// stop at the first date past the end bound
		it = &takeWhileIterator{src: it, pred: notBefore(*end, dir.opposite())}
	}
	if l.count >= 0 {
		it = &countIterator{src: it, left: l.count}
	}
	return it
}

// countIterator stops after a number of dates.
type countIterator struct {
	src  Iterator
	left int
}

func (it *countIterator) Next() (calendar.Date, bool) {
	if it.left <= 0 {
		return calendar.Date{}, false
	}
	it.left--
	return it.src.Next()
}

func (it *countIterator) Err() error {
	return it.src.Err()
}
