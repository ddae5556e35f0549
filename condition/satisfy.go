package condition

import "github.com/reugn/go-remind/calendar"

// Satisfy filters the dates of a child condition, or of all calendar days
// when there is no child, with a predicate.
type Satisfy struct {
	child   Condition
	factory PredicateFactory
}

var _ Condition = (*Satisfy)(nil)

// NewSatisfy returns a new Satisfy condition. A nil child enumerates every
// day. Each scan builds its own predicate from the factory.
func NewSatisfy(child Condition, factory PredicateFactory) (*Satisfy, error) {
	if factory == nil {
		return nil, illegalArgumentError("nil predicate")
	}
	return &Satisfy{child: child, factory: factory}, nil
}

// Scan implements the Condition interface.
func (s *Satisfy) Scan(start calendar.Date) Iterator {
	return s.scan(start, Forward)
}

// ScanBack implements the Condition interface.
func (s *Satisfy) ScanBack(start calendar.Date) Iterator {
	return s.scan(start, Backward)
}

// Finite reports whether the child is finite.
func (s *Satisfy) Finite() bool {
	return s.child != nil && IsFinite(s.child)
}

func (s *Satisfy) scan(start calendar.Date, dir Direction) Iterator {
	var src Iterator
	if s.child == nil {
		src = &stepIterator{next: start, step: dir.unit()}
	} else {
		src = scan(s.child, start, dir)
	}
	return &filterIterator{src: src, pred: s.factory()}
}

// filterIterator yields the dates of the source accepted by the predicate.
type filterIterator struct {
	src  Iterator
	pred Predicate
}

func (it *filterIterator) Next() (calendar.Date, bool) {
	for {
		d, ok := it.src.Next()
		if !ok {
			return calendar.Date{}, false
		}
		if it.pred(d) {
			return d, true
		}
	}
}

func (it *filterIterator) Err() error {
	return it.src.Err()
}
