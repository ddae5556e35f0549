package condition

import "github.com/reugn/go-remind/calendar"

// Condition represents a recurrence rule that can enumerate its matching
// dates in both directions.
type Condition interface {
	// Scan returns the matching dates at or after start, in strictly
	// increasing order.
	Scan(start calendar.Date) Iterator

	// ScanBack returns the matching dates at or before start, in strictly
	// decreasing order.
	ScanBack(start calendar.Date) Iterator
}

// Iterator is a single-use, lazily evaluated sequence of dates.
// It holds no external resources and may be abandoned at any point.
type Iterator interface {
	// Next returns the next date of the sequence. It returns false when
	// the sequence is exhausted or stopped with an error.
	Next() (calendar.Date, bool)

	// Err returns the error that stopped the sequence, if any.
	Err() error
}

// Finite is implemented by conditions that can tell whether their set of
// matching dates is provably finite.
type Finite interface {
	Finite() bool
}

// IsFinite reports whether the condition is provably finite.
func IsFinite(cond Condition) bool {
	if f, ok := cond.(Finite); ok {
		return f.Finite()
	}
	return false
}

// Direction selects the scan direction of a condition.
type Direction int8

const (
	// Forward scans toward the future.
	Forward Direction = iota

	// Backward scans toward the past.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// scan runs the condition in the given direction.
func scan(cond Condition, start calendar.Date, dir Direction) Iterator {
	if dir == Backward {
		return cond.ScanBack(start)
	}
	return cond.Scan(start)
}

// Take returns at most n leading dates of the iterator.
func Take(it Iterator, n int) ([]calendar.Date, error) {
	dates := make([]calendar.Date, 0, n)
	for len(dates) < n {
		d, ok := it.Next()
		if !ok {
			break
		}
		dates = append(dates, d)
	}
	return dates, it.Err()
}

// Collect drains the iterator. It must only be used on finite sequences.
func Collect(it Iterator) ([]calendar.Date, error) {
	var dates []calendar.Date
	for {
		d, ok := it.Next()
		if !ok {
			return dates, it.Err()
		}
		dates = append(dates, d)
	}
}

// First returns the first date of the iterator.
func First(it Iterator) (calendar.Date, bool, error) {
	d, ok := it.Next()
	return d, ok, it.Err()
}

// Empty returns an iterator without dates.
func Empty() Iterator {
	return emptyIterator{}
}

type emptyIterator struct{}

func (emptyIterator) Next() (calendar.Date, bool) { return calendar.Date{}, false }
func (emptyIterator) Err() error                  { return nil }

// errorIterator is an exhausted iterator carrying an error.
type errorIterator struct {
	err error
}

func (it errorIterator) Next() (calendar.Date, bool) { return calendar.Date{}, false }
func (it errorIterator) Err() error                  { return it.err }

// sliceIterator yields the dates of a slice in order.
type sliceIterator struct {
	dates []calendar.Date
	err   error
}

// newStackIterator yields the dates of the slice in reverse order,
// followed by the error, if any.
func newStackIterator(dates []calendar.Date, err error) *sliceIterator {
	reversed := make([]calendar.Date, len(dates))
	for i, d := range dates {
		reversed[len(dates)-1-i] = d
	}
	return &sliceIterator{dates: reversed, err: err}
}

func (it *sliceIterator) Next() (calendar.Date, bool) {
	if len(it.dates) == 0 {
		return calendar.Date{}, false
	}
	d := it.dates[0]
	it.dates = it.dates[1:]
	return d, true
}

func (it *sliceIterator) Err() error {
	if len(it.dates) != 0 {
		return nil
	}
	return it.err
}

// chainIterator yields the dates of its iterators one after another,
// stopping at the first error.
type chainIterator struct {
	its []Iterator
	err error
}

func chain(its ...Iterator) *chainIterator {
	return &chainIterator{its: its}
}

func (it *chainIterator) Next() (calendar.Date, bool) {
	for len(it.its) > 0 && it.err == nil {
		if d, ok := it.its[0].Next(); ok {
			return d, true
		}
		it.err = it.its[0].Err()
		it.its = it.its[1:]
	}
	return calendar.Date{}, false
}

func (it *chainIterator) Err() error {
	return it.err
}

// mapIterator transforms the dates of the source.
type mapIterator struct {
	src Iterator
	fn  func(calendar.Date) calendar.Date
}

func (it *mapIterator) Next() (calendar.Date, bool) {
	d, ok := it.src.Next()
	if !ok {
		return calendar.Date{}, false
	}
	return it.fn(d), true
}

func (it *mapIterator) Err() error {
	return it.src.Err()
}

// dropWhile skips the leading dates satisfying the predicate.
type dropWhileIterator struct {
	src     Iterator
	pred    func(calendar.Date) bool
	dropped bool
}

func (it *dropWhileIterator) Next() (calendar.Date, bool) {
	for {
		d, ok := it.src.Next()
		if !ok {
			return calendar.Date{}, false
		}
		if it.dropped || !it.pred(d) {
			it.dropped = true
			return d, true
		}
	}
}

func (it *dropWhileIterator) Err() error {
	return it.src.Err()
}

// takeWhileIterator stops at the first date not satisfying the predicate.
type takeWhileIterator struct {
	src  Iterator
	pred func(calendar.Date) bool
	done bool
}

func (it *takeWhileIterator) Next() (calendar.Date, bool) {
	if it.done {
		return calendar.Date{}, false
	}
	d, ok := it.src.Next()
	if !ok || !it.pred(d) {
		it.done = true
		return calendar.Date{}, false
	}
	return d, true
}

func (it *takeWhileIterator) Err() error {
	return it.src.Err()
}

// notBefore returns the predicate "d is on the near side of bound" for the
// given direction: d >= bound forward, d <= bound backward.
func notBefore(bound calendar.Date, dir Direction) func(calendar.Date) bool {
	if dir == Backward {
		return func(d calendar.Date) bool { return !d.After(bound) }
	}
	return func(d calendar.Date) bool { return !d.Before(bound) }
}

// strictlyBefore returns the predicate "d comes strictly before bound in
// the scan order": d < bound forward, d > bound backward.
func strictlyBefore(bound calendar.Date, dir Direction) func(calendar.Date) bool {
	if dir == Backward {
		return func(d calendar.Date) bool { return d.After(bound) }
	}
	return func(d calendar.Date) bool { return d.Before(bound) }
}

// opposite returns the reverse direction.
func (d Direction) opposite() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

// unit returns the day step of the direction.
func (d Direction) unit() int {
	if d == Backward {
		return -1
	}
	return 1
}
