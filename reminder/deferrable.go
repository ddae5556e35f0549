package reminder

import (
	"fmt"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/condition"
	"github.com/reugn/go-remind/runner"
)

// Deferrable wraps a condition with the date it was last done.
//
// The matches at or before the done date are dropped. In ModeRemind a
// forward scan first reports the last undone match before the scan start,
// unless the next match already falls within the advance warning. This is
// the only condition that yields a date before the scan start.
type Deferrable struct {
	cond condition.Condition
	mode runner.Mode
	done calendar.Date
	warn int
}

var (
	_ condition.Condition = (*Deferrable)(nil)
	_ condition.Finite    = (*Deferrable)(nil)
)

// NewDeferrable returns a new Deferrable condition. A zero done date means
// the reminder was never done.
func NewDeferrable(cond condition.Condition, mode runner.Mode, done calendar.Date,
	warn int) (*Deferrable, error) {
	if cond == nil {
		return nil, illegalArgumentError("condition is nil")
	}
	if warn < 0 {
		return nil, illegalArgumentError(fmt.Sprintf("negative advance warning %d", warn))
	}
	return newDeferrable(cond, mode, done, warn), nil
}

func newDeferrable(cond condition.Condition, mode runner.Mode, done calendar.Date,
	warn int) *Deferrable {
	return &Deferrable{cond: cond, mode: mode, done: done, warn: warn}
}

// Scan implements the condition.Condition interface.
func (d *Deferrable) Scan(start calendar.Date) condition.Iterator {
	return &deferredIterator{d: d, start: start, it: d.cond.Scan(start)}
}

// ScanBack yields the matches of the wrapped condition after the done date.
func (d *Deferrable) ScanBack(start calendar.Date) condition.Iterator {
	return &undoneBackIterator{done: d.done, it: d.cond.ScanBack(start)}
}

// Finite implements the condition.Finite interface.
func (d *Deferrable) Finite() bool {
	return condition.IsFinite(d.cond)
}

func (d *Deferrable) String() string {
	return fmt.Sprintf("Deferrable(%v done %v)", d.cond, d.done)
}

// isDone reports whether a match is covered by the done date.
func (d *Deferrable) isDone(date calendar.Date) bool {
	return !d.done.IsZero() && !date.After(d.done)
}

type deferredIterator struct {
	d       *Deferrable
	start   calendar.Date
	it      condition.Iterator
	primed  bool
	pending []calendar.Date
	err     error
}

func (it *deferredIterator) Next() (calendar.Date, bool) {
	if !it.primed {
		it.primed = true
		it.prime()
	}
	if len(it.pending) > 0 {
		date := it.pending[0]
		it.pending = it.pending[1:]
		return date, true
	}
	if it.err != nil {
		return calendar.Date{}, false
	}
	return it.next()
}

func (it *deferredIterator) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.it.Err()
}

// prime queues the resurfaced match ahead of the first regular one.
func (it *deferredIterator) prime() {
	if it.d.mode != runner.ModeRemind {
		return
	}
	last, undone, err := condition.First(it.d.cond.ScanBack(it.start.AddDays(-1)))
	if err != nil {
		it.err = err
		return
	}
	undone = undone && !it.d.isDone(last)

	first, found := it.next()
	if undone && (!found || first.After(it.start.AddDays(it.d.warn))) {
		it.pending = append(it.pending, last)
	}
	if found {
		it.pending = append(it.pending, first)
	}
}

func (it *deferredIterator) next() (calendar.Date, bool) {
	for {
		date, ok := it.it.Next()
		if !ok || !it.d.isDone(date) {
			return date, ok
		}
	}
}

type undoneBackIterator struct {
	done calendar.Date
	it   condition.Iterator
	stop bool
}

func (it *undoneBackIterator) Next() (calendar.Date, bool) {
	if it.stop {
		return calendar.Date{}, false
	}
	date, ok := it.it.Next()
	if ok && !it.done.IsZero() && !date.After(it.done) {
		it.stop = true
		return calendar.Date{}, false
	}
	return date, ok
}

func (it *undoneBackIterator) Err() error {
	return it.it.Err()
}
