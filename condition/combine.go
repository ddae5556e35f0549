package condition

import (
	"fmt"

	"github.com/reugn/go-remind/calendar"
)

// Combine scans a second condition from every date of a first one.
//
// Every date of the outer condition owns a segment reaching up to the next
// outer date in the inner scan direction, and the inner condition only
// contributes dates within the segment. Segments never overlap, so the
// combined stream stays strictly monotonic. When the inner condition runs in
// the scan direction, the last outer date before the scan start opens the
// first segment, clipped to the start.
type Combine struct {
	outer Condition
	inner Condition
	dir   Direction
}

var _ Condition = (*Combine)(nil)

// NewCombine returns a condition scanning inner from every date of outer.
// The inner condition is scanned forward unless dir is Backward.
func NewCombine(outer, inner Condition, dir Direction) *Combine {
	return &Combine{outer: outer, inner: inner, dir: dir}
}

// Scan implements the Condition interface.
func (c *Combine) Scan(start calendar.Date) Iterator {
	return c.scan(start, Forward)
}

// ScanBack implements the Condition interface.
func (c *Combine) ScanBack(start calendar.Date) Iterator {
	return c.scan(start, Backward)
}

// Finite reports whether every segment is bounded and there are finitely
// many of them.
func (c *Combine) Finite() bool {
	if !IsFinite(c.outer) {
		return false
	}
	return c.dir == Backward || IsFinite(c.inner)
}

// String returns a readable form of the condition.
func (c *Combine) String() string {
	return fmt.Sprintf("Combine(%v, %v, %v)", c.outer, c.inner, c.dir)
}

func (c *Combine) scan(start calendar.Date, dir Direction) Iterator {
	outer := scan(c.outer, start, dir)
	if c.dir != dir {
		return &reversedSegments{
			inner: c.inner,
			outer: outer,
			dir:   dir,
			bound: start.AddDays(-dir.unit()),
		}
	}

	it := &segments{inner: c.inner, outer: outer, dir: dir}
	first, ok := outer.Next()
	if err := outer.Err(); err != nil {
		return errorIterator{err: err}
	}
	it.anchor, it.hasAnchor = first, ok

	if !ok || first != start {
		prev, found, err := First(scan(c.outer, start, dir.opposite()))
		if err != nil {
			return errorIterator{err: err}
		}
		if found {
			var seg Iterator = &dropWhileIterator{
				src:  scan(c.inner, prev, dir),
				pred: strictlyBefore(start, dir),
			}
			if ok {
				seg = &takeWhileIterator{src: seg, pred: strictlyBefore(first, dir)}
			}
			it.segment = seg
		}
	}
	return it
}

// segments runs the inner condition from every outer date in the scan
// direction, up to the next outer date.
type segments struct {
	inner Condition
	outer Iterator
	dir   Direction

	segment   Iterator
	anchor    calendar.Date
	hasAnchor bool
	err       error
}

func (it *segments) Next() (calendar.Date, bool) {
	for it.err == nil {
		if it.segment != nil {
			if d, ok := it.segment.Next(); ok {
				return d, true
			}
			if it.err = it.segment.Err(); it.err != nil {
				break
			}
			it.segment = nil
		}
		if !it.hasAnchor {
			break
		}

		anchor := it.anchor
		it.anchor, it.hasAnchor = it.outer.Next()
		if it.err = it.outer.Err(); it.err != nil {
			break
		}
		it.segment = scan(it.inner, anchor, it.dir)
		if it.hasAnchor {
			it.segment = &takeWhileIterator{
				src:  it.segment,
				pred: strictlyBefore(it.anchor, it.dir),
			}
		}
	}
	return calendar.Date{}, false
}

func (it *segments) Err() error {
	return it.err
}

// reversedSegments runs the inner condition against the scan direction from
// every outer date, back to the previous outer date or the scan start, and
// reverses each segment.
type reversedSegments struct {
	inner Condition
	outer Iterator
	dir   Direction

	// dates must lie strictly past the bound in the scan direction
	bound   calendar.Date
	segment Iterator
	done    bool
	err     error
}

func (it *reversedSegments) Next() (calendar.Date, bool) {
	for !it.done {
		if it.segment != nil {
			if d, ok := it.segment.Next(); ok {
				return d, true
			}
			it.segment = nil
		}

		anchor, ok := it.outer.Next()
		if !ok {
			it.err = it.outer.Err()
			it.done = true
			break
		}
		dates, err := Collect(&takeWhileIterator{
			src:  scan(it.inner, anchor, it.dir.opposite()),
			pred: strictlyBefore(it.bound, it.dir.opposite()),
		})
		if err != nil {
			it.err = err
			it.done = true
			break
		}
		it.bound = anchor
		it.segment = newStackIterator(dates, nil)
	}
	return calendar.Date{}, false
}

func (it *reversedSegments) Err() error {
	return it.err
}
