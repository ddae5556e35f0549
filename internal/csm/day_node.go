package csm

import "github.com/reugn/go-remind/calendar"

// fixedDayNode produces the resolved fixed day once per (year, month).
// It cannot move past its month on its own: after one candidate it
// requests the next (year, month) from the month level.
type fixedDayNode struct {
	day      int
	ym       yearMonth
	pending  bool
	weekdays *calendar.WeekdaySet
	policy   calendar.Policy
}

var _ dayNode = (*fixedDayNode)(nil)

func newFixedDayNode(start calendar.Triple, fields Fields) *fixedDayNode {
	return &fixedDayNode{
		day:      fields.Day.Value,
		ym:       yearMonth{start.Year, start.Month},
		pending:  true,
		weekdays: fields.Weekdays,
		policy:   fields.Policy,
	}
}

func (n *fixedDayNode) advance(carry *yearMonth) output {
	if carry != nil {
		n.ym = *carry
		n.pending = true
	}
	if !n.pending {
		return output{kind: requested}
	}
	n.pending = false

	candidate := calendar.Triple{Year: n.ym.year, Month: n.ym.month, Day: n.day}
	date, ok, err := candidate.Resolve(n.policy)
	switch {
	case err != nil:
		return output{kind: failed, err: err}
	case !ok:
		return output{kind: skipped}
	case n.weekdays != nil && !n.weekdays.Contains(date.Weekday()):
		return output{kind: skipped}
	}
	return output{kind: emitted, date: date}
}

// freeDayNode walks the days of the current month, optionally restricted
// to a weekday set. When the next candidate leaves the month it requests a
// new (year, month); if the carry differs from the naive continuation, the
// walk restarts at the boundary of the supplied month.
type freeDayNode struct {
	stepper dayStepper
	ym      yearMonth
	next    calendar.Date
	dir     direction
}

var _ dayNode = (*freeDayNode)(nil)

// newFreeDayNode expects a valid start date; free days are always
// inherited from a real date or set to a month boundary.
func newFreeDayNode(start calendar.Date, fields Fields, back bool) *freeDayNode {
	stepper := newStepper(fields.Weekdays, back)
	return &freeDayNode{
		stepper: stepper,
		ym:      yearMonth{start.Year, start.Month},
		next:    stepper.align(start),
		dir:     directionOf(back),
	}
}

func (n *freeDayNode) advance(carry *yearMonth) output {
	if carry != nil {
		if !carry.contains(n.next) {
			n.next = n.stepper.align(n.boundary(*carry))
		}
		n.ym = *carry
	}
	if !n.ym.contains(n.next) {
		return output{kind: requested}
	}
	date := n.next
	n.next = n.stepper.step()
	return output{kind: emitted, date: date}
}

// boundary returns the first day of the month when scanning forward and
// the last one when scanning backward.
func (n *freeDayNode) boundary(ym yearMonth) calendar.Date {
	if n.dir.delta < 0 {
		return calendar.LastDayOfMonth(ym.year, ym.month)
	}
	return calendar.FirstDayOfMonth(ym.year, ym.month)
}
