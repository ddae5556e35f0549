package csm

import "github.com/reugn/go-remind/calendar"

// StateMachine enumerates the dates matching a Fields pattern, starting
// from a given date, in one direction. It holds plain values only and may
// be abandoned at any point.
type StateMachine struct {
	year  yearNode
	month monthNode
	day   dayNode

	carry *yearMonth
	done  bool
	err   error
}

// NewStateMachine returns a StateMachine positioned at the first candidate
// consistent with the fields. At least one of the year, month and day
// fields is expected to be fixed, and the weekday set, if any, to be
// non-empty. A machine without candidates is returned exhausted.
func NewStateMachine(fields Fields, start calendar.Date, back bool) *StateMachine {
	first, ok := findStart(fields, start, back)
	if !ok {
		return &StateMachine{done: true}
	}
	dir := directionOf(back)

	csm := &StateMachine{}
	if fields.Year.Fixed {
		csm.year = fixedYearNode{}
	} else {
		csm.year = &freeYearNode{year: first.Year, dir: dir}
	}

	if fields.Month.Fixed {
		csm.month = &fixedMonthNode{month: fields.Month.Value}
	} else {
		csm.month = &freeMonthNode{year: first.Year, month: first.Month, dir: dir}
	}

	if fields.Day.Fixed {
		csm.day = newFixedDayNode(first, fields)
	} else {
		// free days are always taken from a real date or a month bound
		csm.day = newFreeDayNode(calendar.Date(first), fields, back)
	}
	return csm
}

// Next returns the next matching date, or false when the sequence is
// exhausted or an error occurred.
func (csm *StateMachine) Next() (calendar.Date, bool) {
	for !csm.done {
		out := csm.day.advance(csm.carry)
		csm.carry = nil

		switch out.kind {
		case emitted:
			return out.date, true
		case skipped:
			continue
		case failed:
			csm.err = out.err
			csm.done = true
			continue
		}

		ym, ok := csm.nextMonth()
		if !ok {
			csm.done = true
			continue
		}
		csm.carry = &ym
	}
	return calendar.Date{}, false
}

// Err returns the error that stopped the machine, if any.
func (csm *StateMachine) Err() error {
	return csm.err
}

// nextMonth cascades a request of the day level up through the month and
// year levels.
func (csm *StateMachine) nextMonth() (yearMonth, bool) {
	ym, kind := csm.month.advance(nil)
	if kind != requested {
		return ym, true
	}
	year, ok := csm.year.advance()
	if !ok {
		return yearMonth{}, false
	}
	ym, _ = csm.month.advance(&year)
	return ym, true
}

// DayWalker enumerates every day, optionally restricted to a weekday set,
// without bound in one direction.
type DayWalker struct {
	stepper dayStepper
	next    calendar.Date
}

// NewDayWalker returns a DayWalker starting at start. The weekday set, if
// not nil, must not be empty.
func NewDayWalker(start calendar.Date, weekdays *calendar.WeekdaySet, back bool) *DayWalker {
	stepper := newStepper(weekdays, back)
	return &DayWalker{stepper: stepper, next: stepper.align(start)}
}

// Next returns the next day of the walk.
func (w *DayWalker) Next() (calendar.Date, bool) {
	date := w.next
	w.next = w.stepper.step()
	return date, true
}

// Err always returns nil.
func (w *DayWalker) Err() error {
	return nil
}
