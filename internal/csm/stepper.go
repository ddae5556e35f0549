package csm

import "github.com/reugn/go-remind/calendar"

// dayStepper walks the allowed days of the week in one direction.
type dayStepper interface {
	// align returns the nearest allowed date at or after d (at or before d
	// when scanning backward) and makes it the stepping position.
	align(d calendar.Date) calendar.Date

	// step moves to the next allowed date in the scan direction.
	step() calendar.Date
}

func newStepper(weekdays *calendar.WeekdaySet, back bool) dayStepper {
	if weekdays == nil {
		return &plainStepper{dir: directionOf(back)}
	}
	return &weekdayStepper{set: *weekdays, back: back}
}

// plainStepper visits every day.
type plainStepper struct {
	last calendar.Date
	dir  direction
}

var _ dayStepper = (*plainStepper)(nil)

func (s *plainStepper) align(d calendar.Date) calendar.Date {
	s.last = d
	return d
}

func (s *plainStepper) step() calendar.Date {
	s.last = s.last.AddDays(s.dir.delta)
	return s.last
}

// weekdayStepper jumps between the members of a weekday set using the
// precomputed cyclic offsets, positioning itself with a binary search.
type weekdayStepper struct {
	set  calendar.WeekdaySet
	back bool
	// index of the offset applied by the next step
	idx  int
	last calendar.Date
}

var _ dayStepper = (*weekdayStepper)(nil)

func (s *weekdayStepper) align(d calendar.Date) calendar.Date {
	n := s.set.Len()
	weekday := d.Weekday()

	var i, increment int
	if !s.back {
		i = s.set.SearchFirst(weekday)
		if i == n {
			increment = 7
		}
		i %= n
		s.idx = i
	} else {
		i = s.set.SearchAfter(weekday)
		if i == 0 {
			increment = -7
		}
		i = mod(i-1, n)
		s.idx = mod(i-1, n)
	}
	increment += int(s.set.At(i)) - int(weekday)

	s.last = d.AddDays(increment)
	return s.last
}

func (s *weekdayStepper) step() calendar.Date {
	offset := s.set.Offset(s.idx)
	if !s.back {
		s.last = s.last.AddDays(offset)
		s.idx = (s.idx + 1) % s.set.Len()
	} else {
		s.last = s.last.AddDays(-offset)
		s.idx = mod(s.idx-1, s.set.Len())
	}
	return s.last
}

// mod returns the non-negative remainder of a divided by b.
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
