package csm

import "github.com/reugn/go-remind/calendar"

// Field is an optional constraint on a single calendar field.
type Field struct {
	Value int
	Fixed bool
}

// Fixed returns a Field pinned to the given value.
func Fixed(value int) Field {
	return Field{Value: value, Fixed: true}
}

// Free is a Field without a constraint.
var Free = Field{}

// Fields describes the pattern enumerated by a StateMachine.
type Fields struct {
	Year  Field
	Month Field
	Day   Field

	// Weekdays restricts the matching days of the week when not nil.
	Weekdays *calendar.WeekdaySet

	Policy calendar.Policy
}

// yearMonth is the carry passed from the month level to the day level.
type yearMonth struct {
	year  int
	month int
}

func (ym yearMonth) contains(d calendar.Date) bool {
	return d.Year == ym.year && d.Month == ym.month
}

type outputKind int8

const (
	// emitted carries a matching date
	emitted outputKind = iota
	// skipped means a candidate was consumed without producing a date
	skipped
	// requested means the level needs a new carry from its parent
	requested
	// failed carries a resolution error
	failed
)

type output struct {
	kind outputKind
	date calendar.Date
	err  error
}

// dayNode is the least significant level.
type dayNode interface {
	// advance resumes the level, optionally with a new (year, month) carry
	// supplied by the month level after a request.
	advance(carry *yearMonth) output
}

// monthNode is the middle level.
type monthNode interface {
	// advance returns the next (year, month) for the day level. When the
	// level wraps around it reports requested, and must be resumed with
	// the new year as the carry.
	advance(carry *int) (yearMonth, outputKind)
}

// yearNode is the most significant level.
type yearNode interface {
	// advance returns the next year, or false when no year remains.
	advance() (int, bool)
}
