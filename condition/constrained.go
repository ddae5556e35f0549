package condition

import (
	"fmt"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/internal/csm"
)

// Constrained matches the dates whose year, month and day equal the fixed
// values, where any of them may be left free, and whose weekday belongs to
// an optional weekday set.
//
// Weekdays only filter the dates selected by the other fields: a Constrained
// condition with Day(13) and Weekdays(calendar.Friday) matches every Friday
// the 13th.
type Constrained struct {
	fields csm.Fields

	// the empty weekday set and impossible fixed days match nothing
	never bool

	// the single match when year, month and day are all fixed
	single   calendar.Date
	isSingle bool
}

var (
	_ Condition = (*Constrained)(nil)
	_ Finite    = (*Constrained)(nil)
)

// Option configures a Constrained condition.
type Option func(*constrainedOptions) error

type constrainedOptions struct {
	fields      csm.Fields
	weekdays    []calendar.Weekday
	weekdaysSet bool
}

// Year fixes the year.
func Year(year int) Option {
	return func(o *constrainedOptions) error {
		o.fields.Year = csm.Fixed(year)
		return nil
	}
}

// Month fixes the month, 1 through 12.
func Month(month int) Option {
	return func(o *constrainedOptions) error {
		if month < 1 || month > 12 {
			return illegalArgumentError(fmt.Sprintf("month %d out of range", month))
		}
		o.fields.Month = csm.Fixed(month)
		return nil
	}
}

// Day fixes the day of the month, 1 through 31.
func Day(day int) Option {
	return func(o *constrainedOptions) error {
		if day < 1 || day > 31 {
			return illegalArgumentError(fmt.Sprintf("day %d out of range", day))
		}
		o.fields.Day = csm.Fixed(day)
		return nil
	}
}

// Weekdays restricts the matching days of the week. Calling it without
// arguments yields a condition that never matches.
func Weekdays(weekdays ...calendar.Weekday) Option {
	return func(o *constrainedOptions) error {
		o.weekdays = append(o.weekdays[:0], weekdays...)
		o.weekdaysSet = true
		return nil
	}
}

// WithPolicy sets how non-existent dates such as February 30 are handled.
// The default is calendar.Wrap.
func WithPolicy(policy calendar.Policy) Option {
	return func(o *constrainedOptions) error {
		if policy < calendar.Wrap || policy > calendar.Raise {
			return illegalArgumentError(fmt.Sprintf("unknown policy %d", policy))
		}
		o.fields.Policy = policy
		return nil
	}
}

// NewConstrained returns a new Constrained condition.
// A fully fixed non-existent date is an error under calendar.Raise.
func NewConstrained(opts ...Option) (*Constrained, error) {
	var o constrainedOptions
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	c := &Constrained{fields: o.fields}
	if o.weekdaysSet {
		set, err := calendar.NewWeekdaySet(o.weekdays...)
		if err != nil {
			return nil, err
		}
		if set.IsEmpty() {
			c.never = true
		}
		c.fields.Weekdays = &set
	}

	f := c.fields
	if f.Year.Fixed && f.Month.Fixed && f.Day.Fixed {
		candidate := calendar.Triple{Year: f.Year.Value, Month: f.Month.Value, Day: f.Day.Value}
		date, ok, err := candidate.Resolve(f.Policy)
		if err != nil {
			return nil, err
		}
		c.single = date
		c.isSingle = ok && c.matchesWeekday(date)
		c.never = c.never || !c.isSingle
	} else if f.Month.Fixed && f.Day.Fixed && f.Policy == calendar.Skip &&
		f.Day.Value > maxDaysIn(f.Month.Value) {
		c.never = true
	}
	return c, nil
}

// MustConstrained is like NewConstrained but panics on error.
func MustConstrained(opts ...Option) *Constrained {
	c, err := NewConstrained(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Scan implements the Condition interface.
func (c *Constrained) Scan(start calendar.Date) Iterator {
	return c.scan(start, false)
}

// ScanBack implements the Condition interface.
func (c *Constrained) ScanBack(start calendar.Date) Iterator {
	return c.scan(start, true)
}

// Finite reports whether the condition has finitely many matches.
func (c *Constrained) Finite() bool {
	return c.never || c.fields.Year.Fixed
}

// String returns a readable form of the condition.
func (c *Constrained) String() string {
	field := func(f csm.Field) string {
		if !f.Fixed {
			return "*"
		}
		return fmt.Sprint(f.Value)
	}
	s := fmt.Sprintf("Constrained(%s-%s-%s", field(c.fields.Year),
		field(c.fields.Month), field(c.fields.Day))
	if c.fields.Weekdays != nil {
		s += " " + c.fields.Weekdays.String()
	}
	return s + " " + c.fields.Policy.String() + ")"
}

func (c *Constrained) scan(start calendar.Date, back bool) Iterator {
	switch {
	case c.never:
		return Empty()
	case c.isSingle:
		if !back && start.After(c.single) || back && start.Before(c.single) {
			return Empty()
		}
		return &sliceIterator{dates: []calendar.Date{c.single}}
	case !c.fields.Year.Fixed && !c.fields.Month.Fixed && !c.fields.Day.Fixed:
		return csm.NewDayWalker(start, c.fields.Weekdays, back)
	}
	return csm.NewStateMachine(c.fields, start, back)
}

func (c *Constrained) matchesWeekday(d calendar.Date) bool {
	return c.fields.Weekdays == nil || c.fields.Weekdays.Contains(d.Weekday())
}

// maxDaysIn returns the length of the month in a leap year.
func maxDaysIn(month int) int {
	return calendar.DaysIn(2000, month)
}
