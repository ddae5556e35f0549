package calendar

import (
	"fmt"
	"time"
)

const isoLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// MinDate is the earliest representable date, January 1 of year 1.
var MinDate = Date{1, 1, 1}

// Date is a valid proleptic Gregorian calendar date.
// The zero value is not a valid date; use [Date.IsZero] to detect it.
type Date struct {
	Year  int
	Month int
	Day   int
}

// New returns the Date for the given components, or an error if they do
// not denote an existing calendar day.
func New(year, month, day int) (Date, error) {
	if !IsValid(year, month, day) {
		return Date{}, invalidDateError(year, month, day)
	}
	return Date{year, month, day}, nil
}

// MustNew is like New but panics if the date is invalid.
func MustNew(year, month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the Date of t in its own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{y, int(m), d}
}

// Today returns the current date in the local time zone.
func Today() Date {
	return FromTime(time.Now())
}

// Parse parses an ISO 8601 date in the YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return makeDateTime(d.Year, d.Month, d.Day)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Weekday returns the day of the week, Monday being 0.
func (d Date) Weekday() Weekday {
	return weekdayOf(d.Time())
}

// AddDays returns the date n days after d (before d for negative n).
func (d Date) AddDays(n int) Date {
	if n == 0 {
		return d
	}
	return FromTime(d.Time().AddDate(0, 0, n))
}

// DaysUntil returns the number of days from d to other, negative when
// other precedes d.
func (d Date) DaysUntil(other Date) int {
	return int((other.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after other.
func (d Date) Compare(other Date) int {
	return d.Triple().Compare(other.Triple())
}

// Before reports whether d precedes other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d follows other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Triple returns the date as an unvalidated triple.
func (d Date) Triple() Triple {
	return Triple{d.Year, d.Month, d.Day}
}

// String returns the date in the YYYY-MM-DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Min returns the earlier of two dates.
func Min(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

// Max returns the later of two dates.
func Max(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}
