package calendar

import (
	"fmt"
	"strings"
)

// Policy selects how a [Triple] that denotes no real date is resolved.
type Policy int8

const (
	// Wrap maps a non-existent day to the last day of its month.
	Wrap Policy = iota

	// Skip drops the candidate silently.
	Skip

	// Raise stops the iteration with ErrNonExistentDate.
	Raise
)

var policyNames = [...]string{"wrap", "skip", "raise"}

// String returns the lower-case policy name.
func (p Policy) String() string {
	if p < Wrap || p > Raise {
		return fmt.Sprintf("Policy(%d)", p)
	}
	return policyNames[p]
}

// ParsePolicy parses a policy name, case insensitively.
func ParsePolicy(s string) (Policy, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for i, name := range policyNames {
		if lower == name {
			return Policy(i), nil
		}
	}
	return Wrap, illegalArgumentError(fmt.Sprintf("unknown policy %q", s))
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Triple is a (year, month, day) value that need not denote a valid date.
// Triples are ordered lexicographically, component by component.
type Triple struct {
	Year  int
	Month int
	Day   int
}

// Compare returns -1, 0 or +1 comparing t and other component-wise.
func (t Triple) Compare(other Triple) int {
	switch {
	case t.Year != other.Year:
		return sign(t.Year - other.Year)
	case t.Month != other.Month:
		return sign(t.Month - other.Month)
	default:
		return sign(t.Day - other.Day)
	}
}

// Valid reports whether the triple denotes an existing date.
func (t Triple) Valid() bool {
	return IsValid(t.Year, t.Month, t.Day)
}

// Resolve converts the triple to a Date according to the policy.
// ok is false when the candidate is dropped under Skip.
func (t Triple) Resolve(policy Policy) (d Date, ok bool, err error) {
	if t.Valid() {
		return Date{t.Year, t.Month, t.Day}, true, nil
	}
	if t.Month < 1 || t.Month > 12 || t.Day < 1 {
		return Date{}, false, invalidDateError(t.Year, t.Month, t.Day)
	}
	switch policy {
	case Wrap:
		return LastDayOfMonth(t.Year, t.Month), true, nil
	case Skip:
		return Date{}, false, nil
	default:
		return Date{}, false, nonExistentDateError(t)
	}
}

// String returns the triple in the YYYY-MM-DD form, valid or not.
func (t Triple) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year, t.Month, t.Day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
