package calendar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Weekday is a day of the week, Monday being 0 and Sunday 6.
type Weekday int

// Days of the week.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Valid reports whether w is one of the seven days of the week.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// String returns the English name of the day.
func (w Weekday) String() string {
	if !w.Valid() {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayNames[w]
}

// ParseWeekday parses a weekday given either by its English name, a
// prefix of at least three letters, or its number (0 for Monday).
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		w := Weekday(n)
		if !w.Valid() {
			return 0, illegalArgumentError(fmt.Sprintf("weekday %d out of range", n))
		}
		return w, nil
	}
	if len(s) >= 3 {
		lower := strings.ToLower(s)
		for i, name := range weekdayNames {
			if strings.HasPrefix(strings.ToLower(name), lower) {
				return Weekday(i), nil
			}
		}
	}
	return 0, illegalArgumentError(fmt.Sprintf("unknown weekday %q", s))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (w Weekday) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (w *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// WeekdaySet is an immutable, sorted set of distinct weekdays together
// with the cyclic day offsets between consecutive members.
// offsets[i] is the number of days from days[i] to the next member,
// wrapping around the end of the week.
type WeekdaySet struct {
	days    []Weekday
	offsets []int
}

// NewWeekdaySet returns a normalized set of the given weekdays.
// An empty argument list yields an empty set, which matches no date.
func NewWeekdaySet(weekdays ...Weekday) (WeekdaySet, error) {
	days := make([]Weekday, 0, len(weekdays))
	for _, w := range weekdays {
		if !w.Valid() {
			return WeekdaySet{}, illegalArgumentError(fmt.Sprintf("weekday %d out of range", w))
		}
		days = append(days, w)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	days = sortedUnique(days)

	offsets := make([]int, len(days))
	for i := range days {
		if i+1 < len(days) {
			offsets[i] = int(days[i+1] - days[i])
		} else {
			offsets[i] = int(days[0]) + 7 - int(days[i])
		}
	}
	return WeekdaySet{days: days, offsets: offsets}, nil
}

// Len returns the number of weekdays in the set.
func (s WeekdaySet) Len() int {
	return len(s.days)
}

// IsEmpty reports whether the set contains no weekday.
func (s WeekdaySet) IsEmpty() bool {
	return len(s.days) == 0
}

// At returns the i-th weekday of the set in ascending order.
func (s WeekdaySet) At(i int) Weekday {
	return s.days[i]
}

// Offset returns the number of days from the i-th member to the next one.
func (s WeekdaySet) Offset(i int) int {
	return s.offsets[i]
}

// Contains reports whether w is a member of the set.
func (s WeekdaySet) Contains(w Weekday) bool {
	i := s.SearchFirst(w)
	return i < len(s.days) && s.days[i] == w
}

// SearchFirst returns the index of the first member not less than w,
// or Len() if there is none.
func (s WeekdaySet) SearchFirst(w Weekday) int {
	return sort.Search(len(s.days), func(i int) bool { return s.days[i] >= w })
}

// SearchAfter returns the index of the first member greater than w,
// or Len() if there is none.
func (s WeekdaySet) SearchAfter(w Weekday) int {
	return sort.Search(len(s.days), func(i int) bool { return s.days[i] > w })
}

// Weekdays returns a copy of the members in ascending order.
func (s WeekdaySet) Weekdays() []Weekday {
	return append([]Weekday(nil), s.days...)
}

// String returns the member names joined by commas.
func (s WeekdaySet) String() string {
	names := make([]string, len(s.days))
	for i, w := range s.days {
		names[i] = w.String()[:3]
	}
	return "[" + strings.Join(names, ",") + "]"
}

// sortedUnique removes adjacent duplicates from a sorted slice in place.
func sortedUnique(days []Weekday) []Weekday {
	if len(days) == 0 {
		return days
	}
	j := 0
	for i := 1; i < len(days); i++ {
		if days[i] != days[j] {
			j++
			days[j] = days[i]
		}
	}
	return days[:j+1]
}
