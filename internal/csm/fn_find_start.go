package csm

import "github.com/reugn/go-remind/calendar"

// findStart returns the first candidate at or after start (at or before,
// when scanning backward) that is consistent with the fixed fields.
// It returns false when no such candidate exists, e.g. when a fixed year
// is already behind the start date.
//
// Fields are examined from most to least significant. A fixed field that
// is already past rolls the next more significant free field; a free field
// inherits the start value while still inside the start period, and is
// reset to the period bound otherwise.
func findStart(fields Fields, start calendar.Date, back bool) (calendar.Triple, bool) {
	dir := directionOf(back)

	addYear := func(year int) (int, bool) {
		if fields.Year.Fixed {
			return 0, false
		}
		return year + dir.delta, true
	}
	addMonth := func(year, month int) (int, int, bool) {
		if fields.Month.Fixed {
			year, ok := addYear(year)
			return year, month, ok
		}
		if month == dir.monthEnd {
			year, ok := addYear(year)
			return year, dir.monthStart, ok
		}
		return year, month + dir.delta, true
	}

	year := start.Year
	if fields.Year.Fixed {
		if dir.past(fields.Year.Value, start.Year) {
			return calendar.Triple{}, false
		}
		year = fields.Year.Value
	}

	var ok bool
	month := dir.monthStart
	switch {
	case fields.Month.Fixed:
		month = fields.Month.Value
		if year == start.Year && dir.past(month, start.Month) {
			if year, ok = addYear(year); !ok {
				return calendar.Triple{}, false
			}
		}
	case year == start.Year:
		month = start.Month
	}

	atStart := year == start.Year && month == start.Month
	var day int
	switch {
	case fields.Day.Fixed:
		day = fields.Day.Value
		if atStart && dir.past(effectiveDay(fields, year, month), start.Day) {
			if year, month, ok = addMonth(year, month); !ok {
				return calendar.Triple{}, false
			}
		}
	case atStart:
		day = start.Day
	case back:
		day = calendar.DaysIn(year, month)
	default:
		day = 1
	}

	return calendar.Triple{Year: year, Month: month, Day: day}, true
}

// effectiveDay returns the day a fixed day resolves to in the given month
// for the purpose of comparing with the start day.
func effectiveDay(fields Fields, year, month int) int {
	if fields.Policy == calendar.Wrap {
		return min(fields.Day.Value, calendar.DaysIn(year, month))
	}
	return fields.Day.Value
}
