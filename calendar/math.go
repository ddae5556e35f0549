package calendar

import "time"

// IsLeapYear reports whether year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month of the year.
func DaysIn(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// LastDayOfMonth returns the last date of the given month.
func LastDayOfMonth(year, month int) Date {
	return Date{year, month, DaysIn(year, month)}
}

// FirstDayOfMonth returns the first date of the given month.
func FirstDayOfMonth(year, month int) Date {
	return Date{year, month, 1}
}

// IsValid reports whether the components denote an existing calendar day.
func IsValid(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= DaysIn(year, month)
}

// DayOfYear returns the ordinal day of the year, January 1 being 1.
func DayOfYear(d Date) int {
	return d.Time().YearDay()
}

// ISOWeek returns the ISO 8601 week number of the date.
func ISOWeek(d Date) int {
	_, week := d.Time().ISOWeek()
	return week
}

// WeekNumber returns the week number of the date within its year, where
// week 1 starts on January 1 and every following week starts on the
// given weekday.
func WeekNumber(d Date, start Weekday) int {
	diff := DayOfYear(d) - 1
	weekday := int(d.Weekday())
	yearStart := mod(weekday-diff, 7)
	s := int(start)

	week := diff/7 + 1
	switch {
	case weekday > yearStart:
		if s > yearStart && s <= weekday {
			week++
		}
	case weekday < yearStart:
		if s > yearStart || s <= weekday {
			week++
		}
	}
	return week
}

func makeDateTime(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func weekdayOf(t time.Time) Weekday {
	return Weekday(mod(int(t.Weekday())-1, 7))
}

// mod returns the non-negative remainder of a divided by b.
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
