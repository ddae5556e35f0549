// Package condition implements composable recurrence conditions.
//
// A [Condition] answers one question: starting from a date, which dates
// match, in which order. Scan walks toward the future and yields a strictly
// increasing sequence of dates not before the start; ScanBack walks toward
// the past and yields a strictly decreasing sequence of dates not after the
// start. Sequences are lazy and may be infinite. Each call returns a fresh
// [Iterator] with its own cursor, so a Condition is read-only after
// construction and may be shared freely.
//
// Conditions compose by construction:
//
//	fridays13th := condition.MustConstrained(
//		condition.Day(13),
//		condition.Weekdays(calendar.Friday),
//	)
//	mondaysBefore := condition.NewShift(fridays13th, -4)
//	firstTwo, err := condition.Take(mondaysBefore.Scan(calendar.Today()), 2)
package condition
