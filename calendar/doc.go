// Package calendar provides the proleptic Gregorian date arithmetic used by
// the recurrence engine.
//
// A [Date] always denotes a real calendar day. A [Triple] is an unvalidated
// (year, month, day) candidate produced while iterating; it becomes a Date
// only through a [Policy], which decides what happens to candidates such as
// February 30.
package calendar
