// "csm" is an internal package focused on solving a single task.
// Given a start date and a partially fixed (year, month, day) pattern with an
// optional weekday filter, enumerate the matching dates in either direction.
//
// A date can be thought of as a mixed-radix number
// (https://en.wikipedia.org/wiki/Mixed_radix) with year, month and day digits.
// Each digit is driven by a level object (day_node.go, common_node.go). Every
// level exposes an advance(carry) method: the day level emits dates until its
// month is exhausted and then requests a new (year, month) carry, the month
// level requests a new year once it wraps, and the year level either counts
// without bound or allows a single pass when the year is fixed.
//
// Before iterating, the first candidate consistent with the fixed fields is
// computed by findStart (fn_find_start.go). Candidates are unvalidated
// calendar.Triple values and are resolved to real dates only when emitted.
//
// NOTE: the "day" digit does not have a constant radix. It depends on the
// month and the year, which is why a day level never steps across a month
// boundary on its own but asks the month level how to continue.
package csm
