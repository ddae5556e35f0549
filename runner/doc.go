// Package runner merges the date streams of many conditions into a single
// ordered sequence of events.
//
// Each [Stream] pairs a condition with an opaque payload and a horizon, the
// number of days it may be pulled past the end of the window in
// [ModeRemind]. The [Runner] performs a lazy k-way merge over a priority
// queue: it never pulls a stream further than needed to produce the next
// event, and reports every distinct date once before the events falling on
// it, ties being ordered by stream position.
package runner
