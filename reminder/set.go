package reminder

import (
	"github.com/reugn/go-remind/runner"
)

// Matcher represents a predicate on reminders.
// Standard Matcher implementations are located in the matcher package.
type Matcher interface {
	// IsMatch evaluates this matcher on the given reminder.
	IsMatch(*Reminder) bool
}

// Set is an ordered collection of reminders.
type Set []*Reminder

// Select returns the reminders matching all the matchers, in order.
func (s Set) Select(matchers ...Matcher) Set {
	selected := make(Set, 0, len(s))
	for _, r := range s {
		if isMatch(r, matchers) {
			selected = append(selected, r)
		}
	}
	return selected
}

// Streams returns the runner streams of the reminders for the mode.
// The advance warning of a reminder is its stream horizon.
func (s Set) Streams(mode runner.Mode) []runner.Stream[*Reminder] {
	streams := make([]runner.Stream[*Reminder], len(s))
	for i, r := range s {
		streams[i] = runner.Stream[*Reminder]{
			Condition: r.ConditionFor(mode),
			Horizon:   r.AdvanceWarning,
			Payload:   r,
		}
	}
	return streams
}

func isMatch(r *Reminder, matchers []Matcher) bool {
	for _, m := range matchers {
		if !m.IsMatch(r) {
			return false
		}
	}
	return true
}
