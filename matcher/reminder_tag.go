package matcher

import (
	"github.com/reugn/go-remind/reminder"
)

// ReminderTag implements the reminder.Matcher interface, matching
// reminders having at least one tag accepted by the operator.
type ReminderTag struct {
	Operator *StringOperator
	Pattern  string
}

var _ reminder.Matcher = (*ReminderTag)(nil)

// NewReminderTag returns a new ReminderTag matcher given the string
// operator and pattern.
func NewReminderTag(operator *StringOperator, pattern string) reminder.Matcher {
	return &ReminderTag{
		Operator: operator,
		Pattern:  pattern,
	}
}

// ReminderTagEquals returns a new ReminderTag, matching reminders tagged
// with the given string.
func ReminderTagEquals(pattern string) reminder.Matcher {
	return NewReminderTag(&StringEquals, pattern)
}

// IsMatch evaluates ReminderTag matcher on the given reminder.
func (m *ReminderTag) IsMatch(r *reminder.Reminder) bool {
	for _, tag := range r.Tags {
		if (*m.Operator)(tag, m.Pattern) {
			return true
		}
	}
	return false
}
