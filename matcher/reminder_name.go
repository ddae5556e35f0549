package matcher

import (
	"github.com/reugn/go-remind/reminder"
)

// ReminderName implements the reminder.Matcher interface, matching
// reminders by their name.
type ReminderName struct {
	Operator *StringOperator // uses a pointer to compare with standard operators
	Pattern  string
}

var _ reminder.Matcher = (*ReminderName)(nil)

// NewReminderName returns a new ReminderName matcher given the string
// operator and pattern.
func NewReminderName(operator *StringOperator, pattern string) reminder.Matcher {
	return &ReminderName{
		Operator: operator,
		Pattern:  pattern,
	}
}

// ReminderNameEquals returns a new ReminderName, matching reminders whose
// name is identical to the given string pattern.
func ReminderNameEquals(pattern string) reminder.Matcher {
	return NewReminderName(&StringEquals, pattern)
}

// ReminderNameStartsWith returns a new ReminderName, matching reminders
// whose name starts with the given string pattern.
func ReminderNameStartsWith(pattern string) reminder.Matcher {
	return NewReminderName(&StringStartsWith, pattern)
}

// ReminderNameContains returns a new ReminderName, matching reminders
// whose name contains the given string pattern.
func ReminderNameContains(pattern string) reminder.Matcher {
	return NewReminderName(&StringContains, pattern)
}

// IsMatch evaluates ReminderName matcher on the given reminder.
func (n *ReminderName) IsMatch(r *reminder.Reminder) bool {
	return (*n.Operator)(r.Name, n.Pattern)
}
