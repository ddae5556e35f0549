package matcher

import (
	"github.com/reugn/go-remind/reminder"
)

// ReminderDeferred implements the reminder.Matcher interface, matching
// reminders by whether they are deferrable.
type ReminderDeferred struct {
	Deferred bool
}

var _ reminder.Matcher = (*ReminderDeferred)(nil)

// ReminderDeferrable returns a matcher to match deferrable reminders.
func ReminderDeferrable() reminder.Matcher {
	return &ReminderDeferred{true}
}

// ReminderPlain returns a matcher to match reminders that are not deferrable.
func ReminderPlain() reminder.Matcher {
	return &ReminderDeferred{false}
}

// IsMatch evaluates ReminderDeferred matcher on the given reminder.
func (d *ReminderDeferred) IsMatch(r *reminder.Reminder) bool {
	return r.Deferrable == d.Deferred
}
