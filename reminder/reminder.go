package reminder

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/reugn/go-remind/action"
	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/condition"
	"github.com/reugn/go-remind/runner"
)

// Reminder binds a date condition to an action.
type Reminder struct {
	// ID identifies the reminder. It is derived from the name unless set
	// with WithID.
	ID uuid.UUID

	Name string
	Tags []string

	Condition condition.Condition
	Action    action.Action

	// AdvanceWarning is the number of days an event is announced ahead
	// of its date in the remind mode.
	AdvanceWarning int

	// Deferrable makes the reminder track the date it was last done.
	Deferrable bool

	// Done is the date a deferrable reminder was last done. The zero value
	// means it was never done.
	Done calendar.Date
}

// Option configures a Reminder.
type Option func(*Reminder) error

// WithID sets the reminder ID.
func WithID(id uuid.UUID) Option {
	return func(r *Reminder) error {
		r.ID = id
		return nil
	}
}

// WithTags sets the reminder tags.
func WithTags(tags ...string) Option {
	return func(r *Reminder) error {
		r.Tags = tags
		return nil
	}
}

// WithAdvanceWarning sets the number of days of advance warning.
func WithAdvanceWarning(days int) Option {
	return func(r *Reminder) error {
		if days < 0 {
			return illegalArgumentError(fmt.Sprintf("negative advance warning %d", days))
		}
		r.AdvanceWarning = days
		return nil
	}
}

// WithDeferrable makes the reminder deferrable, never done so far.
func WithDeferrable() Option {
	return func(r *Reminder) error {
		r.Deferrable = true
		return nil
	}
}

// WithDone makes the reminder deferrable, done on the given date.
func WithDone(date calendar.Date) Option {
	return func(r *Reminder) error {
		r.Deferrable = true
		r.Done = date
		return nil
	}
}

// New returns a new Reminder.
func New(name string, cond condition.Condition, act action.Action, opts ...Option) (*Reminder, error) {
	if cond == nil {
		return nil, illegalArgumentError("condition is nil")
	}
	if act == nil {
		return nil, illegalArgumentError("action is nil")
	}
	r := &Reminder{
		ID:        NameID(name),
		Name:      name,
		Condition: cond,
		Action:    act,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NameID returns the ID derived from a reminder name.
func NameID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("reminder:"+name))
}

// SourceID returns the ID of the index-th reminder of a source file.
func SourceID(source string, index int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, fmt.Appendf(nil, "file://%s#%d", source, index))
}

// ConditionFor returns the condition to run the reminder with in the
// given mode.
func (r *Reminder) ConditionFor(mode runner.Mode) condition.Condition {
	if !r.Deferrable {
		return r.Condition
	}
	return newDeferrable(r.Condition, mode, r.Done, r.AdvanceWarning)
}

// Execute runs the reminder action for the date.
func (r *Reminder) Execute(ctx context.Context, date calendar.Date) error {
	return r.Action.Execute(ctx, date)
}

// HasTag reports whether the reminder carries the tag.
func (r *Reminder) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// String returns the reminder name and condition.
func (r *Reminder) String() string {
	return fmt.Sprintf("%s: %v", r.Name, r.Condition)
}
