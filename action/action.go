package action

import (
	"context"

	"github.com/reugn/go-remind/calendar"
)

// Sep is the separator used in action descriptions.
const Sep = "::"

// Action represents the work performed when a reminder matches a date.
type Action interface {
	// Execute is called by the agenda printer for every matching date.
	Execute(ctx context.Context, date calendar.Date) error

	// Description returns the description of the Action.
	Description() string
}

// Status represents the outcome of the last execution of an Action.
type Status int8

const (
	// StatusNA is the initial Action status.
	StatusNA Status = iota

	// StatusOK indicates that the Action completed successfully.
	StatusOK

	// StatusFailure indicates that the Action failed.
	StatusFailure
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFailure:
		return "failure"
	default:
		return "n/a"
	}
}

func statusOf(err error) Status {
	if err != nil {
		return StatusFailure
	}
	return StatusOK
}
