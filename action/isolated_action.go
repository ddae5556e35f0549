package action

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/reugn/go-remind/calendar"
)

// ErrRunning is returned by an isolated Action that is already executing.
var ErrRunning = errors.New("action is running")

type isolatedAction struct {
	Action
	isRunning atomic.Bool
}

var _ Action = (*isolatedAction)(nil)

// Execute runs the underlying Action unless another execution is in progress.
func (a *isolatedAction) Execute(ctx context.Context, date calendar.Date) error {
	if wasRunning := a.isRunning.Swap(true); wasRunning {
		return ErrRunning
	}
	defer a.isRunning.Store(false)

	return a.Action.Execute(ctx, date)
}

// NewIsolated wraps an Action and ensures that only one call of its
// Execute method runs at a time. Overlapping calls fail with ErrRunning.
func NewIsolated(underlying Action) Action {
	return &isolatedAction{Action: underlying}
}
