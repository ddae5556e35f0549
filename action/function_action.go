package action

import (
	"context"
	"fmt"
	"sync"

	"github.com/reugn/go-remind/calendar"
)

// Function is called with the matched date and returns a generic
// result R and a possible error.
type Function[R any] func(context.Context, calendar.Date) (R, error)

// FunctionAction represents an Action that invokes the passed Function.
type FunctionAction[R any] struct {
	sync.RWMutex
	function *Function[R]
	desc     string
	result   *R
	err      error
	status   Status
}

var _ Action = (*FunctionAction[any])(nil)

// NewFunctionAction returns a new FunctionAction without an explicit description.
func NewFunctionAction[R any](function Function[R]) *FunctionAction[R] {
	return &FunctionAction[R]{
		function: &function,
		desc:     fmt.Sprintf("FunctionAction%s%p", Sep, &function),
		status:   StatusNA,
	}
}

// NewFunctionActionWithDesc returns a new FunctionAction with an explicit description.
func NewFunctionActionWithDesc[R any](desc string, function Function[R]) *FunctionAction[R] {
	return &FunctionAction[R]{
		function: &function,
		desc:     desc,
		status:   StatusNA,
	}
}

// Description returns the description of the FunctionAction.
func (f *FunctionAction[R]) Description() string {
	return f.desc
}

// Execute invokes the held function, setting the results in Result and Error.
func (f *FunctionAction[R]) Execute(ctx context.Context, date calendar.Date) error {
	result, err := (*f.function)(ctx, date)
	f.Lock()
	f.status = statusOf(err)
	if err != nil {
		f.result = nil
		f.err = err
	} else {
		f.result = &result
		f.err = nil
	}
	f.Unlock()
	return err
}

// Result returns the result of the last successful execution.
func (f *FunctionAction[R]) Result() *R {
	f.RLock()
	defer f.RUnlock()
	return f.result
}

// Error returns the error of the last execution.
func (f *FunctionAction[R]) Error() error {
	f.RLock()
	defer f.RUnlock()
	return f.err
}

// Status returns the status of the last execution.
func (f *FunctionAction[R]) Status() Status {
	f.RLock()
	defer f.RUnlock()
	return f.status
}
