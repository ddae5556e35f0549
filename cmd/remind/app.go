package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/reugn/go-remind/action"
	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/logger"
	"github.com/reugn/go-remind/reminder"
	"github.com/reugn/go-remind/runner"
)

// app holds the loaded reminders between runs.
type app struct {
	opts   *options
	out    io.Writer
	logger logger.Logger
	today  func() calendar.Date

	// serializes runs triggered by the watcher and the daemon
	runMtx sync.Mutex

	mtx sync.Mutex
	set reminder.Set
}

func newApp(opts *options, out io.Writer, log logger.Logger) *app {
	return &app{
		opts:   opts,
		out:    out,
		logger: logger.OrNoOp(log),
		today:  calendar.Today,
	}
}

// reload reads the reminder files and keeps the selected reminders.
func (a *app) reload() error {
	loader := &reminder.Loader{Output: a.out, Logger: a.logger}
	set, err := loader.Load(a.opts.files...)
	if err != nil {
		return err
	}
	set = set.Select(a.opts.matchers()...)
	if a.longRunning() {
		for _, r := range set {
			if _, ok := r.Action.(*action.ShellAction); ok {
				r.Action = action.NewIsolated(r.Action)
			}
		}
	}
	a.logger.Info("Reminders loaded", "files", len(a.opts.files), "selected", len(set))

	a.mtx.Lock()
	a.set = set
	a.mtx.Unlock()
	return nil
}

func (a *app) reminders() reminder.Set {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	return a.set
}

func (a *app) longRunning() bool {
	return a.opts.watch || a.opts.daemon != ""
}

// run runs the loaded reminders over the window [from, to].
func (a *app) run(ctx context.Context, from, to calendar.Date) error {
	a.runMtx.Lock()
	defer a.runMtx.Unlock()

	r, err := runner.New[*reminder.Reminder](runner.Options{
		From:    from,
		To:      to,
		Mode:    a.opts.mode,
		OnError: a.opts.onError,
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}
	streams := a.reminders().Streams(a.opts.mode)
	today := a.today()

	if a.opts.json {
		handler := newJSONAgenda(a.out, today)
		if err := r.Run(ctx, streams, handler); err != nil {
			return err
		}
		return handler.err
	}

	handler := &agenda{ctx: ctx, w: a.out, today: today, logger: a.logger}
	if err := r.Run(ctx, streams, handler); err != nil {
		return err
	}
	if handler.failures > 0 {
		return fmt.Errorf("%d actions failed", handler.failures)
	}
	return nil
}

// runSliding runs the window moved to start today.
func (a *app) runSliding(ctx context.Context) error {
	from := a.today()
	return a.run(ctx, from, from.AddDays(a.opts.span()))
}
