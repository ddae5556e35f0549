// Command remind runs the reminders of YAML files over a window of dates.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "remind:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCommand(calendar.Today(), func(cmd *cobra.Command, opts *options) error {
		return execute(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	})
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

// execute loads the reminders and runs them once, or keeps running them
// when watching or on a schedule.
func execute(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	log, err := logger.New(opts.logFormat, stderr, opts.logLevel)
	if err != nil {
		return err
	}

	a := newApp(opts, stdout, log)
	if err := a.reload(); err != nil {
		return err
	}
	if !a.longRunning() {
		return a.run(ctx, opts.from, opts.to)
	}

	if err := a.runSliding(ctx); err != nil {
		log.Error("Run failed", "error", err)
	}
	g, ctx := errgroup.WithContext(ctx)
	if opts.watch {
		g.Go(func() error { return a.watch(ctx, a.runSliding) })
	}
	if opts.daemon != "" {
		g.Go(func() error { return a.daemon(ctx, opts.daemon) })
	}
	return g.Wait()
}
