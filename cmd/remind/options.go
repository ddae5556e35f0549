package main

import (
	"errors"
	"fmt"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/logger"
	"github.com/reugn/go-remind/matcher"
	"github.com/reugn/go-remind/reminder"
	"github.com/reugn/go-remind/runner"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("invalid usage")

type options struct {
	mode    runner.Mode
	from    calendar.Date
	to      calendar.Date
	future  int
	json    bool
	names   []string
	tags    []string
	onError runner.ErrorPolicy

	logLevel  logger.Level
	logFormat string

	watch  bool
	daemon string

	files []string
}

// rawFlags holds the flag values parsed after the command line is read.
type rawFlags struct {
	from     string
	to       string
	onError  string
	logLevel string
}

// span returns the number of days the window extends past its start.
func (o *options) span() int {
	return o.from.DaysUntil(o.to)
}

// matchers returns the reminder selection of the name and tag flags.
func (o *options) matchers() []reminder.Matcher {
	var matchers []reminder.Matcher
	for _, expr := range o.names {
		matchers = append(matchers, matcher.NewReminderName(matcher.ParsePattern(expr)))
	}
	for _, expr := range o.tags {
		matchers = append(matchers, matcher.NewReminderTag(matcher.ParsePattern(expr)))
	}
	return matchers
}

// resolve parses the raw flag values and settles the window.
func (o *options) resolve(raw *rawFlags, today calendar.Date) error {
	o.from = today
	if raw.from != "" {
		if err := o.from.UnmarshalText([]byte(raw.from)); err != nil {
			return err
		}
	}
	if raw.onError != "" {
		if err := o.onError.UnmarshalText([]byte(raw.onError)); err != nil {
			return err
		}
	}
	if err := o.logLevel.UnmarshalText([]byte(raw.logLevel)); err != nil {
		return err
	}

	switch {
	case o.future < -1:
		return fmt.Errorf("%w: negative --future %d", errUsage, o.future)
	case raw.to != "" && o.future >= 0:
		return fmt.Errorf("%w: --to and --future are exclusive", errUsage)
	case raw.to != "":
		if err := o.to.UnmarshalText([]byte(raw.to)); err != nil {
			return err
		}
		if o.to.Before(o.from) {
			return fmt.Errorf("%w: --to %v is before --from %v", errUsage, o.to, o.from)
		}
	case o.future >= 0:
		o.to = o.from.AddDays(o.future)
	default:
		o.to = o.from
	}
	return nil
}

// newRootCommand builds the command tree. The remind and events
// subcommands resolve their options and hand them to exec.
func newRootCommand(today calendar.Date, exec func(*cobra.Command, *options) error) *cobra.Command {
	opts := &options{}
	raw := &rawFlags{}

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run the reminders of YAML files over a window of dates",
		Long: `Runs the reminders of the YAML files over a window of dates.

The remind command announces events ahead of their date by the advance
warning of their reminder; the events command lists the events within the
window only.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: a command is required", errUsage)
			}
			return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&raw.from, "from", "", "first date of the window, YYYY-MM-DD (default today)")
	flags.StringVar(&raw.to, "to", "", "last date of the window, YYYY-MM-DD (default the first date)")
	flags.IntVar(&opts.future, "future", -1, "number of days the window extends past its first date")
	flags.BoolVar(&opts.json, "json", false, "print events as JSON lines instead of running their actions")
	flags.StringArrayVar(&opts.names, "name", nil,
		"select reminders by name, as [equals|prefix|suffix|contains:]PATTERN; repeatable")
	flags.StringArrayVar(&opts.tags, "tag", nil,
		"select reminders by tag, as [equals|prefix|suffix|contains:]PATTERN; repeatable")
	flags.StringVar(&raw.onError, "on-error", "", "abort or drop a failing reminder (default abort)")
	flags.StringVar(&raw.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error, off)")
	flags.StringVar(&opts.logFormat, "log-format", logger.FormatConsole, "log format (console, text, json)")
	flags.BoolVar(&opts.watch, "watch", false, "run again whenever a reminder file changes")
	flags.StringVar(&opts.daemon, "daemon", "",
		"run again on the given cron schedule, the window sliding to the current day")

	newModeCommand := func(mode runner.Mode, short string) *cobra.Command {
		return &cobra.Command{
			Use:   mode.String() + " FILE...",
			Short: short,
			Args: func(_ *cobra.Command, args []string) error {
				if len(args) == 0 {
					return fmt.Errorf("%w: a reminder file is required", errUsage)
				}
				return nil
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				opts.mode = mode
				opts.files = args
				if err := opts.resolve(raw, today); err != nil {
					return err
				}
				return exec(cmd, opts)
			},
		}
	}
	cmd.AddCommand(newModeCommand(runner.ModeRemind, "Announce events ahead of their date"))
	cmd.AddCommand(newModeCommand(runner.ModeEvents, "List the events within the window"))

	return cmd
}
