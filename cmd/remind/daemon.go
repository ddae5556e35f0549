package main

import (
	"context"

	"github.com/reugn/go-remind/logger"
	"github.com/robfig/cron/v3"
)

var daemonParser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour |
	cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// newDaemon returns a cron scheduler running the sliding window on the
// given schedule. The returned scheduler is not started.
func (a *app) newDaemon(ctx context.Context, schedule string) (*cron.Cron, error) {
	cronLogger := logger.NewCronLogger(a.logger)
	c := cron.New(
		cron.WithParser(daemonParser),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	_, err := c.AddFunc(schedule, func() {
		if err := a.runSliding(ctx); err != nil {
			a.logger.Error("Scheduled run failed", "error", err)
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// daemon runs the sliding window on the schedule until ctx is done.
func (a *app) daemon(ctx context.Context, schedule string) error {
	c, err := a.newDaemon(ctx, schedule)
	if err != nil {
		return err
	}
	c.Start()
	a.logger.Info("Daemon started", "schedule", schedule)

	<-ctx.Done()
	<-c.Stop().Done()
	a.logger.Info("Daemon stopped")
	return nil
}
