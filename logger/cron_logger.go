package logger

import "github.com/robfig/cron/v3"

// CronLogger adapts a [Logger] to the logger interface of the cron
// scheduler driving daemon runs.
type CronLogger struct {
	logger Logger
}

var _ cron.Logger = (*CronLogger)(nil)

// NewCronLogger returns a new [CronLogger].
func NewCronLogger(l Logger) *CronLogger {
	return &CronLogger{logger: OrNoOp(l)}
}

// Info logs routine cron messages at the debug level.
func (l *CronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Error logs cron errors at the error level.
func (l *CronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{"error", err}, keysAndValues...)...)
}
