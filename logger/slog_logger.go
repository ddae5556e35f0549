package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// SlogLogger delegates records to a [slog.Logger]. The trace level maps to
// slog.LevelDebug-4, which handlers built by [New] print as "TRACE".
type SlogLogger struct {
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger returns a new [SlogLogger]. It panics if logger is nil.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		panic("nil logger")
	}
	return &SlogLogger{logger: logger}
}

func (l *SlogLogger) Trace(msg string, args ...any) { l.log(slog.Level(LevelTrace), msg, args) }
func (l *SlogLogger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args) }
func (l *SlogLogger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args) }
func (l *SlogLogger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args) }
func (l *SlogLogger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args) }

// log records the caller of the level method as the source.
func (l *SlogLogger) log(level slog.Level, msg string, args []any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	// skip [runtime.Callers, log, the level method]
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(ctx, r)
}

// replaceTraceLevel renders LevelTrace as "TRACE" instead of "DEBUG-4".
func replaceTraceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level == slog.Level(LevelTrace) {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}
