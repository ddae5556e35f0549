package logger

import (
	"fmt"
	"io"
	"log"
	"log/slog"
)

// Logger is an interface for handling structured log records at different
// severity levels. Arguments are alternating keys and values.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoOpLogger satisfies the Logger interface and discards all log messages.
type NoOpLogger struct{}

var _ Logger = (*NoOpLogger)(nil)

func (NoOpLogger) Trace(_ string, _ ...any) {}
func (NoOpLogger) Debug(_ string, _ ...any) {}
func (NoOpLogger) Info(_ string, _ ...any)  {}
func (NoOpLogger) Warn(_ string, _ ...any)  {}
func (NoOpLogger) Error(_ string, _ ...any) {}

// Output formats accepted by New.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New returns a Logger writing to w in the given format: "text" for the
// [SimpleLogger], "json" for a [SlogLogger] with a JSON handler, and
// "console" for a colorized [ZerologLogger].
func New(format string, w io.Writer, level Level) (Logger, error) {
	switch format {
	case FormatText:
		return NewSimpleLogger(log.New(w, "", log.LstdFlags), level), nil
	case FormatJSON:
		handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       slog.Level(level),
			ReplaceAttr: replaceTraceLevel,
		})
		return NewSlogLogger(slog.New(handler)), nil
	case FormatConsole:
		return NewZerologLogger(w, level), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

// OrNoOp returns l, or a NoOpLogger if l is nil.
func OrNoOp(l Logger) Logger {
	if l == nil {
		return NoOpLogger{}
	}
	return l
}
