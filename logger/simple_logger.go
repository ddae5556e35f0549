package logger

import (
	"fmt"
	"log"
	"strings"
	"sync"
)

// SimpleLogger writes records through a standard library logger as
// "LEVEL msg=..., key=value" lines.
type SimpleLogger struct {
	mtx    sync.Mutex
	logger *log.Logger
	level  Level
}

var _ Logger = (*SimpleLogger)(nil)

// NewSimpleLogger returns a new [SimpleLogger] dropping records below level.
func NewSimpleLogger(logger *log.Logger, level Level) *SimpleLogger {
	return &SimpleLogger{logger: logger, level: level}
}

func (l *SimpleLogger) Trace(msg string, args ...any) { l.output(LevelTrace, msg, args) }
func (l *SimpleLogger) Debug(msg string, args ...any) { l.output(LevelDebug, msg, args) }
func (l *SimpleLogger) Info(msg string, args ...any)  { l.output(LevelInfo, msg, args) }
func (l *SimpleLogger) Warn(msg string, args ...any)  { l.output(LevelWarn, msg, args) }
func (l *SimpleLogger) Error(msg string, args ...any) { l.output(LevelError, msg, args) }

func (l *SimpleLogger) output(level Level, msg string, args []any) {
	if level < l.level {
		return
	}
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.logger.SetPrefix(strings.ToUpper(level.String()) + " ")
	// skip [output, the level method]
	_ = l.logger.Output(3, formatRecord(msg, args))
}

// formatRecord renders the message and its key-value pairs. A trailing key
// without a value is printed alone.
func formatRecord(msg string, args []any) string {
	var b strings.Builder
	b.WriteString("msg=")
	b.WriteString(msg)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			fmt.Fprintf(&b, ", %v", args[i])
			break
		}
		fmt.Fprintf(&b, ", %s=%v", args[i], args[i+1])
	}
	return b.String()
}
