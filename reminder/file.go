package reminder

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reugn/go-remind/action"
	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/logger"
	yaml "go.yaml.in/yaml/v3"
)

// File is the document stored in a reminder file.
type File struct {
	Reminders []Entry `yaml:"reminders"`
}

// Entry is the declarative form of a Reminder. Exactly one of Message and
// Shell sets the action. A done date implies Deferrable.
type Entry struct {
	Name       string         `yaml:"name"`
	Message    string         `yaml:"message"`
	Shell      string         `yaml:"shell"`
	Tags       []string       `yaml:"tags"`
	Warn       int            `yaml:"warn"`
	Deferrable bool           `yaml:"deferrable"`
	Done       *calendar.Date `yaml:"done"`
	When       *When          `yaml:"when"`
}

// Loader reads reminder files.
type Loader struct {
	// Output receives the messages printed by the loaded reminders.
	// It defaults to os.Stdout.
	Output io.Writer

	// Logger defaults to a NoOpLogger.
	Logger logger.Logger
}

// Load reads the reminder files in order and concatenates their reminders.
func (l *Loader) Load(paths ...string) (Set, error) {
	var set Set
	for _, path := range paths {
		reminders, err := l.loadFile(path)
		if err != nil {
			return nil, err
		}
		set = append(set, reminders...)
	}
	return set, nil
}

func (l *Loader) loadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.Decode(f, path)
}

// Decode reads one YAML document from r. Unknown keys are rejected.
// The source names r in errors and reminder IDs.
func (l *Loader) Decode(r io.Reader, source string) (Set, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, source, err)
	}

	set := make(Set, 0, len(file.Reminders))
	for i := range file.Reminders {
		entry := &file.Reminders[i]
		r, err := l.build(entry, source, i)
		if err != nil {
			return nil, formatError(source, i, entry.Name, err)
		}
		set = append(set, r)
	}
	logger.OrNoOp(l.Logger).Debug("Loaded reminders", "source", source, "count", len(set))
	return set, nil
}

func (l *Loader) build(entry *Entry, source string, index int) (*Reminder, error) {
	if entry.When == nil {
		return nil, illegalArgumentError("missing when")
	}
	cond, err := entry.When.Build()
	if err != nil {
		return nil, err
	}
	act, err := l.action(entry)
	if err != nil {
		return nil, err
	}

	name := entry.Name
	if name == "" {
		name = fmt.Sprintf("%s#%d", source, index)
	}
	opts := []Option{
		WithID(SourceID(source, index)),
		WithTags(entry.Tags...),
		WithAdvanceWarning(entry.Warn),
	}
	switch {
	case entry.Done != nil:
		opts = append(opts, WithDone(*entry.Done))
	case entry.Deferrable:
		opts = append(opts, WithDeferrable())
	}
	return New(name, cond, act, opts...)
}

func (l *Loader) action(entry *Entry) (action.Action, error) {
	switch {
	case entry.Message != "" && entry.Shell != "":
		return nil, illegalArgumentError("message and shell are exclusive")
	case entry.Shell != "":
		return action.NewShellAction(entry.Shell), nil
	case entry.Message != "":
		if l.Output == nil {
			return action.NewMessagePrinter(entry.Message), nil
		}
		return action.NewMessagePrinterTo(l.Output, entry.Message), nil
	default:
		return nil, illegalArgumentError("missing message or shell")
	}
}
