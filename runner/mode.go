package runner

import (
	"fmt"
	"strings"
)

// Mode selects whether stream horizons apply.
type Mode int8

const (
	// ModeRemind pulls every stream up to its horizon past the window end,
	// so that early warnings for later events are produced.
	ModeRemind Mode = iota

	// ModeEvents reports the events within the window only.
	ModeEvents
)

var modeNames = [...]string{"remind", "events"}

// String returns the mode name.
func (m Mode) String() string {
	if m < ModeRemind || m > ModeEvents {
		return fmt.Sprintf("Mode(%d)", m)
	}
	return modeNames[m]
}

// ParseMode parses a mode name, case insensitively.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, illegalArgumentError(fmt.Sprintf("unknown mode %q", s))
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ErrorPolicy decides what happens when a stream fails.
type ErrorPolicy int8

const (
	// Abort stops the whole run and returns the stream error.
	Abort ErrorPolicy = iota

	// Drop logs the error and removes only the failed stream.
	Drop
)

var errorPolicyNames = [...]string{"abort", "drop"}

// String returns the policy name.
func (p ErrorPolicy) String() string {
	if p < Abort || p > Drop {
		return fmt.Sprintf("ErrorPolicy(%d)", p)
	}
	return errorPolicyNames[p]
}

// ParseErrorPolicy parses a policy name, case insensitively.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	for i, name := range errorPolicyNames {
		if strings.EqualFold(s, name) {
			return ErrorPolicy(i), nil
		}
	}
	return 0, illegalArgumentError(fmt.Sprintf("unknown error policy %q", s))
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (p *ErrorPolicy) UnmarshalText(text []byte) error {
	policy, err := ParseErrorPolicy(string(text))
	if err != nil {
		return err
	}
	*p = policy
	return nil
}
