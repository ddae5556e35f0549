package reminder

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrIllegalArgument = errors.New("illegal argument")
	ErrFormat          = errors.New("invalid reminder format")
)

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// formatError returns a format error for the reminder at the given
// position of a source, which unwraps to ErrFormat and the cause.
func formatError(source string, index int, name string, err error) error {
	return fmt.Errorf("%w: %s: reminder %d (%s): %w", ErrFormat, source, index, name, err)
}
