package runner

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrIllegalArgument = errors.New("illegal argument")
	ErrStream          = errors.New("stream failed")
	ErrQueueEmpty      = errors.New("event queue is empty")
)

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// streamError wraps the error of the stream at the given position; the
// result matches both ErrStream and the cause.
func streamError(position int, err error) error {
	return fmt.Errorf("%w %d: %w", ErrStream, position, err)
}
