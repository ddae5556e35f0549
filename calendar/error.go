package calendar

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrIllegalArgument = errors.New("illegal argument")
	ErrInvalidDate     = errors.New("invalid date")
	ErrNonExistentDate = errors.New("non-existent date")
)

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// invalidDateError returns an invalid date error for the given components,
// which unwraps to ErrInvalidDate.
func invalidDateError(year, month, day int) error {
	return fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
}

// nonExistentDateError returns a non-existent date error for the given
// triple, which unwraps to ErrNonExistentDate.
func nonExistentDateError(t Triple) error {
	return fmt.Errorf("%w: %s", ErrNonExistentDate, t)
}
