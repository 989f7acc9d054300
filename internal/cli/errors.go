package cli

import (
	"errors"
	"fmt"
)

// errUsage wraps a cobra command error to mark it as a usage problem (wrong
// argument count, unknown --format value) rather than a runtime failure,
// so Run can pick exit code 2 instead of 1.
type errUsage struct{ err error }

func (e *errUsage) Error() string { return e.err.Error() }
func (e *errUsage) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &errUsage{err: fmt.Errorf(format, args...)}
}

func isErrUsage(err error) bool {
	var u *errUsage
	return errors.As(err, &u)
}
