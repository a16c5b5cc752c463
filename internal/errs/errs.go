// Package errs defines the error kinds shared by the flag and chunk stores.
//
// Every failure returned by this module carries exactly one of the sentinels
// below. Both errors.Is from the standard library and from
// github.com/cockroachdb/errors match the kind, and the original cause (for
// example an *os.PathError) stays reachable through the chain.
package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrIO is returned when a file create, open, map, copy or flush fails.
	ErrIO = errors.New("io error")

	// ErrInvalidArgument is returned when an argument is rejected, e.g. a shrink request.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCorruptState is returned when on-disk state is inconsistent, e.g. a missing chunk id.
	ErrCorruptState = errors.New("corrupt state")
)

// kindError tags an error with its kind without changing its message.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }

func (e *kindError) Unwrap() error { return e.err }

func (e *kindError) Is(target error) bool { return target == e.kind }

func (e *kindError) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// IO wraps err with context and tags it as ErrIO. A nil err stays nil.
func IO(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: ErrIO, err: errors.WrapWithDepthf(1, err, format, args...)}
}

// InvalidArgument returns a new error tagged as ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return &kindError{kind: ErrInvalidArgument, err: errors.NewWithDepthf(1, format, args...)}
}

// CorruptState returns a new error tagged as ErrCorruptState.
func CorruptState(format string, args ...any) error {
	return &kindError{kind: ErrCorruptState, err: errors.NewWithDepthf(1, format, args...)}
}
