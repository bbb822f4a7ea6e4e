// Package apperr defines the error type used for user-facing failures
package apperr

import "fmt"

// Error is an error with a message meant for the user. The message may
// contain formatting verbs which are filled in by Fmt.
type Error struct {
	Err     error
	origin  *Error
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted with args. The
// copy still matches the original with errors.Is.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Err:     e.Err,
		origin:  e,
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
		origin:  e,
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is e or one of the errors e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	for o := e; o != nil; o = o.origin {
		if o == t {
			return true
		}
	}

	return false
}
