// Package apperr defines the application's error values
package apperr

import "fmt"

// Error is an application error with an optional underlying cause.
type Error struct {
	Err     error
	parent  *Error
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fmt returns a copy of the error with its message placeholders filled in.
// The copy still matches the original through errors.Is.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Err:     e.Err,
		parent:  e,
	}
}

// Wrap returns a copy of the error with an underlying cause attached.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
		parent:  e,
	}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.parent == t
}
