// Package apperr holds the error kinds the rules engine reports to callers.
// Each Error carries a user-facing (localized) message and unwraps to its kind,
// so callers test with errors.Is(err, apperr.ErrNotFound).
package apperr

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
)

type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error { return e.Kind }

func NotFound(msg string) *Error { return &Error{Kind: ErrNotFound, Message: msg} }

func Duplicate(msg string) *Error { return &Error{Kind: ErrDuplicateKey, Message: msg} }

func Invalid(msg string) *Error { return &Error{Kind: ErrInvalidInput, Message: msg} }

// Message returns the user-facing text of err, or "" when err is not an *Error.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return ""
}
