package contact

import "errors"

// Sentinel errors classifying contact failures. Use errors.Is to test for them.
var (
	ErrInvalidFormat = errors.New("contact: invalid format")
	ErrNotFound      = errors.New("contact: not found")
)

// Error is a contact failure with a message fit to show the user.
// It unwraps to its Kind so errors.Is(err, ErrNotFound) works.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func invalidFormat(msg string) error {
	return &Error{Kind: ErrInvalidFormat, Msg: msg}
}

func notFound(msg string) error {
	return &Error{Kind: ErrNotFound, Msg: msg}
}
