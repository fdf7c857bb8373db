package command

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/smileynet/assistant/internal/contact"
)

// Dispatcher-level sentinel errors.
var (
	ErrMissingArgument = errors.New("command: missing argument")
	ErrInvalidCommand  = errors.New("command: invalid command")
)

// Fallback replies for errors that carry no message of their own.
const (
	replyMissingArgument = "Enter the argument for the command."
	replyMissingName     = "Enter name."
	replyInvalidCommand  = "Invalid command."
)

// UsageError reports a command called with the wrong arguments.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func (e *UsageError) Unwrap() error { return ErrMissingArgument }

func usage(msg string) error {
	return &UsageError{Msg: msg}
}

// Translate converts a handler error into the single line shown to the user.
func Translate(err error) string {
	var ce *contact.Error
	if errors.As(err, &ce) && ce.Msg != "" {
		return ce.Msg
	}
	var ue *UsageError
	if errors.As(err, &ue) && ue.Msg != "" {
		return ue.Msg
	}
	switch {
	case errors.Is(err, ErrMissingArgument):
		return replyMissingArgument
	case errors.Is(err, contact.ErrNotFound):
		return replyMissingName
	default:
		return replyInvalidCommand
	}
}

// guard wraps h so that a panic inside it surfaces as ErrInvalidCommand
// instead of ending the session.
func guard(log *zap.Logger, name string, h Handler) Handler {
	return func(s *Session, args []string) (reply string, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("command panicked", zap.String("command", name), zap.Any("panic", r))
				reply, err = "", fmt.Errorf("%w: %s: %v", ErrInvalidCommand, name, r)
			}
		}()
		return h(s, args)
	}
}
