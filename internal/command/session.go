// Package command turns input lines into address book operations.
//
// A Session is a small state machine: it normally reads commands, switches to
// a selection state while "change" waits for the user to pick a phone, and
// stops accepting input once "close" or "exit" is seen.
package command

import (
	"strings"

	"go.uber.org/zap"

	"github.com/smileynet/assistant/internal/book"
	"github.com/smileynet/assistant/internal/contact"
)

// State is the dispatcher state.
type State int

const (
	StateRunning    State = iota // reading commands
	StateSelecting               // waiting for the phone index of a pending change
	StateTerminated              // close/exit seen; input is ignored
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateSelecting:
		return "selecting"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Defaults for the session texts.
const (
	DefaultPrompt   = "Enter a command: "
	DefaultFarewell = "Good bye!"

	selectionPrompt = "Enter the number of the phone you want to change: "
)

// Reply is the outcome of one input line. Failed is set when Text describes an error.
type Reply struct {
	Text   string
	Failed bool
}

// pendingChange holds a "change" waiting for the user to choose a phone.
type pendingChange struct {
	record   *contact.Record
	newPhone string
	choices  []string
}

// Session dispatches input lines against one address book.
// It is not safe for concurrent use.
type Session struct {
	book     *book.AddressBook
	registry *Registry
	log      *zap.Logger
	prompt   string
	farewell string

	state   State
	pending *pendingChange
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithRegistry replaces the default command set.
func WithRegistry(r *Registry) Option {
	return func(s *Session) { s.registry = r }
}

// WithPrompt sets the prompt shown while reading commands.
func WithPrompt(p string) Option {
	return func(s *Session) { s.prompt = p }
}

// WithFarewell sets the reply to close/exit.
func WithFarewell(f string) Option {
	return func(s *Session) { s.farewell = f }
}

// NewSession creates a running Session over b.
func NewSession(b *book.AddressBook, opts ...Option) *Session {
	s := &Session{
		book:     b,
		log:      zap.NewNop(),
		prompt:   DefaultPrompt,
		farewell: DefaultFarewell,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = DefaultRegistry()
	}
	return s
}

// Book returns the address book the session operates on.
func (s *Session) Book() *book.AddressBook { return s.book }

// State returns the current dispatcher state.
func (s *Session) State() State { return s.state }

// Done reports whether the session has terminated.
func (s *Session) Done() bool { return s.state == StateTerminated }

// Prompt returns the prompt to show before the next line is read.
func (s *Session) Prompt() string {
	if s.state == StateSelecting {
		return selectionPrompt
	}
	return s.prompt
}

// Execute handles one line of input.
func (s *Session) Execute(line string) Reply {
	switch s.state {
	case StateTerminated:
		return Reply{}
	case StateSelecting:
		return s.run("change", selectPhone, []string{strings.TrimSpace(line)})
	}

	name, args := Parse(line)
	c, err := s.registry.Lookup(name)
	if err != nil {
		s.log.Debug("unknown command", zap.String("command", name))
		return Reply{Text: Translate(err), Failed: true}
	}
	return s.run(c.Name, c.Run, args)
}

func (s *Session) run(name string, h Handler, args []string) Reply {
	s.log.Debug("dispatch", zap.String("command", name), zap.Int("args", len(args)))
	text, err := guard(s.log, name, h)(s, args)
	if err != nil {
		s.log.Debug("command failed", zap.String("command", name), zap.Error(err))
		return Reply{Text: Translate(err), Failed: true}
	}
	return Reply{Text: text}
}

// Parse splits line on whitespace. The first field, lower-cased, is the
// command; the remaining fields are its arguments. A blank line yields an
// empty command.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
