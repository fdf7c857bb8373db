package command

import (
	"fmt"
	"sort"
	"strings"
)

// Handler runs one command against a session and returns its reply text.
type Handler func(s *Session, args []string) (string, error)

// Command describes a registered command.
type Command struct {
	Name    string
	Usage   string // argument synopsis, e.g. "<name> <phone>..."
	Summary string
	Run     Handler
}

// Registry maps command names to commands.
// It is not safe for concurrent use; registration should happen at startup.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command under c.Name. Overwrites if the name already exists.
// Panics if the name is empty or Run is nil (programmer error).
func (r *Registry) Register(c Command) {
	if c.Name == "" {
		panic("command: Register called with empty name")
	}
	if c.Run == nil {
		panic("command: Register called with nil handler")
	}
	r.commands[c.Name] = c
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, error) {
	c, ok := r.commands[name]
	if !ok {
		return Command{}, &UnknownCommandError{Name: name, Available: r.Names()}
	}
	return c, nil
}

// Names returns registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Commands returns registered commands sorted by name.
func (r *Registry) Commands() []Command {
	names := r.Names()
	out := make([]Command, len(names))
	for i, name := range names {
		out[i] = r.commands[name]
	}
	return out
}

// UnknownCommandError indicates a command name is not registered.
type UnknownCommandError struct {
	Name      string
	Available []string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

func (e *UnknownCommandError) Unwrap() error { return ErrInvalidCommand }
