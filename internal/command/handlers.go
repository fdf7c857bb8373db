package command

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/smileynet/assistant/internal/contact"
)

// DefaultRegistry returns a Registry with every assistant command.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Command{Name: "hello", Summary: "Greet the assistant.", Run: hello})
	r.Register(Command{Name: "add", Usage: "<name> <phone>...", Summary: "Add a contact or more phones to one.", Run: addContact})
	r.Register(Command{Name: "change", Usage: "<name> <new-phone>", Summary: "Replace one of a contact's phones.", Run: changeContact})
	r.Register(Command{Name: "phone", Usage: "<name>", Summary: "Show a contact's phones.", Run: showPhone})
	r.Register(Command{Name: "all", Summary: "List all contacts.", Run: showAll})
	r.Register(Command{Name: "delete", Usage: "<name>", Summary: "Delete a contact.", Run: deleteContact})
	r.Register(Command{Name: "help", Summary: "List commands.", Run: help})
	r.Register(Command{Name: "close", Summary: "Leave the assistant.", Run: terminate})
	r.Register(Command{Name: "exit", Summary: "Leave the assistant.", Run: terminate})
	return r
}

func hello(*Session, []string) (string, error) {
	return "How can I help you?", nil
}

func terminate(s *Session, _ []string) (string, error) {
	s.state = StateTerminated
	s.pending = nil
	return s.farewell, nil
}

func addContact(s *Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", usage("Give me name and at least one phone number, separated by spaces.")
	}
	name, phones := args[0], args[1:]

	if r, ok := s.book.Find(name); ok {
		if err := r.AddPhones(phones...); err != nil {
			return "", err
		}
		s.log.Info("phones added", zap.String("contact", r.Name().String()), zap.Int("count", len(phones)))
		return fmt.Sprintf("Phone number(s) added to contact '%s'.", name), nil
	}

	r, err := contact.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := r.AddPhones(phones...); err != nil {
		return "", err
	}
	s.book.Add(r)
	s.log.Info("contact added", zap.String("contact", r.Name().String()))
	return "Contact added.", nil
}

func changeContact(s *Session, args []string) (string, error) {
	switch {
	case len(args) < 2:
		return "", usage("Please provide both name and new phone number.")
	case len(args) > 2:
		return "", usage("Please provide the contact name and the new phone number only.")
	}
	name, newPhone := args[0], args[1]

	r, ok := s.book.Find(name)
	if !ok {
		return "", contactNotFound(name)
	}
	if _, err := contact.NewPhone(newPhone); err != nil {
		return "", err
	}

	choices := r.Phones()
	var b strings.Builder
	fmt.Fprintf(&b, "Available phone numbers for contact %s:", name)
	for i, p := range choices {
		fmt.Fprintf(&b, "\n%d: %s", i, p)
	}

	s.pending = &pendingChange{record: r, newPhone: newPhone, choices: choices}
	s.state = StateSelecting
	return b.String(), nil
}

// selectPhone completes a pending change with the index the user typed.
// The session returns to StateRunning whatever the outcome.
func selectPhone(s *Session, args []string) (string, error) {
	p := s.pending
	s.pending = nil
	s.state = StateRunning
	if p == nil {
		return "", ErrInvalidCommand
	}

	const invalid = "Invalid phone number. Please enter a valid number."
	i, err := strconv.Atoi(args[0])
	if err != nil || i < 0 || i >= len(p.choices) || strconv.Itoa(i) != args[0] {
		return invalid, nil
	}

	if err := p.record.RemovePhone(p.choices[i]); err != nil {
		return "", err
	}
	if err := p.record.AddPhone(p.newPhone); err != nil {
		return "", err
	}
	s.log.Info("contact updated", zap.String("contact", p.record.Name().String()))
	return "Contact updated.", nil
}

func showPhone(s *Session, args []string) (string, error) {
	if len(args) == 0 {
		return "", usage("Please provide the name of the contact or type 'phone <contact_name>'.")
	}
	name := args[0]

	r, ok := s.book.Find(name)
	if !ok {
		return "", contactNotFound(name)
	}
	phones := r.Phones()
	switch len(phones) {
	case 0:
		return fmt.Sprintf("Contact '%s' has no phone numbers.", name), nil
	case 1:
		return fmt.Sprintf("The phone number for contact '%s' is: %s.", name, phones[0]), nil
	default:
		return fmt.Sprintf("The phone numbers for contact '%s' are: %s.", name, strings.Join(phones, ", ")), nil
	}
}

func showAll(s *Session, _ []string) (string, error) {
	records := s.book.Records()
	if len(records) == 0 {
		return "No contacts found.", nil
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func deleteContact(s *Session, args []string) (string, error) {
	if len(args) == 0 {
		return "", usage("Please provide the name of the contact to delete.")
	}
	if err := s.book.Delete(args[0]); err != nil {
		return "", err
	}
	s.log.Info("contact deleted", zap.String("contact", strings.ToLower(args[0])))
	return "Contact deleted.", nil
}

func help(s *Session, _ []string) (string, error) {
	cmds := s.registry.Commands()
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = fmt.Sprintf("%-26s %s", strings.TrimSpace(c.Name+" "+c.Usage), c.Summary)
	}
	return strings.Join(lines, "\n"), nil
}

func contactNotFound(name string) error {
	return &contact.Error{Kind: contact.ErrNotFound, Msg: fmt.Sprintf("Contact '%s' not found.", name)}
}
