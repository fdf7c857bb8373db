package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model for the assistant prompt. Finished exchanges
// are printed above the prompt; the view itself only holds the input line and
// the help bar.
type Model struct {
	exec     Executor
	input    textinput.Model
	keys     keyMap
	help     help.Model
	greeting string
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithGreeting sets a line printed when the program starts.
func WithGreeting(g string) ModelOption {
	return func(m *Model) { m.greeting = g }
}

// NewModel creates a Model reading commands for exec.
func NewModel(exec Executor, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Prompt = exec.Prompt()
	ti.PromptStyle = promptStyle
	ti.CharLimit = 512
	ti.Focus()

	m := Model{
		exec:  exec,
		input: ti,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init prints the greeting and starts the cursor blink.
func (m Model) Init() tea.Cmd {
	if m.greeting == "" {
		return textinput.Blink
	}
	return tea.Batch(tea.Println(greetingStyle.Render(m.greeting)), textinput.Blink)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 0)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the current input line and prints the exchange.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	echo := m.input.Prompt + line
	m.input.Reset()

	reply := m.exec.Execute(line)
	printed := promptStyle.Render(echo)
	if reply.Text != "" {
		printed += "\n" + renderReply(reply.Text, reply.Failed)
	}
	printCmd := tea.Println(printed)

	if m.exec.Done() {
		m.quitting = true
		return m, tea.Sequence(printCmd, tea.Quit)
	}
	m.input.Prompt = m.exec.Prompt()
	return m, printCmd
}

// View renders the prompt line and help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n" + m.help.View(m.keys) + "\n"
}
