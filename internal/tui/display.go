// Package tui renders the assistant's read-eval loop, either as plain
// prompt/reply lines or as a Bubble Tea terminal UI.
package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/assistant/internal/command"
	"github.com/smileynet/assistant/internal/config"
)

// Executor runs input lines. *command.Session implements it.
type Executor interface {
	Execute(line string) command.Reply
	Prompt() string
	Done() bool
}

var _ Executor = (*command.Session)(nil)

// Display drives an Executor until it is done, input ends, or ctx is cancelled.
type Display interface {
	Run(ctx context.Context, exec Executor) error
}

// DisplayOptions configures display creation.
type DisplayOptions struct {
	Reader   io.Reader // Input source (default: os.Stdin).
	Writer   io.Writer // Output destination (default: os.Stdout).
	Mode     string    // config.DisplayAuto, DisplayPlain or DisplayTUI.
	Greeting string    // Printed once before the first prompt.
}

// NewDisplay returns a TUI display for mode "tui", or for "auto" when both
// ends are terminals, and a plain text display otherwise.
func NewDisplay(opts DisplayOptions) Display {
	if opts.Reader == nil {
		opts.Reader = os.Stdin
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch opts.Mode {
	case config.DisplayTUI:
		return &TUIDisplay{r: opts.Reader, w: opts.Writer, greeting: opts.Greeting}
	case config.DisplayAuto:
		if isTTY(opts.Reader) && isTTY(opts.Writer) {
			return &TUIDisplay{r: opts.Reader, w: opts.Writer, greeting: opts.Greeting}
		}
	}
	return &PlainDisplay{r: opts.Reader, w: opts.Writer, greeting: opts.Greeting}
}

// isTTY reports whether v is a file connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainDisplay prints a prompt, reads a line, and prints the reply.
type PlainDisplay struct {
	r        io.Reader
	w        io.Writer
	greeting string
}

// Run loops until the executor is done or input ends. End of input is not an error.
// Returns the context error if cancelled.
func (d *PlainDisplay) Run(ctx context.Context, exec Executor) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if d.greeting != "" {
		_, _ = fmt.Fprintln(d.w, d.greeting)
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(d.r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- sc.Err()
	}()

	for !exec.Done() {
		_, _ = fmt.Fprint(d.w, exec.Prompt())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				// The reader stops early only when ctx is cancelled.
				if err := ctx.Err(); err != nil {
					return err
				}
				// Terminate the dangling prompt line.
				_, _ = fmt.Fprintln(d.w)
				return <-readErr
			}
			if reply := exec.Execute(line); reply.Text != "" {
				_, _ = fmt.Fprintln(d.w, reply.Text)
			}
		}
	}
	return nil
}

// TUIDisplay runs the loop as a Bubble Tea program.
// Falls back to PlainDisplay if the program fails to start.
type TUIDisplay struct {
	r        io.Reader
	w        io.Writer
	greeting string
}

// Run starts the Bubble Tea program and blocks until it exits.
func (d *TUIDisplay) Run(ctx context.Context, exec Executor) error {
	model := NewModel(exec, WithGreeting(d.greeting))
	p := tea.NewProgram(model,
		tea.WithInput(d.r),
		tea.WithOutput(d.w),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if exec.Done() {
		return err
	}

	// The greeting was already shown by the model if it got that far.
	plain := &PlainDisplay{r: d.r, w: d.w}
	return plain.Run(ctx, exec)
}
