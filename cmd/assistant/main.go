package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/smileynet/assistant/internal/book"
	"github.com/smileynet/assistant/internal/command"
	"github.com/smileynet/assistant/internal/config"
	"github.com/smileynet/assistant/internal/logging"
	"github.com/smileynet/assistant/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for assistant.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Run     RunCmd           `cmd:"" default:"1" help:"Start an interactive contact session (default)."`
}

// RunCmd starts the read-eval loop over a fresh address book.
type RunCmd struct {
	Config   string `help:"Extra config file layered over the user and project config." type:"path"`
	Plain    bool   `help:"Force plain line output even if stdout is a TTY." default:"false"`
	LogLevel string `help:"Log level (debug, info, warn, error). Overrides config." name:"log-level"`
}

// loadConfig loads layered config from user, project and explicit paths with env overrides.
func loadConfig(extra string) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/assistant/config.yaml"),
		".assistant/config.yaml",
		extra,
	)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// Run executes the run command.
func (r *RunCmd) Run() error {
	cfg, err := loadConfig(r.Config)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	// Apply CLI flag overrides.
	if r.Plain {
		cfg.Display.Mode = config.DisplayPlain
	}
	if r.LogLevel != "" {
		cfg.Log.Level = r.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	display := tui.NewDisplay(tui.DisplayOptions{
		Reader:   os.Stdin,
		Writer:   os.Stdout,
		Mode:     cfg.Display.Mode,
		Greeting: cfg.Session.Greeting,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return r.run(ctx, cfg, logger, display)
}

// run builds the session and drives it with display, enabling testable wiring.
func (r *RunCmd) run(ctx context.Context, cfg *config.Config, logger *zap.Logger, display tui.Display) error {
	sess := command.NewSession(book.New(),
		command.WithLogger(logger),
		command.WithPrompt(cfg.Session.Prompt),
		command.WithFarewell(cfg.Session.Farewell),
	)

	logger.Debug("session started", zap.String("display", fmt.Sprintf("%T", display)))
	err := display.Run(ctx, sess)
	logger.Debug("session ended", zap.Bool("closed", sess.Done()), zap.Error(err))
	return err
}

// Exit codes.
const (
	exitSuccess     = 0
	exitSetup       = 2
	exitInterrupted = 130
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Description("Interactive contact manager."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	}
	os.Exit(exitCode(err))
}
