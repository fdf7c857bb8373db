package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/smileynet/assistant/internal/config"
	"github.com/smileynet/assistant/internal/tui"
)

// errExitCalled is a sentinel used to catch kong's os.Exit calls in tests.
var errExitCalled = errors.New("exit called")

func TestCLI_Parse(t *testing.T) {
	t.Run("version flag prints version commit and date", func(t *testing.T) {
		// Given: a CLI parser with version, commit, and date fields
		var cli CLI
		var buf bytes.Buffer
		k, err := kong.New(&cli,
			kong.Vars{"version": "v1.0.0 abc1234 2026-01-01T00:00:00Z"},
			kong.Writers(&buf, &buf),
			kong.Exit(func(int) { panic(errExitCalled) }),
		)
		if err != nil {
			t.Fatal(err)
		}

		// When: --version flag is passed
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic from --version flag")
			}
			err, ok := r.(error)
			if !ok || !errors.Is(err, errExitCalled) {
				panic(r)
			}

			// Then: version, commit, and date are all present in output
			for _, want := range []string{"v1.0.0", "abc1234", "2026-01-01T00:00:00Z"} {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("version output = %q, want to contain %q", buf.String(), want)
				}
			}
		}()

		k.Parse([]string{"--version"}) //nolint:errcheck // --version triggers panic via Exit hook
	})

	t.Run("no args selects run", func(t *testing.T) {
		// Given: a CLI parser
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}

		// When: no arguments are provided
		kctx, err := k.Parse([]string{})

		// Then: the default run command is selected
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if kctx.Command() != "run" {
			t.Errorf("command = %q, want %q", kctx.Command(), "run")
		}
	})

	t.Run("run accepts flags", func(t *testing.T) {
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}

		_, err = k.Parse([]string{"run", "--plain", "--log-level", "debug", "--config", "/tmp/a.yaml"})
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if !cli.Run.Plain {
			t.Error("Plain = false, want true")
		}
		if cli.Run.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want %q", cli.Run.LogLevel, "debug")
		}
		if cli.Run.Config != "/tmp/a.yaml" {
			t.Errorf("Config = %q, want %q", cli.Run.Config, "/tmp/a.yaml")
		}
	})

	t.Run("unknown flag errors", func(t *testing.T) {
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := k.Parse([]string{"run", "--nope"}); err == nil {
			t.Fatal("expected error for unknown flag")
		}
	})
}

func TestRunCmd_Run_EndToEnd(t *testing.T) {
	// Given: a config that greets differently and a scripted plain display
	cfg := config.DefaultConfig()
	cfg.Session.Farewell = "See you."
	var out bytes.Buffer
	display := tui.NewDisplay(tui.DisplayOptions{
		Reader:   strings.NewReader("add bob 123\nphone bob\nadd bob 1234567890\nall\nexit\n"),
		Writer:   &out,
		Mode:     config.DisplayPlain,
		Greeting: cfg.Session.Greeting,
	})

	// When: the command runs
	var r RunCmd
	if err := r.run(context.Background(), &cfg, zap.NewNop(), display); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	// Then: the invalid add leaves bob absent until a valid add
	want := []string{
		"Welcome to the assistant bot!",
		"Enter a command: Phone number must contain 10 digits.",
		"Enter a command: Contact 'bob' not found.",
		"Enter a command: Contact added.",
		"Enter a command: Contact name: bob, phone: 1234567890",
		"Enter a command: See you.",
	}
	if got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("output =\n%s\nwant =\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestLoadConfig_ExtraLayer(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "extra.yaml")
	if err := os.WriteFile(path, []byte("session:\n  prompt: \">> \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ASSISTANT_LOG_LEVEL", "warn")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Session.Prompt != ">> " {
		t.Errorf("prompt = %q, want %q", cfg.Session.Prompt, ">> ")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, want %q", cfg.Log.Level, "warn")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: exitSuccess},
		{name: "cancelled", err: fmt.Errorf("run: %w", context.Canceled), want: exitInterrupted},
		{name: "setup", err: errors.New("config: bad"), want: exitSetup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
