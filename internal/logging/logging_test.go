package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/smileynet/assistant/internal/config"
)

func TestNew_EmptyLevelIsNop(t *testing.T) {
	logger, err := New(config.Log{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("empty level should produce a disabled logger")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(config.Log{Level: "loud"}); err == nil {
		t.Fatal("New() should reject unknown level")
	}
}

func TestNew_WritesToFile(t *testing.T) {
	// Given: a log file and info level
	path := filepath.Join(t.TempDir(), "assistant.log")
	logger, err := New(config.Log{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// When: entries at debug and info are written
	logger.Debug("hidden entry")
	logger.Info("visible entry")
	_ = logger.Sync()

	// Then: only the info entry is in the file
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "visible entry") {
		t.Errorf("log file = %q, want info entry", data)
	}
	if strings.Contains(string(data), "hidden entry") {
		t.Errorf("log file = %q, debug entry should be filtered", data)
	}
}
