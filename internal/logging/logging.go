// Package logging builds the zap logger used by the assistant.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/smileynet/assistant/internal/config"
)

// New returns a logger for cfg. An empty level yields a no-op logger so the
// interactive output stays clean. Output goes to cfg.File, or stderr when unset;
// never to stdout.
func New(cfg config.Log) (*zap.Logger, error) {
	if cfg.Level == "" {
		return zap.NewNop(), nil
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = level
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: building logger: %w", err)
	}
	return logger, nil
}
