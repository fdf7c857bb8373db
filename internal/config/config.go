// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Display modes.
const (
	DisplayAuto  = "auto"
	DisplayPlain = "plain"
	DisplayTUI   = "tui"
)

// Config holds all assistant configuration.
type Config struct {
	Session Session `yaml:"session"`
	Display Display `yaml:"display"`
	Log     Log     `yaml:"log"`
}

// Session holds the texts of the interactive loop.
type Session struct {
	Greeting string `yaml:"greeting"`
	Prompt   string `yaml:"prompt"`
	Farewell string `yaml:"farewell"`
}

// Display selects how the loop is rendered.
type Display struct {
	Mode string `yaml:"mode"` // "auto" | "plain" | "tui"
}

// Log holds logging settings. An empty Level disables logging.
type Log struct {
	Level string `yaml:"level"` // "" | "debug" | "info" | "warn" | "error"
	File  string `yaml:"file"`  // Empty means stderr
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Session: Session{
			Greeting: "Welcome to the assistant bot!",
			Prompt:   "Enter a command: ",
			Farewell: "Good bye!",
		},
		Display: Display{
			Mode: DisplayAuto,
		},
	}
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files and empty paths are skipped.
// A file with invalid YAML or unknown fields is an error.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Session.Prompt == "" {
		return errors.New("config: session.prompt cannot be empty")
	}
	switch c.Display.Mode {
	case DisplayAuto, DisplayPlain, DisplayTUI:
		// valid
	default:
		return fmt.Errorf("config: display.mode must be \"auto\", \"plain\" or \"tui\", got %q", c.Display.Mode)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error or empty, got %q", c.Log.Level)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ASSISTANT_DISPLAY_MODE, ASSISTANT_LOG_LEVEL, ASSISTANT_LOG_FILE.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ASSISTANT_DISPLAY_MODE"); v != "" {
		c.Display.Mode = v
	}
	if v := os.Getenv("ASSISTANT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ASSISTANT_LOG_FILE"); v != "" {
		c.Log.File = v
	}
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Session *rawSession `yaml:"session"`
	Display *rawDisplay `yaml:"display"`
	Log     *rawLog     `yaml:"log"`
}

type rawSession struct {
	Greeting *string `yaml:"greeting"`
	Prompt   *string `yaml:"prompt"`
	Farewell *string `yaml:"farewell"`
}

type rawDisplay struct {
	Mode *string `yaml:"mode"`
}

type rawLog struct {
	Level *string `yaml:"level"`
	File  *string `yaml:"file"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if s := layer.Session; s != nil {
		setString(&c.Session.Greeting, s.Greeting)
		setString(&c.Session.Prompt, s.Prompt)
		setString(&c.Session.Farewell, s.Farewell)
	}
	if d := layer.Display; d != nil {
		setString(&c.Display.Mode, d.Mode)
	}
	if l := layer.Log; l != nil {
		setString(&c.Log.Level, l.Level)
		setString(&c.Log.File, l.File)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
