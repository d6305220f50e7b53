// Package config loads optional YAML defaults for the almanac CLI.
//
// Precedence is flag > file > built-in default; the cli package applies
// only the flags the user actually set on top of a loaded Config.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the solve/check flags that make sense as saved defaults.
type Config struct {
	Mode            string    `yaml:"mode"`   // values | ranges | both
	Output          string    `yaml:"output"` // text | json | jsonl
	EmitRanges      bool      `yaml:"emit_ranges"`
	Header          *bool     `yaml:"header,omitempty"`
	Workers         int       `yaml:"workers"`
	NoMatchExitCode *int      `yaml:"no_match_exit_code,omitempty"`
	ExhaustiveLimit int64     `yaml:"exhaustive_limit"`
	Log             LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in defaults.
func Default() Config {
	header := true
	noMatch := 1
	return Config{
		Mode:            "both",
		Output:          "text",
		Header:          &header,
		Workers:         0,
		NoMatchExitCode: &noMatch,
		ExhaustiveLimit: 1_000_000,
		Log:             LogConfig{Level: "warn", Format: "console"},
	}
}

// Load reads path over Default. Keys absent from the file keep their
// defaults; unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	switch c.Mode {
	case "values", "ranges", "both":
	default:
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	switch c.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid output %q", c.Output)
	}
	if c.Workers < 0 {
		return errors.New("workers must be ≥ 0")
	}
	if c.NoMatchExitCode != nil && (*c.NoMatchExitCode < 0 || *c.NoMatchExitCode > 255) {
		return errors.New("no_match_exit_code must be between 0 and 255")
	}
	if c.ExhaustiveLimit < 0 {
		return errors.New("exhaustive_limit must be ≥ 0")
	}
	return nil
}
