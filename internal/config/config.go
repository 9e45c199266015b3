// Package config loads the CalcSat host configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"calcsat/calcos/calc"
	"calcsat/hal"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the host-side settings. The device firmware has none.
type Config struct {
	Display DisplayConfig     `yaml:"display"`
	Runner  RunnerConfig      `yaml:"runner"`
	Logging LoggingConfig     `yaml:"logging"`
	Keymap  map[string]string `yaml:"keymap"`
	Watch   bool              `yaml:"watch"`
}

// DisplayConfig sizes the emulated character LCD.
type DisplayConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// RunnerConfig paces the host runners.
type RunnerConfig struct {
	Hz       int `yaml:"hz"`
	KeyEvery int `yaml:"key_every"` // ticks between scripted keys in headless mode
}

// LoggingConfig selects the zap level.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration: a 16x2 panel at 60 Hz.
func Default() Config {
	return Config{
		Display: DisplayConfig{Cols: 16, Rows: 2},
		Runner:  RunnerConfig{Hz: 60, KeyEvery: 6},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and the keymap.
func (c Config) Validate() error {
	if c.Display.Cols < 8 || c.Display.Cols > 40 {
		return fmt.Errorf("%w: display.cols %d not in 8..40", ErrInvalid, c.Display.Cols)
	}
	if c.Display.Rows < 1 || c.Display.Rows > 4 {
		return fmt.Errorf("%w: display.rows %d not in 1..4", ErrInvalid, c.Display.Rows)
	}
	if c.Runner.Hz < 1 || c.Runner.Hz > 1000 {
		return fmt.Errorf("%w: runner.hz %d not in 1..1000", ErrInvalid, c.Runner.Hz)
	}
	if c.Runner.KeyEvery < 1 {
		return fmt.Errorf("%w: runner.key_every must be positive", ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	_, err := c.KeymapTable()
	return err
}

// Level parses the logging level.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(c.Logging.Level))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	return lvl, nil
}

// KeymapTable builds the host keymap. Every binding must produce a keypad
// symbol.
func (c Config) KeymapTable() (*hal.Keymap, error) {
	km, err := hal.ParseKeymap(c.Keymap)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, r := range km.Symbols() {
		if r > 0x7f || !calc.Key(r).Valid() {
			return nil, fmt.Errorf("%w: keymap symbol %q is not a keypad key", ErrInvalid, r)
		}
	}
	return km, nil
}
