// Package config provides YAML-based configuration for the crucible CLI:
// default solve settings, the history database location, log level and
// user-defined run-length modes.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/crucible/crucible"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Solve   SolveConfig   `yaml:"solve"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Modes   []ModeConfig  `yaml:"modes"`
}

// SolveConfig holds defaults for the solve command.
type SolveConfig struct {
	Modes        []string `yaml:"modes"`
	Model        string   `yaml:"model"`          // "compressed" or "per-cell"
	GoalRunCheck bool     `yaml:"goal_run_check"` // require MinRun at the goal
	ShowPath     bool     `yaml:"show_path"`
	Record       bool     `yaml:"record"` // save each solve to the history database
}

// StorageConfig locates the history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig sets the CLI log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ModeConfig declares a custom run-length mode.
type ModeConfig struct {
	Name   string `yaml:"name"`
	MinRun int    `yaml:"min_run"`
	MaxRun int    `yaml:"max_run"`
}

// Mode converts m into a crucible.Mode.
func (m ModeConfig) Mode() crucible.Mode {
	return crucible.Mode{Name: m.Name, MinRun: m.MinRun, MaxRun: m.MaxRun}
}

// Default returns the built-in configuration, identical to the embedded
// defaults/crucible.yaml.
func Default() Config {
	return Config{
		Solve: SolveConfig{
			Modes:        []string{crucible.Basic.Name, crucible.Ultra.Name},
			Model:        crucible.ModelCompressed.String(),
			GoalRunCheck: true,
		},
		Storage: StorageConfig{DBPath: "~/.crucible/history.db"},
		Log:     LogConfig{Level: "info"},
	}
}

// Validate checks custom modes and solve defaults.
func (c Config) Validate() error {
	seen := map[string]bool{}
	for _, m := range crucible.Modes() {
		seen[m.Name] = true
	}
	for i, mc := range c.Modes {
		name := strings.ToLower(mc.Name)
		if name == "" {
			return fmt.Errorf("%w: modes[%d] has no name", ErrInvalidConfig, i)
		}
		if seen[name] {
			return fmt.Errorf("%w: mode %q is declared twice or shadows a built-in", ErrInvalidConfig, mc.Name)
		}
		seen[name] = true
		if err := mc.Mode().Validate(); err != nil {
			return fmt.Errorf("%w: modes[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	if _, err := crucible.ParseModel(c.Solve.Model); err != nil {
		return fmt.Errorf("%w: solve.model: %w", ErrInvalidConfig, err)
	}
	for _, name := range c.Solve.Modes {
		if _, err := c.ResolveMode(name); err != nil {
			return fmt.Errorf("%w: solve.modes: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

// ResolveMode finds a mode by name among the built-ins and then the
// configured custom modes, ignoring case.
func (c Config) ResolveMode(name string) (crucible.Mode, error) {
	if m, err := crucible.ModeByName(name); err == nil {
		return m, nil
	}
	for _, mc := range c.Modes {
		if strings.EqualFold(mc.Name, name) {
			return mc.Mode(), nil
		}
	}

	return crucible.Mode{}, fmt.Errorf("%w: %q", crucible.ErrUnknownMode, name)
}

// AllModes returns the built-in modes followed by the custom ones.
func (c Config) AllModes() []crucible.Mode {
	out := crucible.Modes()
	for _, mc := range c.Modes {
		out = append(out, mc.Mode())
	}

	return out
}
