// Package config handles configuration loading and validation for tick.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/task"
)

// Config holds the application configuration.
//
// Everything here is presentation preference; the task core never reads it.
type Config struct {
	TUI      TUIConfig `yaml:"tui"`
	Defaults Defaults  `yaml:"defaults"`
}

// TUIConfig holds TUI appearance options.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// Defaults holds the initial state of a new session.
type Defaults struct {
	Priority task.Priority `yaml:"priority"`
	Filter   task.Filter   `yaml:"filter"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	return &Config{
		TUI: TUIConfig{Theme: styles.DefaultTheme},
		Defaults: Defaults{
			Priority: task.PriorityMedium,
			Filter:   task.FilterAll,
		},
	}
}

// Load reads the config file at path from fs, falling back to defaults when
// the file does not exist. Unset fields are filled with defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.TUI.Theme == "" {
		c.TUI.Theme = styles.DefaultTheme
	}
	if c.Defaults.Priority == "" {
		c.Defaults.Priority = task.PriorityMedium
	}
	if c.Defaults.Filter == "" {
		c.Defaults.Filter = task.FilterAll
	}
}

// Validate checks that enumerated fields hold known values.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", c.TUI.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	switch c.Defaults.Priority {
	case task.PriorityLow, task.PriorityMedium, task.PriorityHigh:
	default:
		return fmt.Errorf("unknown default priority %q", c.Defaults.Priority)
	}

	switch c.Defaults.Filter {
	case task.FilterAll, task.FilterActive, task.FilterDone:
	default:
		return fmt.Errorf("unknown default filter %q", c.Defaults.Filter)
	}
	return nil
}

// Write marshals cfg to path on fs, creating parent directories as needed.
func Write(fs afero.Fs, path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
