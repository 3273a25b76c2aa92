// Package config manages titlesift configuration via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/junyuh/titlesift/internal/logging"
)

// Config represents the complete titlesift configuration
type Config struct {
	Filter  FilterConfig  `mapstructure:"filter"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FilterConfig controls the filtering pass
type FilterConfig struct {
	// DebounceMs is the quiet period after the last rule edit before a
	// filtering pass runs (milliseconds)
	DebounceMs int `mapstructure:"debounce_ms"`
	// TitlesFile is the default titles source, one title per line
	TitlesFile string `mapstructure:"titles_file"`
	// Watch reloads the listing when the titles file changes
	Watch bool `mapstructure:"watch"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// MaxRows limits how many listing rows are rendered at once (0 = fit
	// to terminal height)
	MaxRows int `mapstructure:"max_rows"`
}

// LoggingConfig controls diagnostic output
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
	// Dir is where titlesift.log is written; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// Debounce returns the debounce quiet period as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Filter.DebounceMs) * time.Millisecond
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Filter: FilterConfig{
			DebounceMs: 300,
			Watch:      true,
		},
		TUI: TUIConfig{},
		Logging: LoggingConfig{
			Level: logging.LevelInfo,
		},
	}
}

// SetDefaults registers the built-in defaults with viper so they apply
// even without a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("filter.debounce_ms", defaults.Filter.DebounceMs)
	viper.SetDefault("filter.titles_file", defaults.Filter.TitlesFile)
	viper.SetDefault("filter.watch", defaults.Filter.Watch)

	viper.SetDefault("tui.max_rows", defaults.TUI.MaxRows)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load unmarshals and validates the current viper state.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if the
// viper state does not unmarshal.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Filter.DebounceMs < 0 {
		return fmt.Errorf("filter.debounce_ms must be >= 0, got %d", c.Filter.DebounceMs)
	}
	if c.TUI.MaxRows < 0 {
		return fmt.Errorf("tui.max_rows must be >= 0, got %d", c.TUI.MaxRows)
	}
	valid := false
	for _, l := range logging.ValidLevels() {
		if strings.EqualFold(c.Logging.Level, l) {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("logging.level must be one of %v, got %q", logging.ValidLevels(), c.Logging.Level)
	}
	return nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "titlesift")
}
