package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Filter.DebounceMs != 300 {
		t.Errorf("DebounceMs = %d, want 300", cfg.Filter.DebounceMs)
	}
	if cfg.Debounce() != 300*time.Millisecond {
		t.Errorf("Debounce() = %v, want 300ms", cfg.Debounce())
	}
	if !cfg.Filter.Watch {
		t.Error("Watch should default to true")
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Logging.Level = %q, want INFO", cfg.Logging.Level)
	}
}

func TestOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	viper.Set("filter.debounce_ms", 150)
	viper.Set("filter.titles_file", "listing.txt")
	viper.Set("logging.level", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Filter.DebounceMs != 150 {
		t.Errorf("DebounceMs = %d, want 150", cfg.Filter.DebounceMs)
	}
	if cfg.Filter.TitlesFile != "listing.txt" {
		t.Errorf("TitlesFile = %q, want listing.txt", cfg.Filter.TitlesFile)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(*Config) {}, false},
		{"negative debounce", func(c *Config) { c.Filter.DebounceMs = -1 }, true},
		{"negative max rows", func(c *Config) { c.TUI.MaxRows = -5 }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "LOUD" }, true},
		{"lowercase level ok", func(c *Config) { c.Logging.Level = "warn" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestGetFallsBackToDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("filter.debounce_ms", -10) // fails validation

	cfg := Get()
	if cfg.Filter.DebounceMs != 300 {
		t.Errorf("Get() should fall back to defaults, DebounceMs = %d", cfg.Filter.DebounceMs)
	}
}
