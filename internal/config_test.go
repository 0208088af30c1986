package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kr/pretty"
	"github.com/micutio/navkit/internal/units"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadConfig(t *testing.T) {
	expected := Config{
		Units:         "imperial_uk",
		Locale:        "de-DE",
		Route:         "routes/airport.json",
		TickInterval:  500 * time.Millisecond,
		LogFile:       DefaultLogFile,
		Notifications: false,
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "navkit.toml",
			content: `units = "imperial_uk"
locale = "de-DE"
route = "routes/airport.json"
tick_interval = "500ms"
notifications = false
`,
		},
		{
			name: "yaml",
			file: "navkit.yml",
			content: `units: imperial_uk
locale: de-DE
route: routes/airport.json
tick_interval: 500ms
notifications: false
`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, test.file, test.content))
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}

			if diff := pretty.Diff(expected, cfg); len(diff) > 0 {
				t.Errorf("Unexpected config: %v", diff)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "navkit.ini", "units=metric")); !errors.Is(err, errUnsupportedConfig) {
		t.Errorf("Expected errUnsupportedConfig, got %v", err)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}

	if _, err := LoadConfig(writeConfig(t, "broken.toml", "units = ")); err == nil {
		t.Error("Expected a decode error")
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Units = "imperial_us"
	cfg.Locale = "en-US"

	options, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}

	if options.System != units.ImperialUS || options.Tag.String() != "en-US" {
		t.Errorf("Expected imperial_us and en-US, got %v and %v", options.System, options.Tag)
	}

	if options.TickInterval != DefaultTickInterval || options.LogFile != DefaultLogFile || !options.Notifications {
		t.Errorf("Expected defaults to be kept, got %# v", pretty.Formatter(options))
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *Config)
	}{
		{"unknown unit system", func(cfg *Config) { cfg.Units = "nautical" }},
		{"missing locale", func(cfg *Config) { cfg.Locale = "" }},
		{"malformed locale", func(cfg *Config) { cfg.Locale = "not a locale" }},
		{"zero tick interval", func(cfg *Config) { cfg.TickInterval = 0 }},
		{"missing log file", func(cfg *Config) { cfg.LogFile = "" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultConfig()
			test.modify(&cfg)

			if _, err := cfg.Options(); err == nil {
				t.Errorf("Expected a validation error for %# v", pretty.Formatter(cfg))
			}
		})
	}
}
