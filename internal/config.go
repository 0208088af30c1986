package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/micutio/navkit/internal/units"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultTickInterval is how often the ticker and the TUI advance along the route.
	DefaultTickInterval = 2 * time.Second
	// DefaultLogFile receives the logs while the TUI owns the terminal.
	DefaultLogFile = "navkit.log"
)

var errUnsupportedConfig = errors.New("unsupported config file extension")

// Config is read from a TOML or YAML file. Command line flags override its values.
type Config struct {
	Units         string        `toml:"units"         validate:"oneof=metric imperial_us imperial_uk" yaml:"units"`
	Locale        string        `toml:"locale"        validate:"required,bcp47_language_tag"          yaml:"locale"`
	Route         string        `toml:"route"         yaml:"route"`
	TickInterval  time.Duration `toml:"tick_interval" validate:"gt=0"                                 yaml:"tick_interval"`
	LogFile       string        `toml:"log_file"      validate:"required"                             yaml:"log_file"`
	Notifications bool          `toml:"notifications" yaml:"notifications"`
}

// Options is a validated Config in the types the presenters expect.
type Options struct {
	System        units.UnitSystem
	Tag           language.Tag
	Route         string
	TickInterval  time.Duration
	LogFile       string
	Notifications bool
}

// DefaultConfig is used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Units:         units.Metric.String(),
		Locale:        language.English.String(),
		TickInterval:  DefaultTickInterval,
		LogFile:       DefaultLogFile,
		Notifications: true,
	}
}

// LoadConfig reads a config file on top of the defaults. The format follows the file extension.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("loadConfig: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("loadConfig: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("loadConfig: %w", err)
		}
	default:
		return cfg, fmt.Errorf("loadConfig: %w: %s", errUnsupportedConfig, path)
	}

	return cfg, nil
}

// Options validates the config and converts it.
func (cfg Config) Options() (Options, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return Options{}, fmt.Errorf("config.Options: %w", err)
	}

	system, err := units.ParseUnitSystem(cfg.Units)
	if err != nil {
		return Options{}, fmt.Errorf("config.Options: %w", err)
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return Options{}, fmt.Errorf("config.Options: %w", err)
	}

	return Options{
		System:        system,
		Tag:           tag,
		Route:         cfg.Route,
		TickInterval:  cfg.TickInterval,
		LogFile:       cfg.LogFile,
		Notifications: cfg.Notifications,
	}, nil
}
