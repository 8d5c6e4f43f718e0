package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cornerbrand/cornerbrand/stamp"
	"gopkg.in/yaml.v3"
)

// DefaultPosition is assumed when the configuration leaves the stamp
// position empty.
const DefaultPosition = "우하단"

// ConfigError represents a configuration error with context.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// StampConfig contains the shared stamp settings.
type StampConfig struct {
	// Position is the corner label: 좌상단, 우상단, 좌하단 or 우하단.
	Position string `yaml:"position" json:"position"`

	// SizePreset is the named logo size: 작음, 보통 or 큼.
	SizePreset string `yaml:"size-preset" json:"size_preset,omitempty"`

	// SizePercent, when set, replaces the preset with an explicit
	// percentage of the canvas's shorter side.
	SizePercent *float64 `yaml:"size-percent" json:"size_percent,omitempty"`

	// MarginPercent is the corner margin as a percentage of the
	// canvas's shorter side.
	MarginPercent float64 `yaml:"margin-percent" json:"margin_percent,omitempty"`
}

// SetDefaults sets default values for the stamp settings.
func (c *StampConfig) SetDefaults() {
	if c.Position == "" {
		c.Position = DefaultPosition
	}
	if c.SizePreset == "" {
		c.SizePreset = stamp.DefaultSizePreset
	}
}

// Validate validates the stamp settings.
func (c *StampConfig) Validate() error {
	if c.Position == "" {
		return NewConfigError("position", "required field is missing")
	}
	if _, err := c.Settings().ResolveImage(); err != nil {
		return &ConfigError{Field: "stamp", Message: err.Error(), Err: err}
	}
	return nil
}

// Settings converts the configured values into engine input.
func (c *StampConfig) Settings() stamp.SettingsInput {
	return stamp.SettingsInput{
		Position:      c.Position,
		SizePreset:    c.SizePreset,
		SizePercent:   c.SizePercent,
		MarginPercent: c.MarginPercent,
	}.Normalized()
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level" json:"level,omitempty"`

	// Format is the log format (text, json).
	Format string `yaml:"format" json:"format,omitempty"`

	// Output is the log output (stdout or stderr).
	Output string `yaml:"output" json:"output,omitempty"`
}

// SetDefaults sets default values for logging configuration.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// SlogLevel maps the configured level to its slog value. Unknown levels
// fall back to info.
func (c *LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AppConfig contains the complete application configuration.
type AppConfig struct {
	// Logo is the path to the logo image file.
	Logo string `yaml:"logo" json:"logo,omitempty"`

	// OutputDir collects every output beneath one base directory when
	// set; otherwise outputs land next to their inputs.
	OutputDir string `yaml:"output-dir" json:"output_dir,omitempty"`

	// Stamp contains the shared stamp settings.
	Stamp *StampConfig `yaml:"stamp" json:"stamp,omitempty"`

	// SizeOverrides maps input paths to per-file size percentages.
	SizeOverrides map[string]float64 `yaml:"size-overrides" json:"size_overrides,omitempty"`

	// Logging contains logging configuration.
	Logging *LoggingConfig `yaml:"logging" json:"logging,omitempty"`
}

// Validate validates the complete configuration.
func (c *AppConfig) Validate() error {
	if c.Stamp != nil {
		if err := c.Stamp.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig loads a configuration from a YAML file.
func LoadConfig(filename string) (*AppConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses configuration from YAML data, rejecting unknown
// keys. Missing sections are filled with defaults.
func ParseConfig(data []byte) (*AppConfig, error) {
	var config AppConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Stamp == nil {
		config.Stamp = &StampConfig{}
	}
	config.Stamp.SetDefaults()
	if config.Logging == nil {
		config.Logging = &LoggingConfig{}
	}
	config.Logging.SetDefaults()

	return &config, nil
}
