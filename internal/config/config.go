package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration looked up in the working directory.
const FileName = ".embedgen.yaml"

// Config represents the project defaults parsed from .embedgen.yaml.
// Every field may be overridden by the corresponding command-line flag.
type Config struct {
	// Render contains the defaults for the generated declaration.
	Render RenderConfig `yaml:"render"`
	// Output controls how the header file is written.
	Output OutputConfig `yaml:"output"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig configures the declaration syntax.
type RenderConfig struct {
	// Mode is "text" (default) or "binary".
	Mode string `yaml:"mode"`
	// Style is "array", "c-array", "cstring" or "string-view". Empty picks the mode default.
	Style string `yaml:"style"`
	// LineWidth is the number of literals per line. Zero picks the style default.
	LineWidth int `yaml:"line_width"`
	// Namespace wraps the declaration, e.g. "assets::icons".
	Namespace string `yaml:"namespace"`
	// Guard is "ifndef" or "pragma".
	Guard string `yaml:"guard"`
}

// OutputConfig configures the written file.
type OutputConfig struct {
	// LineEnding is "lf", "crlf" or "native".
	LineEnding string `yaml:"line_ending"`
	// Encoding names the text-mode input encoding.
	Encoding string `yaml:"encoding"`
	// Force allows replacing an existing output file.
	Force bool `yaml:"force"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads the configuration at path. When path is empty, FileName in the
// working directory is used if it exists, and defaults otherwise.
// The returned Config has defaults applied and has been validated.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

var validModes = map[string]bool{
	"binary": true,
	"text":   true,
}

var validStyles = map[string]bool{
	"":            true,
	"array":       true,
	"c-array":     true,
	"cstring":     true,
	"string-view": true,
}

var validGuards = map[string]bool{
	"ifndef": true,
	"pragma": true,
}

var validLineEndings = map[string]bool{
	"lf":     true,
	"crlf":   true,
	"native": true,
}

// Validate checks the configuration for unsupported values.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if !validModes[config.Render.Mode] {
		return fmt.Errorf("invalid render mode: %s (allowed: binary, text)", config.Render.Mode)
	}
	if !validStyles[config.Render.Style] {
		return fmt.Errorf("invalid render style: %s (allowed: array, c-array, cstring, string-view)", config.Render.Style)
	}
	if config.Render.LineWidth < 0 {
		return fmt.Errorf("invalid line width: %d (must not be negative)", config.Render.LineWidth)
	}
	if !validGuards[config.Render.Guard] {
		return fmt.Errorf("invalid guard: %s (allowed: ifndef, pragma)", config.Render.Guard)
	}
	if !validLineEndings[config.Output.LineEnding] {
		return fmt.Errorf("invalid line ending: %s (allowed: lf, crlf, native)", config.Output.LineEnding)
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing
// and lower-cases the enumerated ones.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	config.Render.Mode = strings.ToLower(config.Render.Mode)
	config.Render.Style = strings.ToLower(config.Render.Style)
	config.Render.Guard = strings.ToLower(config.Render.Guard)
	config.Output.LineEnding = strings.ToLower(config.Output.LineEnding)

	if config.Render.Mode == "" {
		config.Render.Mode = "text"
	}
	if config.Render.Guard == "" {
		config.Render.Guard = "ifndef"
	}
	if config.Output.LineEnding == "" {
		config.Output.LineEnding = "lf"
	}
	if config.Output.Encoding == "" {
		config.Output.Encoding = "utf-8"
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// LineEndingString returns the byte sequence for a line ending name.
// "native" resolves to CRLF on Windows and LF elsewhere.
func LineEndingString(name, goos string) string {
	switch name {
	case "crlf":
		return "\r\n"
	case "native":
		if goos == "windows" {
			return "\r\n"
		}
		return "\n"
	default:
		return "\n"
	}
}
