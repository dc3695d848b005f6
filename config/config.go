// Package config loads strkit settings from YAML, TOML or JSON files.
//
// A missing field keeps its default. Files can be watched for changes:
//
//	for u := range config.Watch(ctx, "strkit.yaml") {
//	    if u.Err != nil {
//	        continue
//	    }
//	    apply(u.Config)
//	}
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration handling.
var (
	// ErrInvalid indicates a configuration value is out of range.
	ErrInvalid = errors.New("invalid configuration")

	// ErrFormat indicates the file extension is not a supported format.
	ErrFormat = errors.New("unsupported config format")
)

// Format identifies a configuration file syntax.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Config holds the settings an execution context is built from.
type Config struct {
	// Allocator bounds the memory held by string values.
	Allocator AllocatorConfig `json:"allocator" yaml:"allocator" toml:"allocator"`

	// Scratch sizes the reusable encode buffer.
	Scratch ScratchConfig `json:"scratch" yaml:"scratch" toml:"scratch"`

	// Log selects the log level.
	Log LogConfig `json:"log" yaml:"log" toml:"log"`
}

// AllocatorConfig configures the string allocator.
type AllocatorConfig struct {
	// LimitBytes caps the bytes held by live values. 0 means unlimited.
	LimitBytes int `json:"limit_bytes" yaml:"limit_bytes" toml:"limit_bytes" jsonschema:"minimum=0,default=0"`
}

// ScratchConfig configures the encode scratch buffer.
type ScratchConfig struct {
	// InitialSize is the starting capacity in bytes.
	// Default: 64. Minimum: 8.
	InitialSize int `json:"initial_size" yaml:"initial_size" toml:"initial_size" jsonschema:"minimum=8,default=64"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: "info".
	Level string `json:"level" yaml:"level" toml:"level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Scratch: ScratchConfig{InitialSize: 64},
		Log:     LogConfig{Level: "info"},
	}
}

// Validate checks that every value is in range.
func (c Config) Validate() error {
	if c.Allocator.LimitBytes < 0 {
		return fmt.Errorf("%w: allocator.limit_bytes must be non-negative", ErrInvalid)
	}
	if c.Scratch.InitialSize < 8 {
		return fmt.Errorf("%w: scratch.initial_size must be at least 8", ErrInvalid)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the slog level for Log.Level, falling back to info.
func (c Config) LogLevel() slog.Level {
	lvl, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ParseLevel converts a level name to a slog level. The empty string means
// info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalid, name)
	}
}

// FormatOf picks a format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrFormat, path)
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	case FormatJSON:
		err = json.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrFormat, format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s config: %w", format, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
