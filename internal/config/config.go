// SPDX-License-Identifier: MIT

// Package config holds the roadnet runtime settings: where the map files live and
// how the process logs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied to every field left empty.
const (
	DefaultDataDir   = "."
	DefaultExtension = "txt"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// ErrInvalid is wrapped by every validation failure from New.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all the configuration needed to run the road map tool.
type Config struct {
	DataDir   string `yaml:"data_dir,omitempty"`   // directory holding the two map files
	Extension string `yaml:"extension,omitempty"`  // map file extension, without the dot
	LogLevel  string `yaml:"log_level,omitempty"`  // debug, info, warn or error
	LogFormat string `yaml:"log_format,omitempty"` // text or json
}

// Default returns a Config with every field set to its default.
func Default() Config {
	return Config{
		DataDir:   DefaultDataDir,
		Extension: DefaultExtension,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load reads a YAML config file. Fields absent from the file stay empty so that
// flags can still be layered on top; New fills in the defaults.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Merge returns base with every non-empty field of override applied on top.
func Merge(base, override Config) Config {
	if override.DataDir != "" {
		base.DataDir = override.DataDir
	}
	if override.Extension != "" {
		base.Extension = override.Extension
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	if override.LogFormat != "" {
		base.LogFormat = override.LogFormat
	}

	return base
}

// New fills defaults into cfg, normalizes it and validates it.
func New(cfg Config) (*Config, error) {
	cfg = Merge(Default(), cfg)
	cfg.Extension = strings.TrimPrefix(cfg.Extension, ".")
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if cfg.Extension == "" || strings.ContainsAny(cfg.Extension, `/\`) {
		return nil, fmt.Errorf("%w: extension %q", ErrInvalid, cfg.Extension)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%w: log level %q must be 'debug', 'info', 'warn', or 'error'", ErrInvalid, cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("%w: log format %q must be 'text' or 'json'", ErrInvalid, cfg.LogFormat)
	}

	return &cfg, nil
}
