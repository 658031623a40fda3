// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration loading and validation for routedoc.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"

	"github.com/routedoc/routedoc/internal/render"
	"github.com/routedoc/routedoc/internal/scan"
	"github.com/routedoc/routedoc/internal/scanner"
)

// EnvPrefix prefixes environment overrides, e.g. ROUTEDOC_INFO_TITLE.
const EnvPrefix = "ROUTEDOC"

// Config represents the routedoc configuration.
type Config struct {
	// Root is the project directory to scan
	Root string `mapstructure:"root" yaml:"root" json:"root"`

	// Output is the output file path
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Format is the renderer name (json, markdown, openapi, react)
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// Ignore is a list of doublestar globs excluded from discovery
	Ignore []string `mapstructure:"ignore" yaml:"ignore" json:"ignore"`

	// Workers bounds concurrent file processing
	Workers int `mapstructure:"workers" yaml:"workers" json:"workers"`

	// Info is copied into the generated documentation
	Info InfoConfig `mapstructure:"info" yaml:"info" json:"info"`

	// Generation contains generation behavior configuration
	Generation GenerationConfig `mapstructure:"generation" yaml:"generation" json:"generation"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`

	// Server contains edit server configuration
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
}

// InfoConfig contains documentation metadata.
type InfoConfig struct {
	Title       string `mapstructure:"title" yaml:"title" json:"title"`
	Version     string `mapstructure:"version" yaml:"version" json:"version"`
	Description string `mapstructure:"description" yaml:"description" json:"description"`
}

// GenerationConfig contains generation behavior configuration.
type GenerationConfig struct {
	// Merge keeps hand-edited text from an existing JSON output
	Merge bool `mapstructure:"merge" yaml:"merge" json:"merge"`

	// Validate runs the OpenAPI validator on openapi output
	Validate bool `mapstructure:"validate" yaml:"validate" json:"validate"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Debounce is the debounce duration in milliseconds
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

// ServerConfig contains edit server configuration.
type ServerConfig struct {
	// Addr is the listen address
	Addr string `mapstructure:"addr" yaml:"addr" json:"addr"`

	// File is the JSON file to edit; empty means Output
	File string `mapstructure:"file" yaml:"file" json:"file"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"routedoc.yaml",
	"routedoc.json",
	".routedoc.yaml",
	".routedoc.json",
}

// ErrConfigNotFound is returned when an explicit config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Root:    ".",
		Output:  "api-docs.json",
		Format:  "json",
		Ignore:  append([]string(nil), scanner.DefaultIgnore...),
		Workers: 4,
		Info: InfoConfig{
			Title:   scan.DefaultTitle,
			Version: scan.DefaultVersion,
		},
		Watch: WatchConfig{
			Debounce: 300,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:4400",
		},
	}
}

// Load loads the configuration.
// It searches the working directory for config files in the following order:
// 1. routedoc.yaml
// 2. routedoc.json
// 3. .routedoc.yaml
// 4. .routedoc.json
//
// If configPath is provided, it will use that path instead. Environment
// variables prefixed with ROUTEDOC_ override file values either way.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = ConfigFilePath()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads the configuration from a specific directory.
func LoadFromPath(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// setDefaults sets the default values for viper.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("root", d.Root)
	v.SetDefault("output", d.Output)
	v.SetDefault("format", d.Format)
	v.SetDefault("ignore", d.Ignore)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("info.title", d.Info.Title)
	v.SetDefault("info.version", d.Info.Version)
	v.SetDefault("info.description", d.Info.Description)
	v.SetDefault("generation.merge", false)
	v.SetDefault("generation.validate", false)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.file", "")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Root == "" {
		errs = append(errs, ValidationError{
			Field:   "root",
			Message: "root is required",
		})
	}

	// Validate format
	if c.Format != "" && !render.Has(c.Format) {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q, must be one of: %s", c.Format, strings.Join(render.List(), ", ")),
		})
	}

	for _, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, ValidationError{
				Field:   "ignore",
				Message: fmt.Sprintf("invalid glob pattern %q", pattern),
			})
		}
	}

	if c.Workers < 1 {
		errs = append(errs, ValidationError{
			Field:   "workers",
			Message: "workers must be at least 1",
		})
	}

	// Validate watch debounce
	if c.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce",
			Message: "debounce must be non-negative",
		})
	}

	// Validate required fields
	if c.Info.Title == "" {
		errs = append(errs, ValidationError{
			Field:   "info.title",
			Message: "title is required",
		})
	}

	if c.Info.Version == "" {
		errs = append(errs, ValidationError{
			Field:   "info.version",
			Message: "version is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EditFile returns the JSON file served by the edit server.
func (c *Config) EditFile() string {
	if c.Server.File != "" {
		return c.Server.File
	}
	return c.Output
}

// ConfigFilePath returns the config file found in the working directory, if any.
func ConfigFilePath() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// FileNames returns the config file names searched by Load, in order.
func FileNames() []string {
	return append([]string(nil), configFileNames...)
}
