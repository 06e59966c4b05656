// File: config.go
// Title: Application Configuration
// Description: Typed configuration for the definition-language front end.
//              Loads TOML or YAML files (selected by extension) and applies
//              defaults for anything not present.
// Version: v0.1.0
// Created: 2026-08-25

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/YunfeiZhai703/logic-gate-simulator-2/utils/stringx"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Display DisplayConfig `toml:"display" yaml:"display"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds limits for the definition-language parser
type ParserConfig struct {
	// MaxStatementIterations bounds each statement-list loop. It is a
	// circuit breaker against scanner/parser desynchronization, not a
	// limit on circuit size.
	MaxStatementIterations int `toml:"max_statement_iterations" yaml:"max_statement_iterations"`
}

// DisplayConfig holds settings for terminal output
type DisplayConfig struct {
	Color bool `toml:"color" yaml:"color"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Name:      "lgsim",
			LogLevel:  "info",
			LogFormat: "text",
		},
		Parser: ParserConfig{
			MaxStatementIterations: 500,
		},
		Display: DisplayConfig{
			Color: true,
		},
	}
}

// Load reads a configuration file, choosing the format by file extension
// (.toml, .yaml or .yml). Missing values fall back to defaults.
func Load(path string) (*Config, error) {
	if stringx.IsBlank(path) {
		return nil, fmt.Errorf("config file path cannot be empty")
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("loading YAML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads the file if it exists and silently falls back to
// defaults when it does not. Parse errors are still reported.
func LoadOrDefault(path string) (*Config, error) {
	if stringx.IsBlank(path) {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Parser.MaxStatementIterations < 1 {
		return fmt.Errorf("parser.max_statement_iterations must be at least 1, got %d",
			c.Parser.MaxStatementIterations)
	}
	return nil
}
