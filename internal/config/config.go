// =============================================================================
// Compute Sales - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Every setting has
// a default, so the tool runs without any configuration file at all.
//
// EXAMPLE (computesales.yaml):
//   output_file: SalesResults.txt
//   banner_width: 60
//   report_title: SALES RESULTS
//   log_level: warn
//   log_format: console
//
// PRECEDENCE:
//   1. Command-line flags
//   2. Configuration file
//   3. Built-in defaults
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "computesales.yaml"

// MinBannerWidth is the narrowest accepted banner.
const MinBannerWidth = 20

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application settings.
type Config struct {
	// OutputFile is the path of the results file, overwritten on each run.
	// Default: "SalesResults.txt"
	OutputFile string `yaml:"output_file"`

	// BannerWidth is the width of the report's banner and separator lines.
	// Default: 60
	BannerWidth int `yaml:"banner_width"`

	// ReportTitle is the heading printed between the report's top banners.
	// Default: "SALES RESULTS"
	ReportTitle string `yaml:"report_title"`

	// LogLevel controls diagnostic logging on stderr.
	// Valid values: "trace", "debug", "info", "warn", "error", "disabled"
	// Default: "warn"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects "console" (human readable) or "json" log lines.
	// Default: "console"
	LogFormat string `yaml:"log_format"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration file at path.
//
// An empty path means DefaultPath; in that case a missing file is not an
// error and the defaults are returned. A path given explicitly must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset option.
func applyDefaults(cfg *Config) {
	if cfg.OutputFile == "" {
		cfg.OutputFile = "SalesResults.txt"
	}
	if cfg.BannerWidth == 0 {
		cfg.BannerWidth = 60
	}
	if strings.TrimSpace(cfg.ReportTitle) == "" {
		cfg.ReportTitle = "SALES RESULTS"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
}

// Validate checks the settings for values the tool cannot work with.
func (c *Config) Validate() error {
	if c.BannerWidth < MinBannerWidth {
		return fmt.Errorf("banner_width must be at least %d, got %d", MinBannerWidth, c.BannerWidth)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "console", "text", "json":
	default:
		return fmt.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}

	if strings.TrimSpace(c.OutputFile) == "" {
		return errors.New("output_file must not be blank")
	}

	return nil
}
