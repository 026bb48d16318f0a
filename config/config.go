// Package config loads the fundview configuration file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/spektr-org/fundview/engine"
	"github.com/spektr-org/fundview/source"
)

// Environment variables that override the file.
const (
	EnvEndpoint = "FUNDVIEW_ENDPOINT"
	EnvLogLevel = "FUNDVIEW_LOG_LEVEL"
	EnvAddr     = "FUNDVIEW_ADDR"
)

// Config holds all fundview configuration.
type Config struct {
	// Data source. Exactly one of Endpoint, Workbook or Demo is used, in
	// reverse order of precedence.
	Endpoint string `yaml:"endpoint"` // base URL of the spreadsheet proxy
	Format   string `yaml:"format"`   // json, csv
	Workbook string `yaml:"workbook"` // local .xlsx export
	Demo     bool   `yaml:"demo"`

	// Logical dataset name -> name at the source (sheet tab).
	Datasets map[string]string `yaml:"datasets"`

	// Presentation
	Palette     []string `yaml:"palette"`
	Documents   []string `yaml:"documents"`
	Title       string   `yaml:"title"`
	ChartScript string   `yaml:"chart_script"`

	// Fetching
	RateLimit   float64 `yaml:"rate_limit"`  // requests per second, 0 = unlimited
	Timeout     string  `yaml:"timeout"`     // per request, empty = none
	Concurrency int     `yaml:"concurrency"` // binders in flight, 0 = all

	// Process
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	Addr     string `yaml:"addr"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Format:    string(source.FormatJSON),
		Datasets:  map[string]string{},
		Palette:   append([]string(nil), engine.DefaultPalette...),
		Documents: append([]string(nil), engine.DefaultDocuments...),
		LogLevel:  "info",
		Addr:      ":8080",
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", filepath.Base(path), err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Addr = v
	}
}

// GetTimeout returns the per-request timeout. Zero means none.
func (c *Config) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// GetLogLevel returns the configured zap level, defaulting to info.
func (c *Config) GetLogLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !c.Demo && c.Workbook == "" {
		if c.Endpoint == "" {
			return fmt.Errorf("no data source configured (set endpoint, %s, workbook or demo)", EnvEndpoint)
		}
		u, err := url.Parse(c.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid endpoint %q: want an http(s) URL", c.Endpoint)
		}
	}

	switch source.Format(c.Format) {
	case source.FormatJSON, source.FormatCSV:
	default:
		return fmt.Errorf("invalid format: %s (valid: json, csv)", c.Format)
	}

	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err != nil || d < 0 {
			return fmt.Errorf("invalid timeout: %q", c.Timeout)
		}
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("invalid rate_limit: %v", c.RateLimit)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("invalid concurrency: %d", c.Concurrency)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	for i, color := range c.Palette {
		if color == "" {
			return fmt.Errorf("palette entry %d is empty", i)
		}
	}
	return nil
}
