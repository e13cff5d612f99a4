// Package config loads agentrelay settings from YAML files, .env files and
// the process environment.
//
// Priority order (highest to lowest):
//  1. CLI flags (--log-level, --log-format)
//  2. Environment variables (AGENTRELAY_LOG_LEVEL, AGENTRELAY_LOG_FORMAT, AGENTRELAY_METRICS)
//  3. Config file
//  4. Defaults (info level, text format, metrics disabled)
//
// Example:
//
//	log:
//	  level: debug
//	  format: json
//	metrics:
//	  enabled: true
//	  namespace: agentrelay
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/agentrelay/logging"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvLogLevel  = "AGENTRELAY_LOG_LEVEL"
	EnvLogFormat = "AGENTRELAY_LOG_FORMAT"
	EnvMetrics   = "AGENTRELAY_METRICS"
)

// DefaultNamespace prefixes metric names when none is configured.
const DefaultNamespace = "agentrelay"

// Config is the top-level configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig configures the RelayLogger.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Default: info
	Level string `yaml:"level,omitempty"`
	// Format is text or json. Default: text
	Format string `yaml:"format,omitempty"`
	// AddSource includes the caller location in log entries.
	AddSource bool `yaml:"add_source,omitempty"`
}

// MetricsConfig configures Prometheus collectors.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills empty fields with default values.
func (c *Config) SetDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: invalid format %q (valid: text, json)", c.Log.Format)
	}

	return nil
}

// Parse decodes YAML data, rejecting unknown fields, and applies defaults.
// Empty input yields the defaults.
func Parse(data []byte) (*Config, error) {
	c := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	c.SetDefaults()

	return c, nil
}

// Load reads the file at path (defaults when path is empty), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		if c, err = Parse(data); err != nil {
			return nil, err
		}
	}

	if err := c.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}

	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}

	if v, ok := lookup(EnvMetrics); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMetrics, err)
		}
		c.Metrics.Enabled = enabled
	}

	return nil
}

// LoadDotEnv loads .env.local and .env (or the given files) into the process
// environment. Variables that are already set are not overwritten and missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env.local", ".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return nil
}

// NewLogger builds a RelayLogger from the log section writing to w.
func (c *Config) NewLogger(w io.Writer) (*logging.RelayLogger, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	cfg := logging.DefaultLoggerConfig()
	cfg.Level = level
	cfg.Format = strings.ToLower(c.Log.Format)
	cfg.AddSource = c.Log.AddSource
	cfg.Component = "agentrelay"

	if w != nil {
		cfg.Output = w
	}

	return logging.NewLogger(cfg), nil
}
