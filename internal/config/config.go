// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all client configuration.
type Config struct {
	// API connection settings
	API APIConfig `yaml:"api"`

	// Query defaults
	Query QueryConfig `yaml:"query"`

	// Workflow settings
	Workflow WorkflowConfig `yaml:"workflow"`

	// Logging configuration
	Log LogConfig `yaml:"log"`
}

// APIConfig holds NeuroDoc API connection settings.
type APIConfig struct {
	BaseURL string `envconfig:"NEURODOC_API_URL" yaml:"base_url"`
	Token   string `envconfig:"NEURODOC_JWT_TOKEN" yaml:"token"`

	// Timeout is the per-request timeout in seconds.
	Timeout int `envconfig:"NEURODOC_TIMEOUT" yaml:"timeout"`

	// RateLimit is the maximum outbound requests per second. 0 disables
	// client-side pacing.
	RateLimit float64 `envconfig:"NEURODOC_RATE_LIMIT" yaml:"rate_limit"`
}

// QueryConfig holds default query options.
type QueryConfig struct {
	Limit             int     `envconfig:"NEURODOC_QUERY_LIMIT" yaml:"limit"`
	Threshold         float64 `envconfig:"NEURODOC_QUERY_THRESHOLD" yaml:"threshold"`
	IncludeReferences bool    `envconfig:"NEURODOC_INCLUDE_REFERENCES" yaml:"include_references"`
}

// WorkflowConfig holds workflow settings.
type WorkflowConfig struct {
	// SettleDelay is how long to wait, in seconds, after an upload
	// before querying, giving the server time to process the document.
	SettleDelay int `envconfig:"NEURODOC_SETTLE_DELAY" yaml:"settle_delay"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `envconfig:"NEURODOC_LOG_LEVEL" yaml:"level"`
	Format string `envconfig:"NEURODOC_LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from environment variables and optional config file.
// A .env file in the working directory is loaded first if present.
func Load(configPath string) (*Config, error) {
	// Best-effort; a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{}

	// Set defaults first
	setDefaults(cfg)

	// Load from YAML file if provided (overrides defaults)
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func setDefaults(cfg *Config) {
	cfg.API = APIConfig{
		BaseURL: "http://localhost:3000",
		Timeout: 30,
	}

	cfg.Query = QueryConfig{
		Limit:             5,
		Threshold:         0.7,
		IncludeReferences: true,
	}

	cfg.Workflow = WorkflowConfig{
		SettleDelay: 2,
	}

	cfg.Log = LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []string

	// API validation
	if c.API.BaseURL == "" {
		errs = append(errs, "api base_url must not be empty")
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("invalid api base_url: %s", c.API.BaseURL))
	}

	if c.API.Timeout < 1 {
		errs = append(errs, "timeout must be at least 1 second")
	}

	if c.API.RateLimit < 0 {
		errs = append(errs, "rate_limit must not be negative")
	}

	// Query validation
	if c.Query.Limit < 1 {
		errs = append(errs, "query limit must be positive")
	}

	if c.Query.Threshold < 0 || c.Query.Threshold > 1 {
		errs = append(errs, "query threshold must be between 0 and 1")
	}

	// Workflow validation
	if c.Workflow.SettleDelay < 0 {
		errs = append(errs, "settle_delay must not be negative")
	}

	// Log validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be text or json)", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// HasToken reports whether a JWT token is configured.
func (c *Config) HasToken() bool {
	return c.API.Token != ""
}
