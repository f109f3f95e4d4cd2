package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for flinumeratr.
type Config struct {
	Flickr  FlickrConfig  `yaml:"flickr"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Logging LoggingConfig `yaml:"logging"`
}

// FlickrConfig holds credentials and HTTP settings for the Flickr API.
type FlickrConfig struct {
	APIKey    string        `yaml:"api_key"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

// FetchConfig controls how collections are fetched.
type FetchConfig struct {
	// PerPage is the page size used when enumerating a collection.
	PerPage int `yaml:"per_page"`
	// RequestsPerMinute caps how fast we call the Flickr API.
	// Zero disables rate limiting.
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Flickr: FlickrConfig{
			UserAgent: "flinumeratr/1.0 (https://github.com/flickr-foundation/flinumeratr)",
			Timeout:   30 * time.Second,
		},
		Fetch: FetchConfig{
			PerPage:           100,
			RequestsPerMinute: 60,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// LoadFromEnv overrides configuration from environment variables.
func (c *Config) LoadFromEnv() error {
	if apiKey := os.Getenv("FLICKR_API_KEY"); apiKey != "" {
		c.Flickr.APIKey = apiKey
	}
	if userAgent := os.Getenv("FLINUMERATR_USER_AGENT"); userAgent != "" {
		c.Flickr.UserAgent = userAgent
	}
	if perPage := os.Getenv("FLINUMERATR_PER_PAGE"); perPage != "" {
		if val, err := strconv.Atoi(perPage); err == nil && val > 0 {
			c.Fetch.PerPage = val
		}
	}
	if rpm := os.Getenv("FLINUMERATR_REQUESTS_PER_MINUTE"); rpm != "" {
		if val, err := strconv.Atoi(rpm); err == nil && val >= 0 {
			c.Fetch.RequestsPerMinute = val
		}
	}
	if logLevel := os.Getenv("FLINUMERATR_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file. An empty path means
// "look in the standard locations, and don't complain if nothing's there".
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func (c *Config) findConfigFile() string {
	locations := []string{
		".flinumeratr.yaml",
		".flinumeratr.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "flinumeratr", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".flinumeratr.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

// Validate checks that the configuration is usable. It does not require
// an API key: callers that only classify URLs never need one.
func (c *Config) Validate() error {
	var errs []error

	if c.Fetch.PerPage < 1 || c.Fetch.PerPage > 500 {
		errs = append(errs, errors.New("per_page must be between 1 and 500"))
	}
	if c.Fetch.RequestsPerMinute < 0 {
		errs = append(errs, errors.New("requests_per_minute cannot be negative"))
	}
	if c.Flickr.Timeout <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Load reads configuration from all sources.
// Precedence: flags > environment (including .env) > config file > defaults.
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".flinumeratr.env"))

	cfg := DefaultConfig()

	if err := cfg.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg.mergeFlags(flags)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) mergeFlags(flags map[string]interface{}) {
	if apiKey, ok := flags["api-key"].(string); ok && apiKey != "" {
		c.Flickr.APIKey = apiKey
	}
	if perPage, ok := flags["per-page"].(int); ok && perPage > 0 {
		c.Fetch.PerPage = perPage
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}
