package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultConcurrency = 4
	maxConcurrency     = 64
	defaultTimeout     = 30 * time.Second
)

// Config holds the CLI settings resolved from the environment and flags.
type Config struct {
	APIKey      string
	LogLevel    log.Level
	Concurrency int
	Timeout     time.Duration
}

// NewConfig reads MBV_* variables through getenv.
func NewConfig(getenv func(string) string) (*Config, error) {
	cfg := Config{
		APIKey:      strings.TrimSpace(getenv("MBV_API_KEY")),
		LogLevel:    log.InfoLevel,
		Concurrency: defaultConcurrency,
		Timeout:     defaultTimeout,
	}

	if levelStr := getenv("MBV_LOG_LEVEL"); levelStr != "" {
		level, err := log.ParseLevel(levelStr)
		if err != nil {
			return nil, fmt.Errorf("invalid MBV_LOG_LEVEL %q: %w", levelStr, err)
		}
		cfg.LogLevel = level
	}

	if s := getenv("MBV_CONCURRENCY"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid MBV_CONCURRENCY %q: %w", s, err)
		}
		cfg.Concurrency = n
	}

	if s := getenv("MBV_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid MBV_TIMEOUT %q: %w", s, err)
		}
		cfg.Timeout = d
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are set and valid
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("an API key is required: set MBV_API_KEY or pass -key")
	}
	if c.Concurrency < 1 || c.Concurrency > maxConcurrency {
		return fmt.Errorf("concurrency must be between 1 and %d, got %d", maxConcurrency, c.Concurrency)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}
