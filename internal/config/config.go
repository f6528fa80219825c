// Package config provides environment-backed configuration for the CLI and server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default values for optional settings.
const (
	DefaultPort          = 8080
	DefaultLLMMaxRetries = 2
	DefaultLLMRetryDelay = 500 * time.Millisecond
)

// Config holds process configuration. Values come from the environment; a
// .env file is loaded by main before this package reads anything.
type Config struct {
	GeminiAPIKey  string        // GEMINI_API_KEY, required
	DatabaseURL   string        // DATABASE_URL, optional; enables persistence
	Port          int           // PORT
	LLMMaxRetries int           // LLM_MAX_RETRIES, additional attempts per call
	LLMRetryDelay time.Duration // LLM_RETRY_BASE_DELAY, e.g. "500ms"

	// Optional per-tier model overrides.
	ModelLite     string // GEMINI_MODEL_LITE
	ModelStandard string // GEMINI_MODEL_STANDARD
	ModelAdvanced string // GEMINI_MODEL_ADVANCED
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          DefaultPort,
		LLMMaxRetries: DefaultLLMMaxRetries,
		LLMRetryDelay: DefaultLLMRetryDelay,
		ModelLite:     os.Getenv("GEMINI_MODEL_LITE"),
		ModelStandard: os.Getenv("GEMINI_MODEL_STANDARD"),
		ModelAdvanced: os.Getenv("GEMINI_MODEL_ADVANCED"),
	}

	if port := os.Getenv("PORT"); port != "" {
		parsed, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = parsed
	}

	if retries := os.Getenv("LLM_MAX_RETRIES"); retries != "" {
		parsed, err := strconv.Atoi(retries)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_MAX_RETRIES %q: %w", retries, err)
		}
		cfg.LLMMaxRetries = parsed
	}

	if delay := os.Getenv("LLM_RETRY_BASE_DELAY"); delay != "" {
		parsed, err := time.ParseDuration(delay)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_RETRY_BASE_DELAY %q: %w", delay, err)
		}
		cfg.LLMRetryDelay = parsed
	}

	return cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Port)
	}
	if c.LLMMaxRetries < 0 {
		return fmt.Errorf("LLM_MAX_RETRIES must be non-negative")
	}
	return nil
}
