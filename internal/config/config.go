package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the central configuration for the service, read from the
// environment with an optional .env file for local development.
type Config struct {
	DatabaseURL string
	Port        string
	// KnowledgeFile optionally overrides the built-in clinical tables with a
	// YAML file.
	KnowledgeFile string
	// MaxPatternMatches caps how many wellness patterns a consultation
	// reports.
	MaxPatternMatches int
	// ConfidenceThreshold is the routing confidence below which results
	// advise seeing a doctor regardless of the matched specialty.
	ConfidenceThreshold float64
	// NotifyChannel is the Postgres channel completed consultations are
	// announced on.
	NotifyChannel string
}

// Load reads configuration from the environment.  A .env file is loaded
// first when present; real environment variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		Port:                envOr("PORT", "8080"),
		KnowledgeFile:       os.Getenv("KNOWLEDGE_FILE"),
		MaxPatternMatches:   5,
		ConfidenceThreshold: 0.6,
		NotifyChannel:       envOr("NOTIFY_CHANNEL", "consultations"),
	}
	if v := os.Getenv("MAX_PATTERN_MATCHES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MAX_PATTERN_MATCHES: %w", err)
		}
		cfg.MaxPatternMatches = n
	}
	if v := os.Getenv("CONFIDENCE_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("CONFIDENCE_THRESHOLD: %w", err)
		}
		cfg.ConfidenceThreshold = f
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on configuration the service cannot start with.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must be set")
	}
	if c.MaxPatternMatches < 1 {
		return fmt.Errorf("MAX_PATTERN_MATCHES must be positive, got %d", c.MaxPatternMatches)
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("CONFIDENCE_THRESHOLD must be in [0,1], got %g", c.ConfidenceThreshold)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
