// Package config provides configuration management for the analytics
// console. Values come from the environment (a .env file is loaded by
// main before this runs) with flag overrides on top.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"trendscope/internal/session"
)

// Config holds the application configuration.
type Config struct {
	// Backend options
	BackendURL     string        `json:"backend_url"`
	RequestTimeout time.Duration `json:"request_timeout"`

	// Startup options
	SourceSystem session.SourceSystem `json:"source_system"`

	// Logging options
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`

	// Export options
	ExportDir string `json:"export_dir"`
}

// NewConfig creates a configuration from the environment with defaults.
func NewConfig() *Config {
	return &Config{
		BackendURL:     getEnvString("BACKEND_URL", "http://localhost:5000"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		SourceSystem:   session.SourceSystem(getEnvString("SOURCE_SYSTEM", string(session.SourceEON))),
		LogLevel:       getEnvString("LOG_LEVEL", "info"),
		LogFile:        getEnvString("LOG_FILE", "trendscope.log"),
		ExportDir:      getEnvString("EXPORT_DIR", "."),
	}
}

// ParseFlags applies command line overrides and validates the result.
func (c *Config) ParseFlags() error {
	flag.StringVar(&c.BackendURL, "backend", c.BackendURL, "Analytics backend base URL")
	flag.DurationVar(&c.RequestTimeout, "timeout", c.RequestTimeout, "Per-request timeout")
	source := flag.String("source", string(c.SourceSystem), "Initial source system (eon, sdp, orion)")
	flag.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&c.LogFile, "log-file", c.LogFile, "Log file path")
	flag.StringVar(&c.ExportDir, "export-dir", c.ExportDir, "Directory for exported snapshots")

	flag.Parse()

	c.SourceSystem = session.SourceSystem(*source)
	return c.Validate()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("backend URL cannot be empty")
	}
	if !strings.HasPrefix(c.BackendURL, "http://") && !strings.HasPrefix(c.BackendURL, "https://") {
		return fmt.Errorf("backend URL must start with http:// or https://, got %s", c.BackendURL)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}

	if _, err := session.ParseSourceSystem(string(c.SourceSystem)); err != nil {
		return err
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", c.LogLevel)
	}

	if c.LogFile == "" {
		return fmt.Errorf("log file path cannot be empty")
	}

	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
