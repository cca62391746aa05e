package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	return c.normalizeLogging()
}

func (c *Config) normalizeLogging() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		expanded, err := expandPath(c.Logging.File)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

// OverrideLogging replaces the log level and format with any non-empty
// values, normalizes them the same way a settings file is, and validates
// the result.
func (c *Config) OverrideLogging(level, format string) error {
	if strings.TrimSpace(level) != "" {
		c.Logging.Level = level
	}
	if strings.TrimSpace(format) != "" {
		c.Logging.Format = format
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return c.Validate()
}
