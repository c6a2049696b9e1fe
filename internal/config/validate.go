package config

import (
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	return c.validateLog()
}

func (c *Config) validateLog() error {
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level != "" && !slices.Contains(logLevels, level) {
		return errInvalidLogLevel.Fmt(c.Log.Level, strings.Join(logLevels, ", "))
	}

	format := strings.ToLower(strings.TrimSpace(c.Log.Format))
	if format != "" && !slices.Contains(logFormats, format) {
		return errInvalidLogFormat.Fmt(c.Log.Format, strings.Join(logFormats, ", "))
	}

	return nil
}
