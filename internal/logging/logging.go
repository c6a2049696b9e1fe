// Package logging configures the default slog logger to write to a rotating
// log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 30
)

// Config holds the configuration for the logger.
type Config struct {
	// Level sets the minimum log level. Valid values: debug, info, warn, error
	Level string
	// Format sets the output format. Valid values: json, text
	Format string
	// Path is the log file. Logging is discarded when it is empty.
	Path string
}

// New creates a logger and the writer it logs to. The caller must close the
// writer.
func New(cfg Config) (*slog.Logger, io.WriteCloser, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var w io.WriteCloser = nopCloser{io.Discard}

	if cfg.Path != "" {
		w = &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler

	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, nil, fmt.Errorf("unsupported log format: %s", cfg.Format)
	}

	return slog.New(handler), w, nil
}

// Setup installs a logger built from cfg as the slog default.
func Setup(cfg Config) (io.Closer, error) {
	logger, w, err := New(cfg)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	return w, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
