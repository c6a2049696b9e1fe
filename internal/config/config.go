package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/tempo/internal/pathutil"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Storage StorageConfig `mapstructure:"storage"`
		Display DisplayConfig `mapstructure:"display"`
		Log     LogConfig     `mapstructure:"log"`
		Hooks   HooksConfig   `mapstructure:"hooks"`
		CLI     CLIConfig     `mapstructure:"-"`
		System  SystemConfig  `mapstructure:"-"`
	}

	// StorageConfig controls where activities are kept.
	StorageConfig struct {
		// Dir overrides the default data directory.
		Dir string `mapstructure:"dir"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	}

	// HooksConfig holds commands that run after the current activity changes.
	HooksConfig struct {
		OnStart string `mapstructure:"on_start"`
		OnStop  string `mapstructure:"on_stop"`
	}

	// CLIConfig holds settings that only come from command-line flags.
	CLIConfig struct {
		DataDir string
		NoColor bool
	}

	// SystemConfig holds the resolved file locations.
	SystemConfig struct {
		ConfigPath string
		DataDir    string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithPaths resolves file locations. The data directory given on the command
// line takes precedence over the one in the config file, which takes
// precedence over the default. It must be applied after the other options.
func WithPaths(p *pathutil.Paths, configPath string) Option {
	return func(c *Config) error {
		dataDir := c.Storage.Dir

		if c.CLI.DataDir != "" {
			dataDir = c.CLI.DataDir
		}

		if dataDir != "" {
			abs, err := filepath.Abs(dataDir)
			if err != nil {
				return err
			}

			p = p.WithDataDir(abs)
		}

		if configPath == "" {
			configPath = p.ConfigFilePath()
		}

		c.System = SystemConfig{
			ConfigPath: configPath,
			DataDir:    p.DataDir(),
			DBPath:     p.DBFilePath(),
			LogPath:    p.LogFilePath(),
		}

		return nil
	}
}
