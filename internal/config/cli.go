package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Dir     string
	NoColor bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Dir:     ctx.String("dir"),
			NoColor: ctx.Bool("no-color"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Dir != "" {
		c.CLI.DataDir = opts.Dir
	}

	if opts.NoColor {
		c.CLI.NoColor = true
	}

	return nil
}
