package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/tempo/internal/osutil"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyStorageDir     = "storage.dir"
	keyDarkTheme      = "display.dark_theme"
	keyTwentyFourHour = "display.24hr_clock"
	keyLogLevel       = "log.level"
	keyLogFormat      = "log.format"
	keyHookOnStart    = "hooks.on_start"
	keyHookOnStop     = "hooks.on_stop"
)

// WithViperConfig returns an Option that loads configuration from the yaml
// file at configPath. The file is created with default values if it does not
// exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyStorageDir, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyHookOnStart, "")
	v.SetDefault(keyHookOnStop, "")
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	return v.Unmarshal(c)
}
