package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tempo/internal/config"
	"github.com/ayoisaiah/tempo/internal/pathutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Display: config.DisplayConfig{
			DarkTheme:      true,
			TwentyFourHour: true,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "tempo", "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err, "default config should be written")

	assert.Contains(t, string(b), "dark_theme: true")
	assert.Contains(t, string(b), "level: info")

	assert.Equal(t, defaultConfig(), cfg)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte(`storage:
  dir: /var/lib/tempo
display:
  dark_theme: false
  24hr_clock: false
log:
  level: debug
  format: json
hooks:
  on_stop: notify-send 'stopped'
`), 0o600)
	require.NoError(t, err)

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	want := &config.Config{
		Storage: config.StorageConfig{
			Dir: "/var/lib/tempo",
		},
		Log: config.LogConfig{
			Level:  "debug",
			Format: "json",
		},
		Hooks: config.HooksConfig{
			OnStop: "notify-send 'stopped'",
		},
	}

	assert.Equal(t, want, cfg)
}

func TestViperInvalidConfig(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown log level",
			content: "log:\n  level: loud\n",
			wantErr: "unknown log level",
		},
		{
			name:    "unknown log format",
			content: "log:\n  format: xml\n",
			wantErr: "unknown log format",
		},
		{
			name:    "malformed yaml",
			content: "log: [level\n",
			wantErr: "reading config file failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")

			err := os.WriteFile(configPath, []byte(tc.content), 0o600)
			require.NoError(t, err)

			_, err = config.New(config.WithViperConfig(configPath))
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestWithPaths(t *testing.T) {
	t.Setenv("TEMPO_ENV", "")

	p, err := pathutil.New()
	require.NoError(t, err)

	configDir := t.TempDir()
	cliDir := t.TempDir()
	configPath := filepath.Join(configDir, "config.yml")

	err = os.WriteFile(
		configPath,
		[]byte("storage:\n  dir: "+configDir+"\n"),
		0o600,
	)
	require.NoError(t, err)

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithPaths(p, configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, configDir, cfg.System.DataDir)
	assert.Equal(t, filepath.Join(configDir, "tempo.db"), cfg.System.DBPath)
	assert.Equal(t, configPath, cfg.System.ConfigPath)

	cfg, err = config.New(
		config.WithViperConfig(configPath),
		func(c *config.Config) error {
			c.CLI.DataDir = cliDir
			return nil
		},
		config.WithPaths(p, ""),
	)
	require.NoError(t, err)

	assert.Equal(t, cliDir, cfg.System.DataDir)
	assert.Equal(t, filepath.Join(cliDir, "log", "tempo.log"), cfg.System.LogPath)
	assert.Equal(t, p.ConfigFilePath(), cfg.System.ConfigPath)
}
