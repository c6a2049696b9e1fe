package pathutil_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tempo/internal/pathutil"
)

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("TEMPO_ENV", "dev")

	p, err := pathutil.New()
	require.NoError(t, err)

	assert.Equal(t, "config_dev.yml", filepath.Base(p.ConfigFilePath()))
	assert.Equal(t, "tempo_dev.db", filepath.Base(p.DBFilePath()))
	assert.Equal(t, "tempo_dev.log", filepath.Base(p.LogFilePath()))
}

func TestWithDataDir(t *testing.T) {
	t.Setenv("TEMPO_ENV", "")

	p, err := pathutil.New()
	require.NoError(t, err)

	dir := t.TempDir()
	custom := p.WithDataDir(dir)

	assert.Equal(t, filepath.Join(dir, "tempo.db"), custom.DBFilePath())
	assert.Equal(t, filepath.Join(dir, "log", "tempo.log"), custom.LogFilePath())
	assert.Equal(t, p.ConfigFilePath(), custom.ConfigFilePath())
	assert.NotEqual(t, dir, p.DataDir())

	assert.Equal(t, p.DataDir(), p.WithDataDir("").DataDir())
}
