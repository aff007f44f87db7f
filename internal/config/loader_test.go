package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no config.yaml is picked up
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)
	t.Setenv("PORT", "")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8050", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Store.Enabled())
	assert.Equal(t, int64(32<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 50, cfg.History.Limit)
}

func TestLoadPortOverride(t *testing.T) {
	inTempDir(t)
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)

	t.Setenv("PORT", "7001")
	cfg, err = load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port)
}

func TestLoadConfigFile(t *testing.T) {
	dir := inTempDir(t)
	yaml := "log_format: console\nstore_path: \"\"\nhistory_limit: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Store.Enabled())
	assert.Equal(t, 5, cfg.History.Limit)
}

func TestLoadRejectsInvalid(t *testing.T) {
	inTempDir(t)
	t.Setenv("LOG_FORMAT", "xml")

	_, err := load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
