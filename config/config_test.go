package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultConfigPaths(t *testing.T) {
	paths := GetDefaultConfigPaths()
	assert.Equal(t, "abapscan", filepath.Base(paths.ConfigDir))
	assert.Equal(t, "abapscan.db", filepath.Base(paths.DBPath))
	assert.Equal(t, "app.log", filepath.Base(paths.LogPathApp))
	assert.Equal(t, "INFO", paths.LogLevel)
}

func TestInitDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))

	require.NoError(t, Init("", "", ""))
	assert.Equal(t, "8703", AppConfig.Server.Port)
	assert.Equal(t, "INFO", AppConfig.Logging.Level)
	assert.True(t, AppConfig.Scan.PersistResults)
	assert.Equal(t, 50, AppConfig.Scan.HistoryLimit)
	assert.NotEmpty(t, AppConfig.Database.Path)
}

func TestInitEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))
	t.Setenv("ABAPSCAN_SERVER_PORT", "9999")
	t.Setenv("ABAPSCAN_SCAN_PERSIST_RESULTS", "false")

	require.NoError(t, Init("", "", ""))
	assert.Equal(t, "9999", AppConfig.Server.Port)
	assert.False(t, AppConfig.Scan.PersistResults)
}

func TestInitFlagOverridesWin(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))

	logPath := filepath.Join(tmp, "custom", "app.log")
	require.NoError(t, Init("", logPath, "debug"))
	assert.Equal(t, logPath, AppConfig.Server.LogPath)
	assert.Equal(t, "DEBUG", AppConfig.Logging.Level)
}
