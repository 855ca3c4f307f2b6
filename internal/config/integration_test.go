package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	assert.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logging.Level)

	// Subsequent calls return the same instance
	assert.Same(t, cfg, GetGlobalConfig())

	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())

	custom := Default()
	custom.Logging.Level = "warn"
	SetGlobalConfig(custom)
	assert.Same(t, custom, GetGlobalConfig())
	assert.Equal(t, "warn", GetLoggingConfig().Level)
}

func TestGetConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, "")
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".vlist"), dir)

	t.Setenv(EnvHome, "/opt/vlist")
	dir, err = GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/opt/vlist", dir)
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "vlist")
	t.Setenv(EnvHome, home)

	require.NoError(t, EnsureConfigDir())

	stat, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(EnvHome, tmpDir)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	// No log file configured: nothing to do
	require.NoError(t, EnsureLogDir())

	logFile := filepath.Join(tmpDir, "logs", "vlist.log")
	GetGlobalConfig().Logging.File = logFile
	assert.Equal(t, logFile, GetLoggingConfig().File)

	require.NoError(t, EnsureLogDir())
	stat, err := os.Stat(filepath.Dir(logFile))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}
