package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vlist/internal/config"
)

// isolateHome points VLIST_HOME at a fresh directory and clears env overrides.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvProjectDir, "")
	return home
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, config.CurrentVersion, cfg.Version)
	assert.Equal(t, "fixed", cfg.List.ItemHeight.Mode)
	assert.InDelta(t, 48, cfg.List.ItemHeight.Value, 0.001)
	assert.Equal(t, 3, cfg.List.Overscan)
	assert.True(t, cfg.List.SmoothScroll)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 1000, cfg.TUI.ItemCount)
	assert.Equal(t, time.Second, cfg.TUI.RefreshDelay)
	require.NoError(t, cfg.Validate())
}

func TestNew_NoFile(t *testing.T) {
	home := isolateHome(t)

	cfg := config.New()

	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
	assert.Equal(t, config.Default().List, cfg.List)
}

func TestNew_EnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogFormat, "json")

	cfg := config.New()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestSaveAndLoad(t *testing.T) {
	home := isolateHome(t)

	cfg := config.New()
	cfg.List.ItemHeight = config.ItemHeightConfig{Mode: "variable", Value: 30}
	cfg.List.Separator = config.SeparatorConfig{Style: "full", Thickness: 1, Color: [4]float32{0.5, 0.5, 0.5, 1}}
	cfg.List.Sections = []config.SectionEntry{
		{ID: "a", Title: "Section A", Height: 2, StartIndex: 0, ItemCount: 5},
	}
	cfg.TUI.RefreshDelay = 250 * time.Millisecond
	require.NoError(t, cfg.Save())

	_, err := os.Stat(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)

	loaded := config.New()
	assert.Equal(t, cfg.List, loaded.List)
	assert.Equal(t, 250*time.Millisecond, loaded.TUI.RefreshDelay)
	require.NoError(t, loaded.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("list: [unclosed"), 0o600))
	_, err = config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("list:\n  overscan: 7\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.List.Overscan)
	assert.InDelta(t, 48, cfg.List.ItemHeight.Value, 0.001)
	assert.Equal(t, path, cfg.ConfigPath())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"valid", func(*config.Config) {}, ""},
		{"empty version", func(c *config.Config) { c.Version = "" }, ""},
		{"minor version", func(c *config.Config) { c.Version = "1.4.0" }, ""},
		{"major version", func(c *config.Config) { c.Version = "2.0.0" }, "not supported"},
		{"garbage version", func(c *config.Config) { c.Version = "one" }, "version"},
		{"bad mode", func(c *config.Config) { c.List.ItemHeight.Mode = "auto" }, "item_height.mode"},
		{"zero height", func(c *config.Config) { c.List.ItemHeight.Value = 0 }, "item_height.value"},
		{"bad separator", func(c *config.Config) { c.List.Separator.Style = "dotted" }, "separator.style"},
		{"negative overscan", func(c *config.Config) { c.List.Overscan = -2 }, "overscan"},
		{"overlapping sections", func(c *config.Config) {
			c.List.Sections = []config.SectionEntry{
				{ID: "a", Height: 1, StartIndex: 0, ItemCount: 5},
				{ID: "b", Height: 1, StartIndex: 3, ItemCount: 5},
			}
		}, "sections"},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"row height", func(c *config.Config) { c.TUI.RowHeight = 0 }, "tui.row_height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
