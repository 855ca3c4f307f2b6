package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vlist/internal/config"
)

// newDefaultTarget returns a Config with non-default values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	cfg := config.Default()
	cfg.List.Overscan = 9
	cfg.List.Padding = 4
	cfg.Logging = config.LoggingConfig{Level: "warn", Format: "json", File: "/tmp/vlist.log"}
	cfg.TUI.ItemCount = 42
	return cfg
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
tui:
  item_count: 5000
  refresh_delay: 2s
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 5000, target.TUI.ItemCount)
	assert.Equal(t, 2*time.Second, target.TUI.RefreshDelay)
	assert.True(t, target.TUI.ShowScrollbar, "omitted fields take defaults")
	assert.Equal(t, 9, target.List.Overscan, "absent sections are untouched")
	assert.Equal(t, "warn", target.Logging.Level)
}

func TestShallowMergeYAML_SectionIsReplaced(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
list:
  item_height: {mode: variable, value: 30}
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "variable", target.List.ItemHeight.Mode)
	assert.Equal(t, 3, target.List.Overscan, "target values do not leak into a replaced section")
	assert.InDelta(t, 0, target.List.Padding, 0.001)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
plugins:
  foo: bar
version: 1.2.0
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "1.2.0", target.Version)
	assert.Equal(t, 42, target.TUI.ItemCount)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	require.Error(t, config.ShallowMergeYAML(nil, "whatever.yaml"))

	target := newDefaultTarget()
	require.Error(t, config.ShallowMergeYAML(target, filepath.Join(t.TempDir(), "missing.yaml")))

	bad := writeOverlay(t, "list: [1, 2")
	require.Error(t, config.ShallowMergeYAML(target, bad))

	wrongType := writeOverlay(t, "tui: [1, 2]")
	err := config.ShallowMergeYAML(target, wrongType)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"tui"`)
}

func writeTOMLOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeTOML(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeTOMLOverlay(t, `
version = "1.0.0"

[list]
overscan = 5
padding = 8

[list.item_height]
mode = "variable"
value = 60

[list.separator]
style = "inset"
thickness = 1
color = [0.5, 0.5, 0.5, 1.0]
left_inset = 16

[[list.sections]]
id = "a"
title = "Section A"
height = 40
start_index = 0
item_count = 10

[tui]
refresh_delay = "250ms"
`)

	require.NoError(t, config.ShallowMergeTOML(target, overlay))

	assert.Equal(t, 5, target.List.Overscan)
	assert.InDelta(t, 8, target.List.Padding, 0.001)
	assert.Equal(t, "variable", target.List.ItemHeight.Mode)
	assert.InDelta(t, 60, target.List.ItemHeight.Value, 0.001)
	assert.Equal(t, "inset", target.List.Separator.Style)
	assert.Equal(t, [4]float32{0.5, 0.5, 0.5, 1}, target.List.Separator.Color)
	require.Len(t, target.List.Sections, 1)
	assert.Equal(t, "Section A", target.List.Sections[0].Title)
	assert.Nil(t, target.List.Sections[0].Sticky)

	assert.Equal(t, 250*time.Millisecond, target.TUI.RefreshDelay)
	assert.Equal(t, 1000, target.TUI.ItemCount, "omitted fields take defaults")
	assert.Equal(t, "warn", target.Logging.Level, "absent sections are untouched")
	require.NoError(t, target.Validate())
}

func TestShallowMergeTOML_Invalid(t *testing.T) {
	target := newDefaultTarget()

	err := config.ShallowMergeTOML(target, writeTOMLOverlay(t, "[list\noverscan = 1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing overlay TOML")

	err = config.ShallowMergeTOML(target, filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestMergeOverlay_DispatchesOnExtension(t *testing.T) {
	target := newDefaultTarget()
	require.NoError(t, config.MergeOverlay(target, writeTOMLOverlay(t, "[list]\noverscan = 1\n")))
	assert.Equal(t, 1, target.List.Overscan)

	require.NoError(t, config.MergeOverlay(target, writeOverlay(t, "list:\n  overscan: 2\n")))
	assert.Equal(t, 2, target.List.Overscan)
}
