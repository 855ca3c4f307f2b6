package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vlist/internal/cli"
	"github.com/rshade/vlist/internal/config"
)

func TestConfigInit_Global(t *testing.T) {
	home := setupCLITest(t)

	out := mustExecute(t, "config", "init", "--global")

	assert.Contains(t, out, "Configuration initialized successfully")
	path := filepath.Join(home, "config.yaml")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.CurrentVersion, cfg.Version)
	assert.Equal(t, 3, cfg.List.Overscan)
}

func TestConfigInit_Project(t *testing.T) {
	setupCLITest(t)
	projectRoot := t.TempDir()

	out := mustExecute(t, "--project-dir", projectRoot, "config", "init")

	assert.Contains(t, out, "Configuration initialized at")
	assert.Contains(t, out, "Created .gitignore")

	projectDir := filepath.Join(projectRoot, ".vlist")
	assert.FileExists(t, filepath.Join(projectDir, "config.yaml"))

	data, err := os.ReadFile(filepath.Join(projectDir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, config.GitignoreContent(), string(data))
}

func TestConfigInit_ExistingWithoutForce(t *testing.T) {
	setupCLITest(t)

	mustExecute(t, "config", "init", "--global")

	_, err := executeCmd(t, "config", "init", "--global")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out := mustExecute(t, "config", "init", "--global", "--force")
	assert.Contains(t, out, "Configuration initialized successfully")
}

func TestConfigInit_ExistingGitignorePreserved(t *testing.T) {
	setupCLITest(t)
	projectRoot := t.TempDir()
	projectDir := filepath.Join(projectRoot, ".vlist")
	require.NoError(t, os.MkdirAll(projectDir, 0o750))

	custom := "# mine\n*.tmp\n"
	gitignorePath := filepath.Join(projectDir, ".gitignore")
	require.NoError(t, os.WriteFile(gitignorePath, []byte(custom), 0o600))

	out := mustExecute(t, "--project-dir", projectRoot, "config", "init", "--force")
	assert.NotContains(t, out, "Created .gitignore")

	data, err := os.ReadFile(gitignorePath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}

func TestConfigValidate(t *testing.T) {
	home := setupCLITest(t)

	out := mustExecute(t, "config", "validate", "--verbose")
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Overscan: 3")
	assert.Contains(t, out, "No sections configured")

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("list: [unclosed"), 0o600))
	_, err := executeCmd(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestConfigValidate_InvalidOverlay(t *testing.T) {
	setupCLITest(t)

	overlay := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("list:\n  overscan: -1\n"), 0o600))

	_, err := executeCmd(t, "--config", overlay, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overscan")
}

func TestConfigValidate_UnsupportedVersion(t *testing.T) {
	setupCLITest(t)

	overlay := filepath.Join(t.TempDir(), "v2.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("version: 2.0.0\n"), 0o600))

	_, err := executeCmd(t, "--config", overlay, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestConfigShow(t *testing.T) {
	setupCLITest(t)

	out := mustExecute(t, "config", "show")

	assert.Contains(t, out, "version: 1.0.0")
	assert.Contains(t, out, "overscan: 3")
	assert.Contains(t, out, "refresh_delay: 1s")
}

func TestRootCmd_MissingOverlay(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "layout")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading --config")
}

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		interactive bool
		want        cli.PromptResult
	}{
		{name: "yes", input: "y\n", interactive: true, want: cli.PromptResult{Accepted: true}},
		{name: "full yes", input: "YES\n", interactive: true, want: cli.PromptResult{Accepted: true}},
		{name: "no", input: "n\n", interactive: true, want: cli.PromptResult{}},
		{name: "empty declines", input: "\n", interactive: true, want: cli.PromptResult{}},
		{name: "eof declines", input: "", interactive: true, want: cli.PromptResult{}},
		{name: "non-interactive", input: "y\n", interactive: false, want: cli.PromptResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := cli.ConfirmOverwrite(&out, bytes.NewBufferString(tt.input), "/tmp/config.yaml", tt.interactive)
			assert.Equal(t, tt.want, got)
			if tt.interactive {
				assert.Contains(t, out.String(), "Overwrite it?")
			} else {
				assert.Empty(t, out.String())
			}
		})
	}
}
