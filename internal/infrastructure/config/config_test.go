package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8420", cfg.Server.Port)
	assert.Equal(t, 1024, cfg.Engine.MaxQueryLen)
	assert.Equal(t, 8, cfg.Engine.MaxResults)
	assert.Equal(t, 50, cfg.Engine.ClipboardCapacity)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_RESULTS", "5")
	t.Setenv("LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Engine.MaxResults)
	assert.True(t, cfg.Logging.Development)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	content := `
extra_app_dirs = ["/opt/apps"]

[[themes]]
id = "solarized"
name = "Solarized"

[themes.colors]
background = "#002b36"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/apps"}, cfg.File.ExtraAppDirs)
	require.Len(t, cfg.File.Themes, 1)
	assert.Equal(t, "solarized", cfg.File.Themes[0].ID)
	assert.Equal(t, "#002b36", cfg.File.Themes[0].Colors["background"])
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.toml"))

	_, err := Load()
	assert.Error(t, err)
}
