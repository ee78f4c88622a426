package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("QUIZLAB_PASSWORD", "letmein")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "letmein", cfg.Auth.Password)
	assert.Equal(t, 5, cfg.ThemeLog.Keep)
	assert.Equal(t, "speech-cache", cfg.Speech.CacheDir)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9090"
  mode: release
auth:
  password: correct-horse-battery
log:
  path: /var/log/quizlab.log
  max_backups: 3
theme_log:
  path: /data/themes.json
  keep: 10
`
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644)
	require.NoError(t, err)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "/var/log/quizlab.log", cfg.Log.Path)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, "/data/themes.json", cfg.ThemeLog.Path)
	assert.Equal(t, 10, cfg.ThemeLog.Keep)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9090"
auth:
  password: from-file
`
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644)
	require.NoError(t, err)

	t.Setenv("QUIZLAB_PORT", "3000")
	t.Setenv("QUIZLAB_PASSWORD", "from-env")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Auth.Password)
}

func TestLoadMissingPassword(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "password not set")
}

func TestLoadShortPasswordInRelease(t *testing.T) {
	t.Setenv("QUIZLAB_MODE", "release")
	t.Setenv("QUIZLAB_PASSWORD", "short")

	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "too short")
}
