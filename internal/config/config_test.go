package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sidimedmar/profeleve/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, "qwen-plus", cfg.AIModel)
	require.NotEmpty(t, cfg.AIAPIURL)
	require.False(t, cfg.ClampCorrectOnTypeChange)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.ServerPort)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
ai:
  model: custom-model
editor:
  clamp_correct_on_type_change: true
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.ServerPort)
	require.Equal(t, "custom-model", cfg.AIModel)
	require.True(t, cfg.ClampCorrectOnTypeChange)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("AI_API_KEY", "env-key")
	t.Setenv("EDITOR_CLAMP_CORRECT", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "7070", cfg.ServerPort)
	require.Equal(t, "env-key", cfg.AIAPIKey)
	require.True(t, cfg.ClampCorrectOnTypeChange)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: a: mapping"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
