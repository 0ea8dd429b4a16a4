package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
environments:
  staging:
    baseUrl: https://staging.example.com
    headers:
      Authorization: Bearer abc
    query:
      version: v2
    timeout: 10s
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	env, err := cfg.Environment("staging")
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", env.BaseURL)
	assert.Equal(t, "Bearer abc", env.Headers["Authorization"])
	assert.Equal(t, "v2", env.Query["version"])

	timeout, err := env.ParseTimeout(30 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, timeout)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
  "environments": {
    "prod": {
      "baseUrl": "https://api.example.com"
    }
  }
}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	env, err := cfg.Environment("prod")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", env.BaseURL)

	timeout, err := env.ParseTimeout(30 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, timeout, "missing timeout falls back")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_MissingBaseURL(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
environments:
  broken:
    headers:
      X-Test: "1"
`)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "baseUrl is required")
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
environments:
  broken:
    baseUrl: https://h
    timeout: ten-seconds
`)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "invalid timeout")
}

func TestConfig_EnvironmentNotFound(t *testing.T) {
	cfg := &Config{Environments: map[string]Environment{}}
	_, err := cfg.Environment("missing")
	assert.ErrorContains(t, err, "environment not found")
}
