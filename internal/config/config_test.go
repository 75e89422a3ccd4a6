package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "deepseek", cfg.LLM.Provider)
	assert.Equal(t, "deepseek-chat", cfg.LLM.Model)
	assert.Equal(t, "https://api.deepseek.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, 2048, cfg.LLM.MaxTokens)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: 9000
llm:
  provider: gemini
  model: gemini-1.5-flash
session:
  backend: redis
  ttl: 30m
  redis_addr: redis:6379
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.Model)
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "redis:6379", cfg.Session.RedisAddr)
}

func TestLoadAPIKeysFromEnv(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("OPENWEATHER_API_KEY", "ow-test")
	t.Setenv("MAPS_API_KEY", "maps-test")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "ow-test", cfg.Weather.APIKey)
	assert.Equal(t, "maps-test", cfg.Places.MapsAPIKey)
}

func TestLoadFileKeyWinsOverEnv(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "sk-env")

	cfg, err := Load(writeConfig(t, "llm:\n  api_key: sk-file\n"))
	require.NoError(t, err)
	assert.Equal(t, "sk-file", cfg.LLM.APIKey)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}
