package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"podcast-recommender/internal/infra/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "9020", cfg.Port)
	assert.Equal(t, "models", cfg.ModelDir)
	assert.Equal(t, "name_creator", cfg.LinkStrategy)

	assert.Equal(t, "https://api.anthropic.com", cfg.Anthropic.BaseURL)
	assert.Equal(t, "claude-3-haiku-20240307", cfg.Anthropic.Model)
	assert.Equal(t, 30, cfg.Anthropic.Timeout)
	assert.Equal(t, 1000, cfg.Anthropic.MaxTokens)
	assert.Equal(t, float64(0), cfg.Anthropic.RPS)

	assert.Equal(t, 256, cfg.Cache.Size)
	assert.Equal(t, 10, cfg.Cache.TTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("MODEL_DIR", "/srv/models")
	t.Setenv("RECOMMEND_LINK_STRATEGY", "name")
	t.Setenv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20240620")
	t.Setenv("GENERATION_MAX_TOKENS", "2000")
	t.Setenv("GENERATION_RPS", "2.5")
	t.Setenv("RECOMMEND_CACHE_SIZE", "0")

	cfg := config.Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/srv/models", cfg.ModelDir)
	assert.Equal(t, "name", cfg.LinkStrategy)
	assert.Equal(t, "claude-3-5-sonnet-20240620", cfg.Anthropic.Model)
	assert.Equal(t, 2000, cfg.Anthropic.MaxTokens)
	assert.Equal(t, 2.5, cfg.Anthropic.RPS)
	assert.Equal(t, 0, cfg.Cache.Size)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("GENERATION_MAX_TOKENS", "not-a-number")
	t.Setenv("GENERATION_RPS", "fast")

	cfg := config.Load()

	assert.Equal(t, 1000, cfg.Anthropic.MaxTokens)
	assert.Equal(t, float64(0), cfg.Anthropic.RPS)
}

func TestLoad_APIKeyFromEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-direct")

	cfg := config.Load()
	assert.Equal(t, "sk-direct", cfg.Anthropic.APIKey)
}

func TestLoad_APIKeyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_key")
	require.NoError(t, os.WriteFile(path, []byte("sk-from-file\n"), 0o600))
	t.Setenv("ANTHROPIC_API_KEY_FILE", path)

	cfg := config.Load()
	assert.Equal(t, "sk-from-file", cfg.Anthropic.APIKey, "file content is trimmed")
}

func TestLoad_DirectKeyWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_key")
	require.NoError(t, os.WriteFile(path, []byte("sk-from-file"), 0o600))
	t.Setenv("ANTHROPIC_API_KEY_FILE", path)
	t.Setenv("ANTHROPIC_API_KEY", "sk-direct")

	cfg := config.Load()
	assert.Equal(t, "sk-direct", cfg.Anthropic.APIKey)
}
