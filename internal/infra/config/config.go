package config

import (
	"os"
	"strconv"
	"strings"
)

// AnthropicConfig configures the outbound generative text service.
type AnthropicConfig struct {
	BaseURL   string
	Model     string
	APIKey    string
	Timeout   int // seconds
	MaxTokens int
	RPS       float64
}

// CacheConfig configures the recommendation response cache.
type CacheConfig struct {
	Size int
	TTL  int // minutes
}

type Config struct {
	Env          string
	Port         string
	ModelDir     string
	LinkStrategy string
	Anthropic    AnthropicConfig
	Cache        CacheConfig
}

func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		Port:         getEnv("PORT", "9020"),
		ModelDir:     getEnv("MODEL_DIR", "models"),
		LinkStrategy: getEnv("RECOMMEND_LINK_STRATEGY", "name_creator"),
		Anthropic: AnthropicConfig{
			BaseURL:   getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
			Model:     getEnv("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
			APIKey:    getSecret("ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY_FILE", ""),
			Timeout:   getEnvInt("GENERATION_TIMEOUT_SECONDS", 30),
			MaxTokens: getEnvInt("GENERATION_MAX_TOKENS", 1000),
			RPS:       getEnvFloat64("GENERATION_RPS", 0),
		},
		Cache: CacheConfig{
			Size: getEnvInt("RECOMMEND_CACHE_SIZE", 256),
			TTL:  getEnvInt("RECOMMEND_CACHE_TTL_MINUTES", 10),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getSecret(envKey, fileEnvKey, fallback string) string {
	// 1. Try direct environment variable
	if value, ok := os.LookupEnv(envKey); ok {
		return value
	}

	// 2. Try reading from file specified by fileEnvKey
	if filePath, ok := os.LookupEnv(fileEnvKey); ok {
		content, err := os.ReadFile(filePath)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat64(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
