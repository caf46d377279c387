package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel   OTelConfig
	OpenAI OpenAIConfig
	Redis  RedisConfig
	Debate DebateConfig
	Env    string
	Port   string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type RedisConfig struct {
	URL string
}

// DebateConfig holds the conversation lifecycle knobs. Defaults match the
// documented contract: 24h record TTL, 50 stored messages, 5 messages of
// generation context, 10 messages returned per continue turn.
type DebateConfig struct {
	ConversationTTL time.Duration
	MaxStored       int
	ContextWindow   int
	ResponseWindow  int
}

// Load loads configuration from environment variables.
// In development it first loads a local .env file if one exists.
func Load() (Config, error) {
	if getEnv("DEBATER_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:  getEnv("DEBATER_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "debater"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-4-turbo"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
		},
		Debate: DebateConfig{
			ConversationTTL: getEnvDuration("CONVERSATION_TTL", 24*time.Hour),
			MaxStored:       getEnvInt("MAX_STORED_MESSAGES", 50),
			ContextWindow:   getEnvInt("CONTEXT_WINDOW_MESSAGES", 5),
			ResponseWindow:  getEnvInt("RESPONSE_WINDOW_MESSAGES", 10),
		},
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

// Enabled reports whether the text-generation capability is configured.
// The process starts without it; chat and evaluation endpoints report
// "service not configured" per-request instead of failing at boot.
func (c OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
