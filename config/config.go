package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Quiz     QuizConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins string // comma-separated, or "*" for all
	StaticDir          string // directory holding the landing page
}

// ProviderConfig holds the question-generation API settings.
type ProviderConfig struct {
	APIURL     string
	APIKey     string
	Model      string
	TimeoutSec int
	BatchSize  int
	Topic      string
}

// QuizConfig holds sampling and freshness knobs. Both are options rather than
// constants so tests can run with short TTLs and small pools.
type QuizConfig struct {
	TTLSec     int // pool age beyond which a refresh is attempted
	SampleSize int // questions per daily quiz
}

// TTL returns the pool freshness window as a duration.
func (c QuizConfig) TTL() time.Duration {
	return time.Duration(c.TTLSec) * time.Second
}

// Timeout returns the provider request timeout as a duration.
func (c ProviderConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			ReadTimeout:        getEnvInt("READ_TIMEOUT_SEC", 30),
			WriteTimeout:       getEnvInt("WRITE_TIMEOUT_SEC", 30),
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			StaticDir:          getEnv("STATIC_DIR", "./web"),
		},
		Provider: ProviderConfig{
			APIURL:     getEnv("PROVIDER_API_URL", "https://api.deepseek.com/v1/chat/completions"),
			APIKey:     getEnv("PROVIDER_API_KEY", ""),
			Model:      getEnv("PROVIDER_MODEL", "deepseek-chat"),
			TimeoutSec: getEnvInt("PROVIDER_TIMEOUT_SEC", 60),
			BatchSize:  getEnvInt("PROVIDER_BATCH_SIZE", 10),
			Topic:      getEnv("QUIZ_TOPIC", "general knowledge"),
		},
		Quiz: QuizConfig{
			TTLSec:     getEnvInt("QUIZ_TTL_SEC", 3600),
			SampleSize: getEnvInt("QUIZ_SAMPLE_SIZE", 5),
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
