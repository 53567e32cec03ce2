package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Frontend
	FrontendURL string

	// Gemini AI. The API key is deliberately not required at startup: a
	// missing credential surfaces as a 503 on the chat endpoint instead of
	// preventing the rest of the site's API from serving.
	GeminiAPIKey    string
	GeminiModel     string
	GeminiStreaming bool
	GeminiTimeout   time.Duration

	// Rate limiting
	RateLimitMax    int
	RateLimitWindow time.Duration

	// Redis (optional; enables the shared rate-limit store)
	RedisURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Env:             getEnvOrDefault("ENV", "development"),
		FrontendURL:     getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		GeminiAPIKey:    getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiStreaming: getEnvAsBoolOrDefault("GEMINI_STREAMING", true),
		GeminiTimeout:   time.Duration(getEnvAsIntOrDefault("GEMINI_TIMEOUT_SECONDS", 60)) * time.Second,
		RateLimitMax:    getEnvAsIntOrDefault("RATE_LIMIT_MAX", 10),
		RateLimitWindow: time.Duration(getEnvAsIntOrDefault("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		RedisURL:        getEnvOrDefault("REDIS_URL", ""),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
