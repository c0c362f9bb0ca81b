package config

import (
	"strconv"
	"strings"
	"time"
)

const envProduction = "production"

// AppConfig holds process-level settings read from the environment.
type AppConfig struct {
	Port           string
	Env            string
	JWTSecret      string
	CORSOrigins    []string
	RequestTimeout time.Duration

	RateLimitMax    int
	RateLimitWindow time.Duration

	ActivityLogBatchSize     int
	ActivityLogBufferSize    int
	ActivityLogFlushInterval time.Duration
}

// App is populated by Load. The zero-value defaults keep tests usable without an env.
var App = AppConfig{
	Port:                     "8081",
	Env:                      "development",
	RequestTimeout:           10 * time.Second,
	RateLimitMax:             100,
	RateLimitWindow:          time.Minute,
	ActivityLogBatchSize:     50,
	ActivityLogBufferSize:    1000,
	ActivityLogFlushInterval: 5 * time.Second,
}

// Load reads configuration from environment variables with sane defaults.
func Load() *AppConfig {
	App = AppConfig{
		Port:                     getEnv("PORT", "8081"),
		Env:                      strings.ToLower(getEnv("APP_ENV", "development")),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		CORSOrigins:              splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		RequestTimeout:           parseDurationEnv("REQUEST_TIMEOUT", 10*time.Second),
		RateLimitMax:             parseIntEnv("RATE_LIMIT_MAX", 100),
		RateLimitWindow:          parseDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		ActivityLogBatchSize:     parseIntEnv("ACTIVITY_LOG_BATCH_SIZE", 50),
		ActivityLogBufferSize:    parseIntEnv("ACTIVITY_LOG_BUFFER_SIZE", 1000),
		ActivityLogFlushInterval: parseDurationEnv("ACTIVITY_LOG_FLUSH_INTERVAL", 5*time.Second),
	}
	return &App
}

func IsProduction() bool {
	return App.Env == envProduction
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseIntEnv and parseDurationEnv only accept positive values
func parseIntEnv(key string, fallback int) int {
	val := getEnv(key, "")
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseDurationEnv(key string, fallback time.Duration) time.Duration {
	val := getEnv(key, "")
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
