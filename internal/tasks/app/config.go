package app

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	JWTSecret  string        // Optional: HS256 signing secret, at least 32 bytes (default: generated into SecretFile)
	SecretFile string        // Optional: where a generated signing secret is kept (default: ./jwt_secret)
	Issuer     string        // Optional: issuer claim for tokens (default: taskboard)
	TokenTTL   time.Duration // Optional: access token lifetime (default: 1h)

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./tasks.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 7700)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is applied first; variables already set win over it.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return Config{
		JWTSecret:            os.Getenv("TASKS_JWT_SECRET"),
		SecretFile:           getEnvOrDefault("TASKS_SECRET_FILE", "jwt_secret"),
		Issuer:               getEnvOrDefault("TASKS_ISSUER", "taskboard"),
		TokenTTL:             getEnvDurationOrDefault("TASKS_TOKEN_TTL", time.Hour),
		DatabaseFile:         getEnvOrDefault("TASKS_DATABASE_FILE", "tasks.db"),
		PepperFile:           getEnvOrDefault("TASKS_PEPPER_FILE", "pepper"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 7700),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
