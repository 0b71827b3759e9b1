// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI string
	MongoDB  string

	// ReferenceDate is the fixed calendar date the whole system treats as
	// "today" for filtering and default-date population. Deliberately a
	// configuration value, not a live clock.
	ReferenceDate time.Time

	// SuggestionCacheTTL bounds how long the pre-registration singleton is
	// served from cache before re-reading the store.
	SuggestionCacheTTL time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	refDateStr := getEnv("REFERENCE_DATE", "2025-07-15")
	refDate, err := time.Parse("2006-01-02", refDateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFERENCE_DATE %q: %w", refDateStr, err)
	}

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "transcontrol"),

		ReferenceDate:      refDate,
		SuggestionCacheTTL: time.Duration(getEnvAsInt("SUGGESTION_CACHE_TTL", 300)) * time.Second,
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
