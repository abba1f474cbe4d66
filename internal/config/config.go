package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	ItemsPath        string // Path to the item pack file (JSON or YAML)
	LogLevel         string
	LogFormat        string
	ServiceName      string
	Version          string
	Environment      string
	TooltipCacheSize int
	TooltipCacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		ItemsPath:   getEnv(EnvKeyItemsPath, DefaultItemsPath),
		LogLevel:    getEnv(EnvKeyLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvKeyLogFormat, DefaultLogFormat),
		ServiceName: getEnv(EnvKeyServiceName, DefaultServiceName),
		Version:     getEnv(EnvKeyVersion, DefaultVersion),
		Environment: getEnv(EnvKeyEnvironment, DefaultEnvironment),
	}

	size, err := getEnvInt(EnvKeyTooltipCacheSize, DefaultTooltipCacheSize)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvKeyTooltipCacheSize, err)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", EnvKeyTooltipCacheSize, size)
	}
	cfg.TooltipCacheSize = size

	ttlSeconds, err := getEnvInt(EnvKeyTooltipCacheTTL, DefaultTooltipCacheTTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvKeyTooltipCacheTTL, err)
	}
	cfg.TooltipCacheTTL = time.Duration(ttlSeconds) * time.Second

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}
