// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, storage and providers

package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Storage contains persistence configuration
	Storage StorageConfig

	// Providers contains the external analysis endpoints
	Providers ProviderConfig

	// Worker contains background worker configuration
	Worker WorkerConfig

	// LogLevel controls logging verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RequestsPerMinute caps requests per client IP; 0 disables limiting
	RequestsPerMinute int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	// SQLitePath is the database file path; ":memory:" for ephemeral storage
	SQLitePath string
}

// ProviderConfig holds the external analysis collaborator endpoints
type ProviderConfig struct {
	// AnalysisURL is the keyword-research analysis endpoint
	AnalysisURL string

	// DiscoveryURL is the ranking-discovery endpoint
	DiscoveryURL string

	// RecheckURL is the manual-recheck endpoint
	RecheckURL string

	// BearerToken authenticates outbound calls; empty means anonymous
	BearerToken string
}

// WorkerConfig holds background worker configuration
type WorkerConfig struct {
	// RecheckIntervalMinutes is the sweep interval; 0 disables the worker
	RecheckIntervalMinutes int
}

// LoadFromEnv loads configuration from environment variables. A .env file in
// the working directory is applied first when present.
func LoadFromEnv() (*Config, error) {
	// Missing .env is fine; real environment variables still win
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnvOrDefault("PORT", "8000"),
			RequestsPerMinute: getEnvAsIntOrDefault("REQUESTS_PER_MINUTE", 120),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Storage: StorageConfig{
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "keyword-intel.db"),
		},
		Providers: ProviderConfig{
			AnalysisURL:  getEnvOrDefault("ANALYSIS_URL", ""),
			DiscoveryURL: getEnvOrDefault("DISCOVERY_URL", ""),
			RecheckURL:   getEnvOrDefault("RECHECK_URL", ""),
			BearerToken:  getEnvOrDefault("PROVIDER_TOKEN", ""),
		},
		Worker: WorkerConfig{
			RecheckIntervalMinutes: getEnvAsIntOrDefault("RECHECK_INTERVAL_MINUTES", 360),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Storage.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty")
	}

	if c.Providers.AnalysisURL == "" {
		return errors.New("analysis url cannot be empty")
	}
	if c.Providers.DiscoveryURL == "" {
		return errors.New("discovery url cannot be empty")
	}
	if c.Providers.RecheckURL == "" {
		return errors.New("recheck url cannot be empty")
	}

	if c.Worker.RecheckIntervalMinutes < 0 {
		return errors.New("recheck interval cannot be negative")
	}

	return nil
}
