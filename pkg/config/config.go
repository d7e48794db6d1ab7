// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, feeds and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Feeds contains fetch and caching windows for the aggregation pipeline
	Feeds FeedsConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RefreshTimer is the snapshot warm interval in seconds; 0 disables warming
	RefreshTimer int

	// RateLimit is the number of requests allowed per client IP per minute; 0 disables limiting
	RateLimit int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
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

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int
}

// FeedsConfig holds the aggregation pipeline's timeouts and cache windows
type FeedsConfig struct {
	// FeedTimeout bounds each feed fetch
	FeedTimeout time.Duration

	// PageTimeout bounds each article page scrape
	PageTimeout time.Duration

	// SnapshotTTL is how long an unconditioned aggregation is reused
	SnapshotTTL time.Duration

	// ImageCacheTTL is how long a scraped image is reused
	ImageCacheTTL time.Duration

	// SourcesFile is an optional YAML source registry; empty uses the built-in list
	SourcesFile string

	// UserAgent identifies outbound requests
	UserAgent string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string

	// File optionally mirrors logs to a rotating file
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "10000"),
			RefreshTimer: getEnvAsIntOrDefault("REFRESH_TIMER", 300),
			RateLimit:    getEnvAsIntOrDefault("RATE_LIMIT", 120),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", 600),
			},
		},
		Feeds: FeedsConfig{
			FeedTimeout:   getEnvAsSecondsOrDefault("FEED_TIMEOUT", 15*time.Second),
			PageTimeout:   getEnvAsSecondsOrDefault("PAGE_TIMEOUT", 7*time.Second),
			SnapshotTTL:   getEnvAsSecondsOrDefault("SNAPSHOT_TTL", 10*time.Minute),
			ImageCacheTTL: getEnvAsSecondsOrDefault("IMAGE_CACHE_TTL", 24*time.Hour),
			SourcesFile:   getEnvOrDefault("SOURCES_FILE", ""),
			UserAgent:     getEnvOrDefault("USER_AGENT", "BevTrendsBot/1.0 (+https://bevtrends.app)"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			File:  getEnvOrDefault("LOG_FILE", ""),
		},
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

// getEnvAsSecondsOrDefault reads a whole number of seconds as a duration
func getEnvAsSecondsOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RefreshTimer < 0 {
		return errors.New("refresh timer cannot be negative")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Feeds.FeedTimeout <= 0 || c.Feeds.PageTimeout <= 0 {
		return errors.New("feed and page timeouts must be positive")
	}

	if c.Feeds.SnapshotTTL <= 0 || c.Feeds.ImageCacheTTL <= 0 {
		return errors.New("snapshot and image cache TTLs must be positive")
	}

	return nil
}
