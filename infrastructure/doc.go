// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache shared across instances
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: JSON structured logger with optional file rotation
//
// # Cache Implementations
//
// Both caches store the scraped image entries keyed by article link.
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "image:https://punchdrink.com/a", entry, 24*time.Hour)
//	value, err := cache.Get(ctx, "image:https://punchdrink.com/a")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client retries transport failures and 5xx responses:
//
//	client := standard.NewStandardHTTPClient(standard.Options{Timeout: 15 * time.Second})
//	resp, err := client.Get(ctx, "https://punchdrink.com/feed/")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := logrus.New(logrus.Options{Level: "info"})
//	logger.Info("Aggregation completed", map[string]interface{}{
//	    "sources": 7,
//	    "items":   84,
//	})
package infrastructure
