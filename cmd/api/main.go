// ABOUTME: Main entry point for the BevTrends API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bevtrends-api/api"
	"bevtrends-api/api/handlers"
	"bevtrends-api/core/aggregator"
	"bevtrends-api/core/feed"
	"bevtrends-api/core/interfaces"
	"bevtrends-api/core/scraper"
	"bevtrends-api/core/workers"
	"bevtrends-api/infrastructure/cache/memory"
	"bevtrends-api/infrastructure/cache/redis"
	stdhttp "bevtrends-api/infrastructure/http/standard"
	logruslogger "bevtrends-api/infrastructure/logger/logrus"
	"bevtrends-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(logruslogger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	defer logger.Close()

	logger.Info("Starting BevTrends API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"cache_type":    cfg.Cache.Type,
		"refresh_timer": cfg.Server.RefreshTimer,
	})

	sources, err := config.LoadSources(cfg.Feeds.SourcesFile)
	if err != nil {
		logger.Error("Failed to load sources", map[string]interface{}{
			"file":  cfg.Feeds.SourcesFile,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	memoryCleanup := time.Duration(cfg.Cache.Memory.CleanupInterval) * time.Second

	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(memoryCleanup)
		} else {
			defer redisCache.Close()
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(memoryCleanup)
		logger.Info("Using memory cache", nil)
	}

	httpClient := stdhttp.NewStandardHTTPClient(stdhttp.Options{
		Timeout:   cfg.Feeds.FeedTimeout,
		UserAgent: cfg.Feeds.UserAgent,
	})

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	feedService := feed.NewFeedService(deps, cfg.Feeds.FeedTimeout)
	imageCache := scraper.NewImageCache(cache, cfg.Feeds.ImageCacheTTL)
	pageScraper := scraper.NewPageScraper(deps, imageCache, scraper.Options{
		Timeout:   cfg.Feeds.PageTimeout,
		UserAgent: cfg.Feeds.UserAgent,
	})

	trades := aggregator.NewService(deps, feedService, pageScraper, aggregator.NewSnapshotStore(), aggregator.Config{
		Sources:   sources,
		Freshness: cfg.Feeds.SnapshotTTL,
	})

	var warmer *workers.RefreshWorker
	if cfg.Server.RefreshTimer > 0 {
		warmer, err = workers.NewRefreshWorker(trades, logger, time.Duration(cfg.Server.RefreshTimer)*time.Second)
		if err != nil {
			logger.Error("Failed to create refresh worker", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		if err := warmer.Start(); err != nil {
			logger.Error("Failed to start refresh worker", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	}
	humaAPI, router, closeAPI := api.NewAPI(apiConfig)
	defer closeAPI()

	tradesHandler := handlers.NewTradesHandler(trades, logger)
	tradesHandler.RegisterRoutes(humaAPI)

	// A cold aggregation can take the feed timeout plus the page timeout
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
			"sources": len(sources),
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if warmer != nil {
		_ = warmer.Stop()
	}

	logger.Info("Server stopped", nil)
}

func init() {
	fmt.Println(`
    ____            ______                    __
   / __ )___ _   __/_  __/_______  ____  ____/ /____
  / __  / _ \ | / / / / / ___/ _ \/ __ \/ __  / ___/
 / /_/ /  __/ |/ / / / / /  /  __/ / / / /_/ (__  )
/_____/\___/|___/ /_/ /_/   \___/_/ /_/\__,_/____/
	`)
}
