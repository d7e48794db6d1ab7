// ABOUTME: Huma API server configuration and setup
// ABOUTME: Wires CORS, request logging, rate limiting and JSON error bodies onto a chi router

package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"bevtrends-api/api/handlers"
	"bevtrends-api/api/middleware"
	"bevtrends-api/core/interfaces"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window; 0 disables limiting
	RateWindow time.Duration // rate limit window
}

// NewConfig returns the huma configuration used by the service. Response
// bodies carry no $schema links so clients receive the bare documents.
func NewConfig() huma.Config {
	config := huma.DefaultConfig("BevTrends API", "1.0.0")
	config.Info.Description = "Aggregated beverage trade news from multiple publisher feeds"
	config.CreateHooks = nil
	return config
}

// NewAPI creates and configures a new Huma API instance with middleware.
// The returned closer releases background resources held by the middleware.
func NewAPI(cfg APIConfig) (huma.API, chi.Router, func()) {
	handlers.InstallErrorFormat()

	router := chi.NewRouter()

	// CORS must run first so preflight requests are never rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	closer := func() {}
	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}
	router.Use(middleware.RecoverMiddleware(cfg.Logger))

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
		closer = limiter.Close
	}

	router.NotFound(notFound)

	api := humachi.New(router, NewConfig())
	handlers.RegisterHealthRoutes(api)

	// The OpenAPI document is served at /openapi.json and the docs UI at /docs
	return api, router, closer
}

// notFound renders unknown routes as {"error":"Not found","path":...}
func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "Not found",
		"path":  r.URL.Path,
	})
}
