// Package api provides the HTTP API layer for the BevTrends application.
// It uses the Huma framework to provide automatic OpenAPI documentation
// on top of a chi router.
//
// # Architecture
//
// - server.go: Huma API configuration, middleware and the 404 handler
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects and mappers for responses
// - middleware/: Request logging, panic recovery and per-IP rate limiting
//
// # Endpoints
//
//	GET /                 service status
//	GET /health           service status
//	GET /trades/latest    aggregated items (sources, q, limit, perSource, nocache, hires)
//	GET /trades/sources   configured sources
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router, closeAPI := api.NewAPI(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  120,
//	    RateWindow: time.Minute,
//	})
//	defer closeAPI()
//
//	handlers.NewTradesHandler(trades, logger).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":10000", router)
//
// # Error Handling
//
// Every error body has the shape {"error": "message"}. Unknown routes also
// carry the requested path:
//
//	{"error": "Not found", "path": "/unknown"}
//
// Internal faults during aggregation return 500 with "Failed to load trades".
package api
