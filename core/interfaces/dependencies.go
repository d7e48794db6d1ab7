// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Shared by the feed fetcher, the page scraper and the aggregation pipeline

package interfaces

// Dependencies holds the external collaborators required by the core services
type Dependencies struct {
	// Cache backs the scraped image cache
	Cache Cache

	// HTTPClient fetches feed documents
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
