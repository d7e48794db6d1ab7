// Package core contains the business logic for the BevTrends API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Item, Source, Snapshot, ImageCacheEntry)
// - feed: Fetches one source and normalizes its entries into Items
// - images: Picks a representative image from feed media and flags low-quality URLs
// - scraper: Finds social-preview images on article pages, cached per link
// - aggregator: Merges, filters, upgrades, deduplicates and ranks items across sources
// - workers: Keeps the aggregation snapshot warm in the background
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// - All external dependencies are injected via interfaces
// - A failing source or page never fails a request; only internal faults surface
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "bevtrends-api/core/aggregator"
//	    "bevtrends-api/core/feed"
//	    "bevtrends-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      cache,
//	    HTTPClient: httpClient,
//	    Logger:     logger,
//	}
//
//	fetcher := feed.NewFeedService(deps, feed.DefaultTimeout)
//	trades := aggregator.NewService(deps, fetcher, pageScraper, aggregator.NewSnapshotStore(), aggregator.Config{
//	    Sources: sources,
//	})
//
//	items, err := trades.GetLatest(ctx, aggregator.Options{Query: "mezcal"})
package core
