// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts between the aggregation pipeline and its collaborators

package interfaces

import (
	"context"

	"bevtrends-api/core/domain"
)

// FeedFetcher fetches one source and returns its normalized items
type FeedFetcher interface {
	FetchSource(ctx context.Context, source domain.Source, limit int) ([]domain.Item, error)
}

// ImageScraper resolves a high-resolution image for an article page.
// It returns an empty string with a nil error when the page has no usable image.
type ImageScraper interface {
	FindImage(ctx context.Context, link string) (string, error)
}
