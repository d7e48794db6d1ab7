// ABOUTME: Image cache remembers scraped article images keyed by article link
// ABOUTME: Entries are whole-value JSON records that expire by age only

package scraper

import (
	"context"
	"encoding/json"
	"time"

	"bevtrends-api/core/domain"
	"bevtrends-api/core/interfaces"
)

// DefaultImageCacheTTL is how long a scraped image stays valid
const DefaultImageCacheTTL = 24 * time.Hour

const imageKeyPrefix = "image:"

// ImageCache stores ImageCacheEntry values in a Cache backend
type ImageCache struct {
	cache  interfaces.Cache
	maxAge time.Duration
	now    func() time.Time
}

// NewImageCache creates an image cache on top of the given backend
func NewImageCache(cache interfaces.Cache, maxAge time.Duration) *ImageCache {
	if maxAge <= 0 {
		maxAge = DefaultImageCacheTTL
	}
	return &ImageCache{
		cache:  cache,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Get returns the cached image URL for link when an entry younger than the
// max age exists. Backend errors are treated as misses.
func (c *ImageCache) Get(ctx context.Context, link string) (string, bool) {
	if c == nil || c.cache == nil {
		return "", false
	}

	data, err := c.cache.Get(ctx, imageKeyPrefix+link)
	if err != nil || data == nil {
		return "", false
	}

	var entry domain.ImageCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false
	}
	if entry.URL == "" || entry.IsExpired(c.now(), c.maxAge) {
		return "", false
	}
	return entry.URL, true
}

// Put records imageURL for link, replacing any previous entry
func (c *ImageCache) Put(ctx context.Context, link, imageURL string) error {
	if c == nil || c.cache == nil {
		return nil
	}

	data, err := json.Marshal(domain.ImageCacheEntry{
		URL:        imageURL,
		ResolvedAt: c.now(),
	})
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, imageKeyPrefix+link, data, c.maxAge)
}
