package aggregator

import (
	"context"
	"sync"

	"bevtrends-api/core/domain"
	"bevtrends-api/core/images"
)

// upgradeImages replaces missing or low-quality images of the first
// upgradeLimit items with scraped ones. Scrapes run concurrently, bounded by
// the same limit, and are all joined before returning. Items past the prefix
// are appended unchanged in their original order.
func (s *Service) upgradeImages(ctx context.Context, items []domain.Item) []domain.Item {
	if s.scraper == nil || len(items) == 0 {
		return items
	}

	n := len(items)
	if n > s.upgradeLimit {
		n = s.upgradeLimit
	}

	out := make([]domain.Item, len(items))
	copy(out, items)
	prefix := out[:n]

	semaphore := make(chan struct{}, s.upgradeLimit)
	var wg sync.WaitGroup

	for i := range prefix {
		if !needsUpgrade(&prefix[i]) {
			continue
		}

		wg.Add(1)
		go func(item *domain.Item) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.logWarn("Image upgrade panicked", map[string]interface{}{
						"link":  item.Link,
						"panic": r,
					})
				}
			}()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			imageURL, err := s.scraper.FindImage(ctx, item.Link)
			if err != nil {
				s.logDebug("Image upgrade skipped", map[string]interface{}{
					"link":  item.Link,
					"error": err.Error(),
				})
				return
			}
			if imageURL != "" {
				item.Image = imageURL
			}
		}(&prefix[i])
	}

	wg.Wait()
	return out
}

// needsUpgrade reports whether an item has a link and no usable image
func needsUpgrade(item *domain.Item) bool {
	if item.Link == "" {
		return false
	}
	return item.Image == "" || images.IsLowQuality(item.Image)
}
