package domain

import "time"

// Snapshot is the result of the most recent unconditioned aggregation
type Snapshot struct {
	Items      []Item
	CapturedAt time.Time
}

// IsFresh reports whether the snapshot holds items and is younger than window
func (s *Snapshot) IsFresh(now time.Time, window time.Duration) bool {
	if s == nil || len(s.Items) == 0 {
		return false
	}
	return now.Sub(s.CapturedAt) < window
}

// ImageCacheEntry records a scraped image for an article link
type ImageCacheEntry struct {
	URL        string    `json:"url"`
	ResolvedAt time.Time `json:"resolvedAt"`
}

// IsExpired reports whether the entry is older than maxAge
func (e *ImageCacheEntry) IsExpired(now time.Time, maxAge time.Duration) bool {
	return now.Sub(e.ResolvedAt) >= maxAge
}
