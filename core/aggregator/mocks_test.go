package aggregator

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"bevtrends-api/core/domain"
)

// mockFetcher implements interfaces.FeedFetcher for testing
type mockFetcher struct {
	fetchFunc func(ctx context.Context, source domain.Source, limit int) ([]domain.Item, error)
	calls     atomic.Int32

	mu      sync.Mutex
	fetched []string
}

func (m *mockFetcher) FetchSource(ctx context.Context, source domain.Source, limit int) ([]domain.Item, error) {
	m.calls.Add(1)
	m.mu.Lock()
	m.fetched = append(m.fetched, source.Name)
	m.mu.Unlock()
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, source, limit)
	}
	return nil, nil
}

func (m *mockFetcher) fetchedSources() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.fetched))
	copy(out, m.fetched)
	return out
}

// mockScraper implements interfaces.ImageScraper for testing
type mockScraper struct {
	findFunc func(ctx context.Context, link string) (string, error)
	calls    atomic.Int32

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (m *mockScraper) FindImage(ctx context.Context, link string) (string, error) {
	m.calls.Add(1)
	n := m.inFlight.Add(1)
	defer m.inFlight.Add(-1)
	for {
		max := m.maxInFlight.Load()
		if n <= max || m.maxInFlight.CompareAndSwap(max, n) {
			break
		}
	}
	if m.findFunc != nil {
		return m.findFunc(ctx, link)
	}
	return "", nil
}

// mockLogger records messages by level
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
	errors   []string
	infoFunc func(msg string)
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (l *mockLogger) Info(msg string, fields map[string]interface{}) {
	if l.infoFunc != nil {
		l.infoFunc(msg)
	}
}

func (l *mockLogger) Warn(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, fmt.Sprintf("%s %v", msg, fields["source"]))
}

func (l *mockLogger) Error(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf("%s %v", msg, fields["error"]))
}

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// generatedItems builds n items for source with descending pubDates
func generatedItems(source string, n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := 0; i < n; i++ {
		link := fmt.Sprintf("https://%s.example.com/post-%d", source, i)
		items[i] = domain.Item{
			ID:      link,
			Title:   fmt.Sprintf("%s story %d", source, i),
			Link:    link,
			Source:  source,
			PubDate: baseTime.Add(-time.Duration(i) * time.Hour),
		}
	}
	return items
}

func testSources(names ...string) []domain.Source {
	sources := make([]domain.Source, len(names))
	for i, name := range names {
		sources[i] = domain.Source{Name: name, URL: "https://" + name + ".example.com/feed"}
	}
	return sources
}
