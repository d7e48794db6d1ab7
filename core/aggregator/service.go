// ABOUTME: Aggregation service merges all source feeds into one ranked, deduplicated list
// ABOUTME: Serves unconditioned requests from an atomically swapped snapshot

package aggregator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"bevtrends-api/core/domain"
	coreerrors "bevtrends-api/core/errors"
	"bevtrends-api/core/interfaces"
)

const (
	// DefaultFreshness is how long a snapshot is served before recomputing
	DefaultFreshness = 10 * time.Minute

	// DefaultUpgradeLimit is the size of the hi-res upgrade prefix and the
	// maximum number of concurrent page scrapes per aggregation
	DefaultUpgradeLimit = 40
)

// Config configures an aggregation Service
type Config struct {
	Sources      []domain.Source
	Freshness    time.Duration
	UpgradeLimit int
}

// Service runs the aggregation pipeline
type Service struct {
	deps         interfaces.Dependencies
	fetcher      interfaces.FeedFetcher
	scraper      interfaces.ImageScraper
	snapshot     *SnapshotStore
	sources      []domain.Source
	freshness    time.Duration
	upgradeLimit int
	now          func() time.Time
}

// NewService creates an aggregation service. The snapshot store is owned by
// the caller so its lifetime can be shared or isolated explicitly.
func NewService(deps interfaces.Dependencies, fetcher interfaces.FeedFetcher, scraper interfaces.ImageScraper, snapshot *SnapshotStore, cfg Config) *Service {
	if cfg.Freshness <= 0 {
		cfg.Freshness = DefaultFreshness
	}
	if cfg.UpgradeLimit <= 0 {
		cfg.UpgradeLimit = DefaultUpgradeLimit
	}
	if snapshot == nil {
		snapshot = NewSnapshotStore()
	}

	sources := make([]domain.Source, len(cfg.Sources))
	copy(sources, cfg.Sources)

	return &Service{
		deps:         deps,
		fetcher:      fetcher,
		scraper:      scraper,
		snapshot:     snapshot,
		sources:      sources,
		freshness:    cfg.Freshness,
		upgradeLimit: cfg.UpgradeLimit,
		now:          time.Now,
	}
}

// Sources returns the registry the service aggregates over
func (s *Service) Sources() []domain.Source {
	out := make([]domain.Source, len(s.sources))
	copy(out, s.sources)
	return out
}

// GetLatest returns the aggregated items for opts. Source and enrichment
// failures only shrink the result; an error is returned solely for an
// internal fault. The work is detached from ctx cancellation so an abandoned
// request still completes and refreshes the snapshot.
func (s *Service) GetLatest(ctx context.Context, opts Options) (items []domain.Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = &coreerrors.InternalError{Op: "aggregate", Err: fmt.Errorf("panic: %v", r)}
			s.logError(err)
		}
	}()

	ctx = context.WithoutCancel(ctx)
	opts = opts.Normalized()
	conditioned := opts.IsConditioned()

	if !conditioned {
		if snap := s.snapshot.Load(); snap.IsFresh(s.now(), s.freshness) {
			s.logDebug("Serving snapshot", map[string]interface{}{
				"items":       len(snap.Items),
				"captured_at": snap.CapturedAt.Format(time.RFC3339),
			})
			return cloneItems(snap.Items), nil
		}
	}

	items, err = s.aggregate(ctx, opts)
	if err != nil {
		s.logError(err)
		return nil, err
	}

	if !conditioned {
		s.snapshot.Store(&domain.Snapshot{Items: cloneItems(items), CapturedAt: s.now()})
	}
	return items, nil
}

// Refresh recomputes the unconditioned aggregation and replaces the snapshot
// regardless of its age. It returns the number of items captured. Unlike
// GetLatest it honours cancellation: a cancelled refresh leaves the snapshot
// untouched and returns the context error.
func (s *Service) Refresh(ctx context.Context) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &coreerrors.InternalError{Op: "refresh", Err: fmt.Errorf("panic: %v", r)}
			s.logError(err)
		}
	}()

	items, err := s.aggregate(ctx, Options{}.Normalized())
	if err != nil {
		s.logError(err)
		return 0, err
	}
	s.snapshot.Store(&domain.Snapshot{Items: cloneItems(items), CapturedAt: s.now()})
	return len(items), nil
}

// aggregate runs selection, fetch, merge, filter, upgrade, dedup, sort and cap
func (s *Service) aggregate(ctx context.Context, opts Options) ([]domain.Item, error) {
	start := s.now()
	selected := domain.SelectSources(s.sources, opts.SourceNames)

	results := s.fetchAll(ctx, selected, opts.PerSourceLimit)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	merged, failed := s.mergeResults(results)

	items := filterByQuery(merged, opts.Query)
	if opts.UpgradeImages {
		items = s.upgradeImages(ctx, items)
	}
	items = dedupe(items)
	sortByPubDate(items)
	if len(items) > opts.TotalLimit {
		items = items[:opts.TotalLimit]
	}

	s.logInfo("Aggregation completed", map[string]interface{}{
		"sources":     len(selected),
		"failed":      failed,
		"merged":      len(merged),
		"items":       len(items),
		"hires":       opts.UpgradeImages,
		"duration_ms": s.now().Sub(start).Milliseconds(),
	})
	return items, nil
}

// sourceResult carries the outcome of one source fetch
type sourceResult struct {
	source domain.Source
	items  []domain.Item
	err    error
}

// fetchAll fetches every source concurrently and waits for all of them.
// Results are indexed by source position so merge order is deterministic.
func (s *Service) fetchAll(ctx context.Context, sources []domain.Source, limit int) []sourceResult {
	results := make([]sourceResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src domain.Source) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = sourceResult{
						source: src,
						err:    &coreerrors.SourceFetchError{Source: src.Name, URL: src.URL, Err: fmt.Errorf("panic: %v", r)},
					}
				}
			}()

			items, err := s.fetcher.FetchSource(ctx, src, limit)
			if err == nil && len(items) > limit {
				items = items[:limit]
			}
			results[i] = sourceResult{source: src, items: items, err: err}
		}(i, src)
	}
	wg.Wait()

	return results
}

// mergeResults flattens successful results in source order and logs the failures
func (s *Service) mergeResults(results []sourceResult) ([]domain.Item, int) {
	total := 0
	for _, r := range results {
		total += len(r.items)
	}

	merged := make([]domain.Item, 0, total)
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			s.logWarn("Source fetch failed", map[string]interface{}{
				"source": r.source.Name,
				"url":    r.source.URL,
				"error":  r.err.Error(),
			})
			continue
		}
		merged = append(merged, r.items...)
	}
	return merged, failed
}

// filterByQuery keeps items whose title or source contains query
func filterByQuery(items []domain.Item, query string) []domain.Item {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)

	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), q) || strings.Contains(strings.ToLower(item.Source), q) {
			out = append(out, item)
		}
	}
	return out
}

// dedupe keeps the first item per dedup key and drops keyless items
func dedupe(items []domain.Item) []domain.Item {
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		key, ok := item.DedupKey()
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

var epoch = time.Unix(0, 0).UTC()

// sortKey treats an unknown publish time as the Unix epoch
func sortKey(item *domain.Item) time.Time {
	if !item.HasPubDate() {
		return epoch
	}
	return item.PubDate
}

// sortByPubDate orders newest first; equal keys keep their merge order
func sortByPubDate(items []domain.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return sortKey(&items[i]).After(sortKey(&items[j]))
	})
}

func cloneItems(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *Service) logError(err error) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error("Aggregation failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
