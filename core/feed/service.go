// ABOUTME: Feed service fetches one source feed and normalizes its entries
// ABOUTME: Failures are classified per source so the pipeline can absorb them

package feed

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"bevtrends-api/core/domain"
	coreerrors "bevtrends-api/core/errors"
	"bevtrends-api/core/images"
	"bevtrends-api/core/interfaces"
	htmlutil "bevtrends-api/pkg/utils/html"
	"bevtrends-api/pkg/utils/parse"
	timeutil "bevtrends-api/pkg/utils/time"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

// DefaultTimeout bounds the fetch of a single source
const DefaultTimeout = 15 * time.Second

// FeedService handles fetching and normalizing source feeds
type FeedService struct {
	deps    interfaces.Dependencies
	timeout time.Duration
}

// NewFeedService creates a new feed service instance
func NewFeedService(deps interfaces.Dependencies, timeout time.Duration) *FeedService {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &FeedService{
		deps:    deps,
		timeout: timeout,
	}
}

// FetchSource fetches the source feed and returns up to limit normalized
// items in feed order. Any failure is returned as a *SourceFetchError.
func (s *FeedService) FetchSource(ctx context.Context, source domain.Source, limit int) ([]domain.Item, error) {
	items, err := s.fetch(ctx, source, limit)
	if err != nil {
		return nil, &coreerrors.SourceFetchError{
			Source: source.Name,
			URL:    source.URL,
			Err:    err,
		}
	}
	return items, nil
}

func (s *FeedService) fetch(ctx context.Context, source domain.Source, limit int) ([]domain.Item, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.deps.HTTPClient.Get(ctx, source.URL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode()/100 != 2 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-2xx status code",
			API:        source.Name,
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	return s.parseFeedContent(bodyBytes, source.Name, limit)
}

// parseFeedContent parses a feed document and normalizes its first limit entries
func (s *FeedService) parseFeedContent(content []byte, sourceName string, limit int) ([]domain.Item, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, errors.New("empty feed content")
	}

	parsedFeed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	entries := parsedFeed.Items
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	items := make([]domain.Item, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		items = append(items, convertItemToDomain(entry, sourceName))
	}
	return items, nil
}

// convertItemToDomain converts a gofeed item into a normalized item.
// The image comes from feed-embedded data only.
func convertItemToDomain(item *gofeed.Item, sourceName string) domain.Item {
	title := htmlutil.StripHTML(item.Title)
	link := strings.TrimSpace(item.Link)

	return domain.Item{
		ID:      domain.DeriveID(strings.TrimSpace(item.GUID), link, title),
		Title:   title,
		Link:    link,
		Source:  sourceName,
		PubDate: publishedTime(item),
		Image:   images.Resolve(extractMedia(item)),
	}
}

// publishedTime picks the best available timestamp, zero when none parses
func publishedTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	if t := timeutil.ParseFlexibleTime(item.Published); !t.IsZero() {
		return t
	}
	return timeutil.ParseFlexibleTime(item.Updated)
}

// extractMedia gathers the image-bearing fields of an entry
func extractMedia(item *gofeed.Item) images.Media {
	media := images.Media{
		ContentHTML: item.Content,
		RawHTML:     item.Description,
	}

	for _, enc := range item.Enclosures {
		if enc != nil && strings.TrimSpace(enc.URL) != "" {
			media.EnclosureURL = enc.URL
			break
		}
	}

	if mediaExt, ok := item.Extensions["media"]; ok {
		media.Contents = mediaCandidates(mediaExt, "content")
		media.Thumbnails = mediaCandidates(mediaExt, "thumbnail")
	}

	return media
}

// mediaCandidates collects media:<name> entries, including those nested in media:group
func mediaCandidates(mediaExt map[string][]ext.Extension, name string) []images.Candidate {
	var out []images.Candidate
	for _, e := range mediaExt[name] {
		out = appendCandidate(out, e)
	}
	for _, group := range mediaExt["group"] {
		for _, e := range group.Children[name] {
			out = appendCandidate(out, e)
		}
	}
	return out
}

func appendCandidate(out []images.Candidate, e ext.Extension) []images.Candidate {
	u := strings.TrimSpace(e.Attrs["url"])
	if u == "" {
		return out
	}
	return append(out, images.Candidate{
		URL:    u,
		Width:  parse.IntOrZero(e.Attrs["width"]),
		Height: parse.IntOrZero(e.Attrs["height"]),
	})
}
