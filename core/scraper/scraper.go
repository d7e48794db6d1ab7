// ABOUTME: Page scraper fetches an article page and extracts its social preview image
// ABOUTME: Uses colly to read Open Graph / Twitter meta tags with an img srcset fallback

package scraper

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	coreerrors "bevtrends-api/core/errors"
	"bevtrends-api/core/images"
	"bevtrends-api/core/interfaces"
	"github.com/gocolly/colly/v2"
)

const (
	// DefaultTimeout bounds a single page fetch
	DefaultTimeout = 7 * time.Second

	// DefaultUserAgent identifies the scraper to article hosts
	DefaultUserAgent = "BevTrendsBot/1.0 (+https://bevtrends.app)"

	maxBodySize = 5 * 1024 * 1024
)

// Options configures a PageScraper
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// PageScraper resolves high-resolution images for article links
type PageScraper struct {
	deps      interfaces.Dependencies
	cache     *ImageCache
	timeout   time.Duration
	userAgent string
}

// NewPageScraper creates a scraper that consults and fills the given image cache
func NewPageScraper(deps interfaces.Dependencies, cache *ImageCache, opts Options) *PageScraper {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return &PageScraper{
		deps:      deps,
		cache:     cache,
		timeout:   opts.Timeout,
		userAgent: opts.UserAgent,
	}
}

// FindImage returns the preview image of the page at link. A cached entry is
// returned without network access. Fetch or parse failures yield an
// EnrichmentError; a page without any image yields "" and a nil error.
func (s *PageScraper) FindImage(ctx context.Context, link string) (string, error) {
	if cached, ok := s.cache.Get(ctx, link); ok {
		return cached, nil
	}

	parsed, err := url.Parse(link)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", &coreerrors.EnrichmentError{Link: link, Err: errors.New("invalid article URL")}
	}

	if err := ctx.Err(); err != nil {
		return "", &coreerrors.EnrichmentError{Link: link, Err: err}
	}

	imageURL, err := s.scrape(ctx, link)
	if err != nil {
		s.debug("Page scrape failed", map[string]interface{}{
			"url":   link,
			"error": err.Error(),
		})
		return "", &coreerrors.EnrichmentError{Link: link, Err: err}
	}
	if imageURL == "" {
		return "", nil
	}

	if err := s.cache.Put(ctx, link, imageURL); err != nil {
		s.debug("Failed to cache scraped image", map[string]interface{}{
			"url":   link,
			"error": err.Error(),
		})
	}
	return imageURL, nil
}

// pageImages collects every candidate seen while walking one page
type pageImages struct {
	openGraph   string
	twitter     string
	srcset      string
	srcsetWidth int
}

// best applies the meta tag priority: og:image, twitter:image, widest srcset
func (p *pageImages) best() string {
	switch {
	case p.openGraph != "":
		return p.openGraph
	case p.twitter != "":
		return p.twitter
	default:
		return p.srcset
	}
}

func (s *PageScraper) scrape(ctx context.Context, link string) (string, error) {
	c := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.UserAgent(s.userAgent),
		colly.MaxBodySize(maxBodySize),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(s.timeout)

	found := &pageImages{srcsetWidth: -1}

	c.OnHTML("meta[content]", func(e *colly.HTMLElement) {
		content := strings.TrimSpace(e.Attr("content"))
		if content == "" {
			return
		}
		key := strings.ToLower(strings.TrimSpace(e.Attr("property")))
		if key == "" {
			key = strings.ToLower(strings.TrimSpace(e.Attr("name")))
		}

		switch key {
		case "og:image":
			if found.openGraph == "" {
				found.openGraph = absoluteImageURL(e, content)
			}
		case "twitter:image", "twitter:image:src":
			if found.twitter == "" {
				found.twitter = absoluteImageURL(e, content)
			}
		}
	})

	c.OnHTML("img[srcset]", func(e *colly.HTMLElement) {
		for _, candidate := range images.ParseSrcset(e.Attr("srcset")) {
			if candidate.Width > found.srcsetWidth {
				found.srcset = absoluteImageURL(e, candidate.URL)
				found.srcsetWidth = candidate.Width
			}
		}
	})

	if err := c.Visit(link); err != nil {
		return "", err
	}

	return found.best(), nil
}

// absoluteImageURL resolves page-relative references against the page URL
func absoluteImageURL(e *colly.HTMLElement, ref string) string {
	ref = images.NormalizeURL(ref)
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if abs := e.Request.AbsoluteURL(ref); abs != "" {
		return abs
	}
	return ref
}

func (s *PageScraper) debug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}
