// ABOUTME: Image resolver picks a representative image for a feed item from feed-embedded data
// ABOUTME: Applies a strict priority chain over enclosures, media entries, srcset and inline images

package images

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Candidate is a media entry with its declared dimensions (0 when absent)
type Candidate struct {
	URL    string
	Width  int
	Height int
}

// Area returns the declared pixel area of the candidate
func (c Candidate) Area() int {
	return c.Width * c.Height
}

// Media is the image-related metadata carried by one feed entry
type Media struct {
	// EnclosureURL is the explicit enclosure URL, if any
	EnclosureURL string

	// Contents are the media:content entries
	Contents []Candidate

	// Thumbnails are the media:thumbnail entries
	Thumbnails []Candidate

	// ContentHTML is the rich HTML body (content:encoded)
	ContentHTML string

	// RawHTML is the plain entry body (description)
	RawHTML string
}

// Resolve returns the best image URL for the entry, or "" when none applies.
// The first strategy that yields a URL wins:
//  1. enclosure URL
//  2. largest media:content entry
//  3. largest media:thumbnail entry
//  4. widest srcset candidate in the rich HTML
//  5. first <img src> in the raw, then the rich HTML
func Resolve(m Media) string {
	if u := strings.TrimSpace(m.EnclosureURL); u != "" {
		return NormalizeURL(u)
	}
	if u := Largest(m.Contents); u != "" {
		return NormalizeURL(u)
	}
	if u := Largest(m.Thumbnails); u != "" {
		return NormalizeURL(u)
	}
	if u := srcsetFromHTML(m.ContentHTML); u != "" {
		return NormalizeURL(u)
	}
	for _, body := range []string{m.RawHTML, m.ContentHTML} {
		if u := firstImageFromHTML(body); u != "" {
			return NormalizeURL(u)
		}
	}
	return ""
}

// Largest returns the URL of the candidate with the greatest declared area.
// Entries without dimensions score zero; on equal area the earlier entry wins.
func Largest(candidates []Candidate) string {
	best := ""
	bestArea := -1
	for _, c := range candidates {
		u := strings.TrimSpace(c.URL)
		if u == "" {
			continue
		}
		if area := c.Area(); area > bestArea {
			best = u
			bestArea = area
		}
	}
	return best
}

// SrcsetCandidate is one entry of a srcset attribute
type SrcsetCandidate struct {
	URL   string
	Width int
}

// ParseSrcset splits a srcset attribute ("url 480w, url 800w") into candidates.
// Candidates without a width descriptor get width 0.
func ParseSrcset(srcset string) []SrcsetCandidate {
	var out []SrcsetCandidate
	for _, part := range strings.Split(srcset, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		width := 0
		if len(fields) > 1 && strings.HasSuffix(fields[1], "w") {
			if w, err := strconv.Atoi(strings.TrimSuffix(fields[1], "w")); err == nil {
				width = w
			}
		}
		out = append(out, SrcsetCandidate{URL: fields[0], Width: width})
	}
	return out
}

// BestFromSrcset returns the widest candidate of a srcset attribute.
// On equal width the earlier candidate wins.
func BestFromSrcset(srcset string) string {
	best := ""
	bestWidth := -1
	for _, c := range ParseSrcset(srcset) {
		if c.Width > bestWidth {
			best = c.URL
			bestWidth = c.Width
		}
	}
	return best
}

// NormalizeURL turns protocol-relative URLs into https URLs
func NormalizeURL(u string) string {
	u = strings.TrimSpace(u)
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}

func parseFragment(body string) *goquery.Document {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}
	return doc
}

func srcsetFromHTML(body string) string {
	doc := parseFragment(body)
	if doc == nil {
		return ""
	}
	srcset, ok := doc.Find("[srcset]").First().Attr("srcset")
	if !ok {
		return ""
	}
	return BestFromSrcset(srcset)
}

func firstImageFromHTML(body string) string {
	doc := parseFragment(body)
	if doc == nil {
		return ""
	}
	found := ""
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if src := strings.TrimSpace(s.AttrOr("src", "")); src != "" {
			found = src
			return false
		}
		return true
	})
	return found
}
