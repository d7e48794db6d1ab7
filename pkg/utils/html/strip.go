// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Cleans feed headlines that arrive with markup or double-encoded entities

package html

import (
	stdhtml "html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML returns the visible text of an HTML fragment with entities
// decoded and runs of whitespace collapsed to a single space
func StripHTML(s string) string {
	text := s
	if strings.Contains(text, "<") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(text)); err == nil {
			doc.Find("script, style").Remove()
			text = doc.Text()
		}
	}

	// Feeds often encode entities twice, so decode what the parser left behind
	text = stdhtml.UnescapeString(text)

	return strings.Join(strings.Fields(text), " ")
}
