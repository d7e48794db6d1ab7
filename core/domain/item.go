// ABOUTME: Item domain model represents one normalized entry aggregated from a source feed
// ABOUTME: Provides identity and dedup key derivation shared by the fetcher and the pipeline

package domain

import "time"

// Item is the canonical record produced from any upstream feed entry
type Item struct {
	// ID is the item identity (guid, else link, else title)
	ID string

	// Title is the item's headline, possibly empty
	Title string

	// Link is the absolute URL of the article, empty when the feed omits it
	Link string

	// Source is the name of the Source the item came from
	Source string

	// PubDate is when the item was published; zero when unknown
	PubDate time.Time

	// Image is the resolved image URL; empty when none was found
	Image string
}

// DeriveID returns the identity for an entry with the given fields
func DeriveID(guid, link, title string) string {
	switch {
	case guid != "":
		return guid
	case link != "":
		return link
	default:
		return title
	}
}

// DedupKey returns the key used to collapse duplicates across sources.
// Items with neither a link nor a title have no key and report ok=false.
func (i *Item) DedupKey() (key string, ok bool) {
	if i.Link != "" {
		return i.Link, true
	}
	if i.Title != "" {
		return i.Title, true
	}
	return "", false
}

// HasPubDate reports whether the publish time is known
func (i *Item) HasPubDate() bool {
	return !i.PubDate.IsZero()
}
