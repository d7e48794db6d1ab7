// ABOUTME: Mappers for converting aggregated domain items to API DTOs
// ABOUTME: Empty optional values become JSON nulls

package mappers

import (
	"bevtrends-api/api/dto/responses"
	"bevtrends-api/core/domain"
)

// isoMillis matches the ISO-8601 layout with millisecond precision used by browsers
const isoMillis = "2006-01-02T15:04:05.000Z"

// ToTradeItem converts a domain Item to its response DTO
func ToTradeItem(item *domain.Item) responses.TradeItem {
	out := responses.TradeItem{
		ID:     item.ID,
		Title:  item.Title,
		Source: item.Source,
		Link:   optional(item.Link),
		Image:  optional(item.Image),
	}
	if item.HasPubDate() {
		pub := item.PubDate.UTC().Format(isoMillis)
		out.PubDate = &pub
	}
	return out
}

// ToTradeItems converts a list, always returning a non-nil slice
func ToTradeItems(items []domain.Item) []responses.TradeItem {
	out := make([]responses.TradeItem, 0, len(items))
	for i := range items {
		out = append(out, ToTradeItem(&items[i]))
	}
	return out
}

// ToSources converts the source registry
func ToSources(sources []domain.Source) []responses.SourceResponse {
	out := make([]responses.SourceResponse, 0, len(sources))
	for _, src := range sources {
		out = append(out, responses.SourceResponse{Name: src.Name, URL: src.URL})
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
