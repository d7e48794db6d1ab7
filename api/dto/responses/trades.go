// ABOUTME: Response DTOs for the trade news endpoints
// ABOUTME: Nullable fields are pointers so absent values serialize as JSON null

package responses

// TradeItem is one aggregated news item
type TradeItem struct {
	ID      string  `json:"id" doc:"Item identity (guid, else link, else title)"`
	Title   string  `json:"title" doc:"Headline"`
	Link    *string `json:"link" doc:"Article URL" nullable:"true"`
	Source  string  `json:"source" doc:"Name of the source feed"`
	PubDate *string `json:"pubDate" doc:"Publication time in ISO-8601 UTC" nullable:"true"`
	Image   *string `json:"image" doc:"Representative image URL" nullable:"true"`
}

// LatestTradesResponse wraps the aggregated list
type LatestTradesResponse struct {
	Items []TradeItem `json:"items" doc:"Items newest first"`
}

// SourceResponse describes a configured source
type SourceResponse struct {
	Name string `json:"name" doc:"Source name, usable in the sources filter"`
	URL  string `json:"url" doc:"Feed URL"`
}

// SourcesResponse lists the configured sources
type SourcesResponse struct {
	Sources []SourceResponse `json:"sources"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}
