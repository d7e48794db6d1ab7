// ABOUTME: Trade news handlers for the Huma API
// ABOUTME: Serves the aggregated latest items and the configured source list

package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"bevtrends-api/api/dto/mappers"
	"bevtrends-api/api/dto/responses"
	"bevtrends-api/core/aggregator"
	"bevtrends-api/core/domain"
	"bevtrends-api/core/interfaces"
)

// TradesService defines the methods needed from the aggregation pipeline
type TradesService interface {
	GetLatest(ctx context.Context, opts aggregator.Options) ([]domain.Item, error)
	Sources() []domain.Source
}

// TradesHandler handles trade news requests
type TradesHandler struct {
	service TradesService
	logger  interfaces.Logger
}

// NewTradesHandler creates a new trades handler
func NewTradesHandler(service TradesService, logger interfaces.Logger) *TradesHandler {
	return &TradesHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers all trade-related routes
func (h *TradesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getLatestTrades",
		Method:      http.MethodGet,
		Path:        "/trades/latest",
		Summary:     "Latest beverage trade news",
		Description: "Aggregates the configured trade feeds into one deduplicated list, newest first. " +
			"Unfiltered requests are served from a snapshot refreshed every few minutes.",
		Tags: []string{"Trades"},
	}, h.GetLatest)

	huma.Register(api, huma.Operation{
		OperationID: "listSources",
		Method:      http.MethodGet,
		Path:        "/trades/sources",
		Summary:     "List trade sources",
		Description: "Returns the feeds the aggregator reads, in merge order",
		Tags:        []string{"Trades"},
	}, h.ListSources)
}

// LatestTradesInput defines the query parameters of GetLatest. Values are
// accepted as strings and parsed leniently so malformed input falls back to
// defaults instead of failing the request.
type LatestTradesInput struct {
	Sources   string `query:"sources" doc:"Comma-separated source names (case-insensitive)"`
	Query     string `query:"q" doc:"Case-insensitive substring matched against title and source"`
	Limit     string `query:"limit" doc:"Maximum number of items, 1-200 (default 100)"`
	PerSource string `query:"perSource" doc:"Maximum items per source, 1-50 (default 12)"`
	NoCache   string `query:"nocache" doc:"Set to 1 to bypass the snapshot"`
	HiRes     string `query:"hires" doc:"Set to 1 to upgrade missing or low-quality images"`
}

// LatestTradesOutput defines the output of GetLatest
type LatestTradesOutput struct {
	Body responses.LatestTradesResponse
}

// GetLatest handles GET /trades/latest
func (h *TradesHandler) GetLatest(ctx context.Context, input *LatestTradesInput) (*LatestTradesOutput, error) {
	opts := aggregator.Options{
		SourceNames:    splitList(input.Sources),
		Query:          input.Query,
		TotalLimit:     parseLimit(input.Limit),
		PerSourceLimit: parseLimit(input.PerSource),
		ForceFresh:     parseFlag(input.NoCache),
		UpgradeImages:  parseFlag(input.HiRes),
	}

	items, err := h.service.GetLatest(ctx, opts)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("Failed to load trades", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, toHumaError(err, "Failed to load trades")
	}

	return &LatestTradesOutput{
		Body: responses.LatestTradesResponse{Items: mappers.ToTradeItems(items)},
	}, nil
}

// ListSourcesOutput defines the output of ListSources
type ListSourcesOutput struct {
	Body responses.SourcesResponse
}

// ListSources handles GET /trades/sources
func (h *TradesHandler) ListSources(ctx context.Context, input *struct{}) (*ListSourcesOutput, error) {
	return &ListSourcesOutput{
		Body: responses.SourcesResponse{Sources: mappers.ToSources(h.service.Sources())},
	}, nil
}

// splitList splits a comma-separated list, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseLimit returns 0 (use the default) for missing or unparseable values
func parseLimit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// parseFlag accepts 1, true and yes in any case
func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
