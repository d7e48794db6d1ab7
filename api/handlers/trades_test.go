package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bevtrends-api/api/dto/responses"
	"bevtrends-api/core/aggregator"
	"bevtrends-api/core/domain"
	coreerrors "bevtrends-api/core/errors"
)

// mockTradesService is a mock implementation of the aggregation pipeline
type mockTradesService struct {
	getLatestFunc func(ctx context.Context, opts aggregator.Options) ([]domain.Item, error)
	sources       []domain.Source
	lastOpts      aggregator.Options
}

func (m *mockTradesService) GetLatest(ctx context.Context, opts aggregator.Options) ([]domain.Item, error) {
	m.lastOpts = opts
	if m.getLatestFunc != nil {
		return m.getLatestFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockTradesService) Sources() []domain.Source {
	return m.sources
}

func TestTradesHandler_GetLatest(t *testing.T) {
	service := &mockTradesService{
		getLatestFunc: func(ctx context.Context, opts aggregator.Options) ([]domain.Item, error) {
			return []domain.Item{
				{
					ID:      "https://punchdrink.com/a",
					Title:   "Mezcal goes mainstream",
					Link:    "https://punchdrink.com/a",
					Source:  "Punch",
					PubDate: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
					Image:   "https://cdn.punchdrink.com/a.jpg",
				},
				{ID: "Untitled", Title: "Untitled", Source: "Imbibe"},
			}, nil
		},
	}

	api := newTestAPI(t)
	NewTradesHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/trades/latest")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.LatestTradesResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "Mezcal goes mainstream", body.Items[0].Title)
	require.NotNil(t, body.Items[0].PubDate)
	assert.Equal(t, "2024-05-01T12:00:00.000Z", *body.Items[0].PubDate)
	assert.Nil(t, body.Items[1].Link)
	assert.Nil(t, body.Items[1].Image)

	assert.Equal(t, aggregator.Options{}, service.lastOpts)
}

func TestTradesHandler_GetLatest_ParsesQuery(t *testing.T) {
	service := &mockTradesService{}

	api := newTestAPI(t)
	NewTradesHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/trades/latest?sources=punch,%20VinePair,,&q=gin&limit=20&perSource=5&nocache=1&hires=true")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"items":[]}`, resp.Body.String())

	assert.Equal(t, aggregator.Options{
		SourceNames:    []string{"punch", "VinePair"},
		Query:          "gin",
		TotalLimit:     20,
		PerSourceLimit: 5,
		ForceFresh:     true,
		UpgradeImages:  true,
	}, service.lastOpts)
}

func TestTradesHandler_GetLatest_LenientParsing(t *testing.T) {
	service := &mockTradesService{}

	api := newTestAPI(t)
	NewTradesHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/trades/latest?limit=abc&perSource=-4&nocache=0&hires=no")
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Equal(t, 0, service.lastOpts.TotalLimit)
	assert.Equal(t, -4, service.lastOpts.PerSourceLimit)
	assert.False(t, service.lastOpts.ForceFresh)
	assert.False(t, service.lastOpts.UpgradeImages)
}

func TestTradesHandler_GetLatest_InternalError(t *testing.T) {
	service := &mockTradesService{
		getLatestFunc: func(ctx context.Context, opts aggregator.Options) ([]domain.Item, error) {
			return nil, &coreerrors.InternalError{Op: "aggregate", Err: errors.New("panic: nil map")}
		},
	}

	api := newTestAPI(t)
	NewTradesHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/trades/latest")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Failed to load trades"}`, resp.Body.String())
}

func TestTradesHandler_ListSources(t *testing.T) {
	service := &mockTradesService{
		sources: []domain.Source{
			{Name: "Punch", URL: "https://punchdrink.com/feed/"},
			{Name: "BevNET", URL: "https://www.bevnet.com/feed"},
		},
	}

	api := newTestAPI(t)
	NewTradesHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/trades/sources")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"sources":[
		{"name":"Punch","url":"https://punchdrink.com/feed/"},
		{"name":"BevNET","url":"https://www.bevnet.com/feed"}
	]}`, resp.Body.String())
}

func TestParseHelpers(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,b,, "))

	assert.Equal(t, 0, parseLimit(""))
	assert.Equal(t, 0, parseLimit("ten"))
	assert.Equal(t, 25, parseLimit(" 25 "))

	for _, v := range []string{"1", "true", "TRUE", "yes"} {
		assert.True(t, parseFlag(v), v)
	}
	for _, v := range []string{"", "0", "false", "on"} {
		assert.False(t, parseFlag(v), v)
	}
}
