package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"bevtrends-api/api/dto/responses"
)

// ServiceName is reported by the health endpoints
const ServiceName = "bevtrends2-backend"

// HealthOutput defines the output of the health endpoints
type HealthOutput struct {
	Body responses.HealthResponse
}

// RegisterHealthRoutes registers GET / and GET /health
func RegisterHealthRoutes(api huma.API) {
	health := func(ctx context.Context, input *struct{}) (*HealthOutput, error) {
		return &HealthOutput{Body: responses.HealthResponse{OK: true, Service: ServiceName}}, nil
	}

	huma.Register(api, huma.Operation{
		OperationID: "root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service status",
		Tags:        []string{"Health"},
	}, health)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, health)
}
