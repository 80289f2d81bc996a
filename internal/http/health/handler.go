package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthData is the payload for the health endpoint.
type HealthData struct {
	Message string `json:"message" doc:"Service state" example:"Service is running"`
	Health  string `json:"health" doc:"Health indicator" example:"ok"`
}

// Output wraps HealthData as the response body.
type Output struct {
	Body HealthData
}

// Register mounts the health check on the API root.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, handler)
}

func handler(context.Context, *struct{}) (*Output, error) {
	return &Output{Body: HealthData{Message: "Service is running", Health: "ok"}}, nil
}
