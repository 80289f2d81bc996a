package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/template-api/internal/platform/logging"
	"github.com/janisto/template-api/internal/service/greeting"
)

// Register wires hello routes into the provided API router.
func Register(api huma.API, svc greeting.Service) {
	h := &handler{svc: svc}
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Get the welcome message",
		Description: "Returns the logic layer's welcome payload unchanged.",
		Tags:        []string{"Hello"},
	}, h.get)
}

type handler struct {
	svc greeting.Service
}

func (h *handler) get(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	msg, err := h.svc.Welcome(ctx)
	if err != nil {
		applog.FromContext(ctx).Error("welcome message failed", zap.Error(err))
		return nil, huma.Error500InternalServerError("internal server error")
	}
	return &GetOutput{Body: HelloData{
		Message:   msg.Message,
		Status:    msg.Status,
		Timestamp: msg.Timestamp,
	}}, nil
}
