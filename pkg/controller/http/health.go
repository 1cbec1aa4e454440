package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
)

// HealthHandler reports liveness and the last published document
type HealthHandler struct {
	publishUC interfaces.PublishUseCase
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(publishUC interfaces.PublishUseCase) *HealthHandler {
	return &HealthHandler{publishUC: publishUC}
}

// Handle handles health check requests
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	status := &model.HealthStatus{
		Status:  "healthy",
		Service: "issuedigest",
		Version: types.Version,
	}
	if doc := h.publishUC.Current(); doc != nil {
		generatedAt := doc.GeneratedAt
		status.LastPublished = &generatedAt
		status.LastRunID = doc.RunID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
