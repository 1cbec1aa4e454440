package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
)

// DocumentHandler serves the published document
type DocumentHandler struct {
	baseCtx   context.Context
	publishUC interfaces.PublishUseCase
	refreshUC interfaces.RefreshUseCase
}

// NewDocumentHandler creates a new DocumentHandler. Refreshes triggered by
// requests inherit the logger of baseCtx, not the request context.
func NewDocumentHandler(baseCtx context.Context, publishUC interfaces.PublishUseCase, refreshUC interfaces.RefreshUseCase) *DocumentHandler {
	return &DocumentHandler{
		baseCtx:   baseCtx,
		publishUC: publishUC,
		refreshUC: refreshUC,
	}
}

// Handle responds with the last published document and schedules a refresh.
// The response never waits for the refresh.
func (h *DocumentHandler) Handle(w http.ResponseWriter, r *http.Request) {
	doc := h.publishUC.Current()

	h.refreshUC.Trigger(h.baseCtx)

	if doc == nil {
		ctxlog.From(r.Context()).Info("No document published yet")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("Document is being generated, try again later\n"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Body)))
	w.Header().Set("Cache-Control", "no-cache")
	if !doc.GeneratedAt.IsZero() {
		w.Header().Set("Last-Modified", doc.GeneratedAt.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Body); err != nil {
		ctxlog.From(r.Context()).Warn("Failed to write document", "error", err)
	}
}
