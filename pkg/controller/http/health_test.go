package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	controller "github.com/m-mizutani/issuedigest/pkg/controller/http"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces/mocks"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
)

func TestHealthEndpoint(t *testing.T) {
	ctx := context.Background()
	generatedAt := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	publisher := &mocks.PublishUseCaseMock{
		CurrentFunc: func() *model.PublishedDocument {
			return &model.PublishedDocument{RunID: "run-1", GeneratedAt: generatedAt, Body: []byte("<html></html>")}
		},
	}

	server, err := controller.NewServer(
		ctx,
		publisher,
		&mocks.RefreshUseCaseMock{},
		controller.WithAddr("localhost:0"),
	)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Status code = %v, want %v", w.Code, http.StatusOK)
	}

	var status model.HealthStatus
	if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if status.Status != "healthy" {
		t.Errorf("Status = %v, want healthy", status.Status)
	}

	if status.Service != "issuedigest" {
		t.Errorf("Service = %v, want issuedigest", status.Service)
	}

	if status.Version == "" {
		t.Error("Version should not be empty")
	}

	if status.LastPublished == nil || !status.LastPublished.Equal(generatedAt) {
		t.Errorf("LastPublished = %v, want %v", status.LastPublished, generatedAt)
	}

	if status.LastRunID != "run-1" {
		t.Errorf("LastRunID = %v, want run-1", status.LastRunID)
	}
}
