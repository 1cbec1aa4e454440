package http_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	controller "github.com/m-mizutani/issuedigest/pkg/controller/http"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces/mocks"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
	"github.com/m-mizutani/issuedigest/pkg/usecase"
)

// generateSignature generates HMAC-SHA256 signature for testing
func generateSignature(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func acceptAll() *mocks.WebhookUseCaseMock {
	return &mocks.WebhookUseCaseMock{
		ProcessEventFunc: func(ctx context.Context, event *model.WebhookEvent) error {
			return nil
		},
	}
}

func TestWebhookHandler_SignatureVerification(t *testing.T) {
	secret := "test-secret"

	tests := []struct {
		name           string
		payload        string
		signature      string
		wantStatusCode int
	}{
		{
			name:           "Valid signature",
			payload:        `{"action":"opened","issue":{"id":1},"repository":{"full_name":"test/repo"},"sender":{"login":"testuser"}}`,
			signature:      "", // Will be generated
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "Invalid signature",
			payload:        `{"action":"opened"}`,
			signature:      "sha256=invalid",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "Missing signature",
			payload:        `{"action":"opened"}`,
			signature:      "",
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := acceptAll()
			handler := controller.NewWebhookHandler(secret, uc)

			payload := []byte(tt.payload)
			signature := tt.signature
			if signature == "" && tt.wantStatusCode == http.StatusOK {
				signature = generateSignature(secret, payload)
			}

			req := httptest.NewRequest(http.MethodPost, "/hooks/github", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-GitHub-Event", "issues")
			req.Header.Set("X-GitHub-Delivery", "test-delivery")
			req.Header.Set("X-Hub-Signature-256", signature)

			w := httptest.NewRecorder()
			handler.Handle(w, req)

			if w.Code != tt.wantStatusCode {
				t.Errorf("Handle() status = %v, want %v", w.Code, tt.wantStatusCode)
			}
			if tt.wantStatusCode != http.StatusOK && len(uc.ProcessEventCalls()) != 0 {
				t.Error("Event with bad signature must not be processed")
			}
		})
	}
}

func TestWebhookHandler_EventParsing(t *testing.T) {
	secret := "test-secret"

	tests := []struct {
		name       string
		eventType  string
		payload    map[string]interface{}
		wantEvent  model.WebhookEvent
		wantLabels []string
	}{
		{
			name:      "Issue labeled event",
			eventType: "issues",
			payload: map[string]interface{}{
				"action": "labeled",
				"issue": map[string]interface{}{
					"id": 1,
					"labels": []map[string]interface{}{
						{"name": "bug"},
						{"name": "good first issue"},
					},
				},
				"repository": map[string]interface{}{
					"full_name": "Acme/widgets",
				},
				"sender": map[string]interface{}{
					"login": "testuser",
				},
			},
			wantEvent: model.WebhookEvent{
				ID:         "test-delivery",
				Type:       model.EventTypeIssues,
				Action:     "labeled",
				Repository: "Acme/widgets",
				Sender:     "testuser",
			},
			wantLabels: []string{"bug", "good first issue"},
		},
		{
			name:      "Ping event",
			eventType: "ping",
			payload: map[string]interface{}{
				"zen": "Keep it logically awesome.",
				"repository": map[string]interface{}{
					"full_name": "Acme/widgets",
				},
				"sender": map[string]interface{}{
					"login": "testuser",
				},
			},
			wantEvent: model.WebhookEvent{
				ID:         "test-delivery",
				Type:       model.EventTypePing,
				Repository: "Acme/widgets",
				Sender:     "testuser",
			},
		},
		{
			name:      "Other event",
			eventType: "star",
			payload: map[string]interface{}{
				"action": "created",
			},
			wantEvent: model.WebhookEvent{
				ID:   "test-delivery",
				Type: model.EventTypeUnknown,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := acceptAll()
			handler := controller.NewWebhookHandler(secret, uc)

			payloadBytes, _ := json.Marshal(tt.payload)
			signature := generateSignature(secret, payloadBytes)

			req := httptest.NewRequest(http.MethodPost, "/hooks/github", bytes.NewReader(payloadBytes))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-GitHub-Event", tt.eventType)
			req.Header.Set("X-GitHub-Delivery", "test-delivery")
			req.Header.Set("X-Hub-Signature-256", signature)

			w := httptest.NewRecorder()
			handler.Handle(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("Handle() status = %v, want %v, body = %s", w.Code, http.StatusOK, w.Body.String())
			}

			var response map[string]string
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Errorf("Failed to decode response: %v", err)
			}
			if response["status"] != "success" {
				t.Errorf("Response status = %v, want success", response["status"])
			}

			calls := uc.ProcessEventCalls()
			if len(calls) != 1 {
				t.Fatalf("ProcessEvent calls = %d, want 1", len(calls))
			}
			got := calls[0].Event
			if got.ID != tt.wantEvent.ID || got.Type != tt.wantEvent.Type || got.Action != tt.wantEvent.Action ||
				got.Repository != tt.wantEvent.Repository || got.Sender != tt.wantEvent.Sender {
				t.Errorf("Event = %+v, want %+v", got, tt.wantEvent)
			}
			if len(got.Labels) != len(tt.wantLabels) {
				t.Fatalf("Labels = %v, want %v", got.Labels, tt.wantLabels)
			}
			for i := range tt.wantLabels {
				if got.Labels[i] != tt.wantLabels[i] {
					t.Errorf("Labels[%d] = %v, want %v", i, got.Labels[i], tt.wantLabels[i])
				}
			}
		})
	}
}

func TestWebhookHandler_Integration(t *testing.T) {
	ctx := context.Background()
	secret := "integration-test-secret"
	refresh := &mocks.RefreshUseCaseMock{
		TriggerFunc: func(ctx context.Context) {},
	}
	uc := usecase.NewWebhook(refresh, "good first issue")

	server, err := controller.NewServer(
		ctx,
		publisherOf(nil),
		refresh,
		controller.WithAddr("localhost:0"),
		controller.WithWebhookSecret(secret),
		controller.WithWebhookUseCase(uc),
	)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	ts := httptest.NewServer(server.Handler)
	defer ts.Close()

	payload := map[string]interface{}{
		"action": "opened",
		"issue": map[string]interface{}{
			"id":     1,
			"labels": []map[string]interface{}{{"name": "good first issue"}},
		},
		"repository": map[string]interface{}{
			"full_name": "Acme/widgets",
		},
		"sender": map[string]interface{}{
			"login": "testuser",
		},
	}

	payloadBytes, _ := json.Marshal(payload)
	signature := generateSignature(secret, payloadBytes)

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/hooks/github", bytes.NewReader(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", "issues")
	req.Header.Set("X-GitHub-Delivery", "integration-test")
	req.Header.Set("X-Hub-Signature-256", signature)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer func() {
		_ = resp.Body.Close() // Error ignored in test
	}()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Status code = %v, want %v", resp.StatusCode, http.StatusOK)
	}

	if len(refresh.TriggerCalls()) != 1 {
		t.Errorf("Trigger calls = %d, want 1", len(refresh.TriggerCalls()))
	}
}
