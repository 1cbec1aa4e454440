package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces/mocks"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
	"github.com/m-mizutani/issuedigest/pkg/usecase"
)

func TestWebhookUseCase_ProcessEvent(t *testing.T) {
	tests := []struct {
		name        string
		labels      []string
		event       *model.WebhookEvent
		wantTrigger bool
	}{
		{
			name:   "Labeled issue with watched label",
			labels: []string{"good first issue"},
			event: &model.WebhookEvent{
				ID:         "test-delivery-1",
				Type:       model.EventTypeIssues,
				Action:     "labeled",
				Repository: "Acme/widgets",
				Sender:     "testuser",
				Labels:     []string{"bug", "good first issue"},
				ReceivedAt: time.Now(),
			},
			wantTrigger: true,
		},
		{
			name:   "Opened issue without watched label",
			labels: []string{"good first issue"},
			event: &model.WebhookEvent{
				ID:         "test-delivery-2",
				Type:       model.EventTypeIssues,
				Action:     "opened",
				Repository: "Acme/widgets",
				Sender:     "testuser",
				Labels:     []string{"bug"},
				ReceivedAt: time.Now(),
			},
			wantTrigger: false,
		},
		{
			name: "Any label when none watched",
			event: &model.WebhookEvent{
				ID:         "test-delivery-3",
				Type:       model.EventTypeIssues,
				Action:     "reopened",
				Repository: "Acme/widgets",
				Sender:     "testuser",
				ReceivedAt: time.Now(),
			},
			wantTrigger: true,
		},
		{
			name:   "Closed issue is ignored",
			labels: []string{"good first issue"},
			event: &model.WebhookEvent{
				ID:         "test-delivery-4",
				Type:       model.EventTypeIssues,
				Action:     "closed",
				Repository: "Acme/widgets",
				Sender:     "testuser",
				Labels:     []string{"good first issue"},
				ReceivedAt: time.Now(),
			},
			wantTrigger: false,
		},
		{
			name: "Ping is ignored",
			event: &model.WebhookEvent{
				ID:         "test-delivery-5",
				Type:       model.EventTypePing,
				Repository: "Acme/widgets",
				Sender:     "testuser",
				ReceivedAt: time.Now(),
			},
			wantTrigger: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refresh := &mocks.RefreshUseCaseMock{
				TriggerFunc: func(ctx context.Context) {},
			}
			uc := usecase.NewWebhook(refresh, tt.labels...)

			gt.NoError(t, uc.ProcessEvent(context.Background(), tt.event))
			if tt.wantTrigger {
				gt.A(t, refresh.TriggerCalls()).Length(1)
			} else {
				gt.A(t, refresh.TriggerCalls()).Length(0)
			}
		})
	}
}
