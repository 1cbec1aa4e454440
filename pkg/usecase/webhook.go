package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
)

type webhookUseCase struct {
	refresh interfaces.RefreshUseCase
	labels  []string
}

// NewWebhook creates a new instance of WebhookUseCase. Supported issue events
// trigger a refresh when the issue carries one of labels; with no labels every
// supported event does.
func NewWebhook(refresh interfaces.RefreshUseCase, labels ...string) interfaces.WebhookUseCase {
	return &webhookUseCase{
		refresh: refresh,
		labels:  labels,
	}
}

// ProcessEvent processes a webhook event
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
		"supported", event.IsSupportedEvent(),
	)

	if !event.IsSupportedEvent() {
		logger.Debug("Ignoring unsupported event",
			"type", event.Type,
			"action", event.Action,
		)
		return nil
	}

	if !uc.matchesLabel(event) {
		logger.Debug("Ignoring event without watched label",
			"repository", event.Repository,
			"labels", event.Labels,
		)
		return nil
	}

	uc.refresh.Trigger(ctx)
	return nil
}

func (uc *webhookUseCase) matchesLabel(event *model.WebhookEvent) bool {
	if len(uc.labels) == 0 {
		return true
	}
	for _, label := range uc.labels {
		if event.HasLabel(label) {
			return true
		}
	}
	return false
}
