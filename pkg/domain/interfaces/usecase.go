package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . WebhookUseCase PipelineUseCase PublishUseCase RefreshUseCase

import (
	"context"

	"github.com/m-mizutani/issuedigest/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}

// PipelineUseCase builds one digest from the configured sources
type PipelineUseCase interface {
	Run(ctx context.Context) (*model.Digest, error)
}

// PublishUseCase renders digests and holds the currently served document
type PublishUseCase interface {
	Publish(ctx context.Context, digest *model.Digest) (*model.PublishedDocument, error)
	// Current returns the last published document, or nil before the first publish
	Current() *model.PublishedDocument
}

// RefreshUseCase runs pipeline and publish with at most one run at a time
type RefreshUseCase interface {
	// RunOnce executes a run synchronously
	RunOnce(ctx context.Context) error
	// Trigger starts a run in the background and returns immediately
	Trigger(ctx context.Context)
}
