package interfaces

//go:generate moq -out mocks/infra_mock.go -pkg mocks . SpecifierSource DocumentStore Renderer Notifier

import (
	"context"
	"time"
)

// SpecifierSource provides the raw source list. Read is called once per run.
type SpecifierSource interface {
	Read(ctx context.Context) ([]string, error)
}

// DocumentStore persists the published document. Save must replace the
// stored document atomically.
type DocumentStore interface {
	Save(ctx context.Context, body []byte) error
	// Load returns the stored document and its modification time. ok is false if nothing is stored yet.
	Load(ctx context.Context) (body []byte, modTime time.Time, ok bool, err error)
}

// Renderer converts digest markdown into a complete document
type Renderer interface {
	Render(title, markdown string) ([]byte, error)
}

// Notifier delivers run-level failure notices to operators
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
