package usecase

import (
	"context"
	"sync/atomic"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
)

// Publisher renders digests, persists them and holds the document served to
// readers. The served document is replaced by pointer swap after the new one
// has been rendered and stored, so readers always get a complete document.
type Publisher struct {
	renderer interfaces.Renderer
	store    interfaces.DocumentStore
	current  atomic.Pointer[model.PublishedDocument]
}

// NewPublisher creates a new Publisher
func NewPublisher(renderer interfaces.Renderer, store interfaces.DocumentStore) *Publisher {
	return &Publisher{
		renderer: renderer,
		store:    store,
	}
}

// Publish renders and stores digest and makes it the current document. On
// failure the previous document stays current.
func (p *Publisher) Publish(ctx context.Context, digest *model.Digest) (*model.PublishedDocument, error) {
	body, err := p.renderer.Render(digest.Title, digest.Markdown())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render digest", goerr.T(types.ErrTagPublish))
	}

	if err := p.store.Save(ctx, body); err != nil {
		return nil, goerr.Wrap(err, "failed to store document", goerr.T(types.ErrTagPublish))
	}

	doc := &model.PublishedDocument{
		RunID:       runIDFrom(ctx),
		GeneratedAt: digest.GeneratedAt,
		Body:        body,
	}
	p.current.Store(doc)

	ctxlog.From(ctx).Info("Published document",
		"generated_at", doc.GeneratedAt,
		"size_bytes", len(body),
	)
	return doc, nil
}

// Current returns the last published document, or nil before the first publish
func (p *Publisher) Current() *model.PublishedDocument {
	return p.current.Load()
}

// Restore loads the stored document so it can be served before the first run
// of this process completes. A document published meanwhile is not replaced.
func (p *Publisher) Restore(ctx context.Context) error {
	body, modTime, ok, err := p.store.Load(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to restore published document")
	}
	if !ok {
		ctxlog.From(ctx).Info("No stored document to restore")
		return nil
	}

	restored := p.current.CompareAndSwap(nil, &model.PublishedDocument{
		GeneratedAt: modTime,
		Body:        body,
	})
	if restored {
		ctxlog.From(ctx).Info("Restored published document", "modified_at", modTime, "size_bytes", len(body))
	}
	return nil
}
