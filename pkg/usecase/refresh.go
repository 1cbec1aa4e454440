package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
	"github.com/m-mizutani/issuedigest/pkg/utils/async"
	"github.com/m-mizutani/issuedigest/pkg/utils/errs"
)

// Refresh runs the pipeline and publishes its digest.
//
// At most one run executes at a time. A run requested while another is
// active is dropped, not queued: the active run is about to publish fresh
// data and readers keep getting the last published document meanwhile.
type Refresh struct {
	pipeline  interfaces.PipelineUseCase
	publisher interfaces.PublishUseCase
	notifier  interfaces.Notifier
	mu        sync.Mutex
}

// RefreshOption is a functional option for Refresh
type RefreshOption func(*Refresh)

// WithNotifier sets the notifier of run-level failures
func WithNotifier(notifier interfaces.Notifier) RefreshOption {
	return func(r *Refresh) {
		r.notifier = notifier
	}
}

// NewRefresh creates a new Refresh
func NewRefresh(pipeline interfaces.PipelineUseCase, publisher interfaces.PublishUseCase, opts ...RefreshOption) *Refresh {
	r := &Refresh{
		pipeline:  pipeline,
		publisher: publisher,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunOnce executes one run synchronously. It returns an error tagged
// ErrTagRunInProgress without doing anything if another run is active.
// Run-level failures are reported before being returned.
func (r *Refresh) RunOnce(ctx context.Context) error {
	if !r.mu.TryLock() {
		return goerr.New("pipeline run already in progress", goerr.T(types.ErrTagRunInProgress))
	}
	defer r.mu.Unlock()

	runID := uuid.NewString()
	logger := ctxlog.From(ctx).With("run_id", runID)
	ctx = ctxlog.With(ctx, logger)
	ctx = withRunID(ctx, runID)

	start := time.Now()
	logger.Info("Pipeline run started")

	digest, err := r.pipeline.Run(ctx)
	if err != nil {
		r.fail(ctx, "Pipeline run failed", err)
		return err
	}

	doc, err := r.publisher.Publish(ctx, digest)
	if err != nil {
		r.fail(ctx, "Failed to publish digest", err)
		return err
	}

	logger.Info("Pipeline run completed",
		"sections", len(digest.Sections()),
		"notices", len(digest.Notices()),
		"size_bytes", len(doc.Body),
		"duration", time.Since(start),
	)
	return nil
}

// Trigger starts a run in the background and returns immediately. The run is
// detached from ctx cancellation.
func (r *Refresh) Trigger(ctx context.Context) {
	async.Dispatch(ctx, "refresh", func(ctx context.Context) error {
		err := r.RunOnce(ctx)
		if goerr.HasTag(err, types.ErrTagRunInProgress) {
			ctxlog.From(ctx).Info("Refresh dropped, a run is already in progress")
		}
		// other failures were already reported by RunOnce
		return nil
	})
}

func (r *Refresh) fail(ctx context.Context, msg string, err error) {
	errs.Handle(ctx, msg, err)

	if r.notifier == nil {
		return
	}
	if nErr := r.notifier.Notify(ctx, fmt.Sprintf("issuedigest: %s: %v", msg, err)); nErr != nil {
		ctxlog.From(ctx).Warn("Failed to send failure notification", "error", nErr)
	}
}
