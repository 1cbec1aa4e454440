package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces/mocks"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
	"github.com/m-mizutani/issuedigest/pkg/usecase"
)

func okPublisher() *mocks.PublishUseCaseMock {
	return &mocks.PublishUseCaseMock{
		PublishFunc: func(ctx context.Context, digest *model.Digest) (*model.PublishedDocument, error) {
			return &model.PublishedDocument{GeneratedAt: digest.GeneratedAt, Body: []byte(digest.Markdown())}, nil
		},
	}
}

func TestRefresh_RunOnce(t *testing.T) {
	t.Run("publishes pipeline digest", func(t *testing.T) {
		digest := model.NewDigest("Latest Issues", fixedNow)
		pipeline := &mocks.PipelineUseCaseMock{
			RunFunc: func(ctx context.Context) (*model.Digest, error) {
				return digest, nil
			},
		}
		publisher := okPublisher()
		r := usecase.NewRefresh(pipeline, publisher)

		gt.NoError(t, r.RunOnce(context.Background()))
		gt.A(t, publisher.PublishCalls()).Length(1)
		gt.Equal(t, publisher.PublishCalls()[0].Digest, digest)
	})

	t.Run("overlapping run is dropped", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		pipeline := &mocks.PipelineUseCaseMock{
			RunFunc: func(ctx context.Context) (*model.Digest, error) {
				close(started)
				<-release
				return model.NewDigest("t", fixedNow), nil
			},
		}
		r := usecase.NewRefresh(pipeline, okPublisher())

		done := make(chan error, 1)
		go func() { done <- r.RunOnce(context.Background()) }()
		<-started

		err := r.RunOnce(context.Background())
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagRunInProgress))

		close(release)
		gt.NoError(t, <-done)
		gt.A(t, pipeline.RunCalls()).Length(1)
	})

	t.Run("pipeline failure is notified and not published", func(t *testing.T) {
		pipeline := &mocks.PipelineUseCaseMock{
			RunFunc: func(ctx context.Context) (*model.Digest, error) {
				return nil, goerr.New("source list missing", goerr.T(types.ErrTagSourceListUnavailable))
			},
		}
		publisher := okPublisher()
		notifier := &mocks.NotifierMock{
			NotifyFunc: func(ctx context.Context, message string) error { return nil },
		}
		r := usecase.NewRefresh(pipeline, publisher, usecase.WithNotifier(notifier))

		err := r.RunOnce(context.Background())
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagSourceListUnavailable))
		gt.A(t, publisher.PublishCalls()).Length(0)
		gt.A(t, notifier.NotifyCalls()).Length(1)
		gt.S(t, notifier.NotifyCalls()[0].Message).Contains("source list missing")
	})

	t.Run("publish failure is returned", func(t *testing.T) {
		pipeline := &mocks.PipelineUseCaseMock{
			RunFunc: func(ctx context.Context) (*model.Digest, error) {
				return model.NewDigest("t", fixedNow), nil
			},
		}
		publisher := &mocks.PublishUseCaseMock{
			PublishFunc: func(ctx context.Context, digest *model.Digest) (*model.PublishedDocument, error) {
				return nil, goerr.New("disk full", goerr.T(types.ErrTagPublish))
			},
		}
		notifier := &mocks.NotifierMock{
			NotifyFunc: func(ctx context.Context, message string) error {
				return errors.New("slack down")
			},
		}
		r := usecase.NewRefresh(pipeline, publisher, usecase.WithNotifier(notifier))

		err := r.RunOnce(context.Background())
		gt.True(t, goerr.HasTag(err, types.ErrTagPublish))
		gt.A(t, notifier.NotifyCalls()).Length(1)
	})

	t.Run("runs after a failure", func(t *testing.T) {
		var calls atomic.Int32
		pipeline := &mocks.PipelineUseCaseMock{
			RunFunc: func(ctx context.Context) (*model.Digest, error) {
				if calls.Add(1) == 1 {
					return nil, errors.New("boom")
				}
				return model.NewDigest("t", fixedNow), nil
			},
		}
		r := usecase.NewRefresh(pipeline, okPublisher())

		gt.Error(t, r.RunOnce(context.Background()))
		gt.NoError(t, r.RunOnce(context.Background()))
	})
}

func TestRefresh_Trigger(t *testing.T) {
	ran := make(chan struct{}, 1)
	pipeline := &mocks.PipelineUseCaseMock{
		RunFunc: func(ctx context.Context) (*model.Digest, error) {
			ran <- struct{}{}
			return model.NewDigest("t", fixedNow), nil
		},
	}
	r := usecase.NewRefresh(pipeline, okPublisher())

	ctx, cancel := context.WithCancel(context.Background())
	r.Trigger(ctx)
	cancel()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("triggered run did not start")
	}
}
