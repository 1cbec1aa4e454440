package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"google.golang.org/api/option"
)

type gcsStore struct {
	client *storage.Client
	bucket string
	object string
}

// NewGCS returns a DocumentStore keeping the document as a Cloud Storage
// object. An object becomes visible only when its writer is closed
// successfully, which gives Save the same all-or-nothing replacement as the
// local file store.
func NewGCS(ctx context.Context, bucket, object string, opts ...option.ClientOption) (interfaces.DocumentStore, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}

	return &gcsStore{
		client: client,
		bucket: bucket,
		object: object,
	}, nil
}

func (s *gcsStore) Save(ctx context.Context, body []byte) error {
	w := s.client.Bucket(s.bucket).Object(s.object).NewWriter(ctx)
	w.ContentType = "text/html; charset=utf-8"
	w.CacheControl = "no-cache"

	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object",
			goerr.V("bucket", s.bucket),
			goerr.V("object", s.object),
		)
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize object",
			goerr.V("bucket", s.bucket),
			goerr.V("object", s.object),
		)
	}

	return nil
}

func (s *gcsStore) Load(ctx context.Context) ([]byte, time.Time, bool, error) {
	r, err := s.client.Bucket(s.bucket).Object(s.object).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, goerr.Wrap(err, "failed to open object",
			goerr.V("bucket", s.bucket),
			goerr.V("object", s.object),
		)
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, time.Time{}, false, goerr.Wrap(err, "failed to read object",
			goerr.V("bucket", s.bucket),
			goerr.V("object", s.object),
		)
	}

	return body, r.Attrs.LastModified, true, nil
}
