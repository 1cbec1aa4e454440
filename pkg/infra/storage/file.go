package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
)

type fileStore struct {
	path string
}

// NewFile returns a DocumentStore keeping the document at path. Save writes a
// temporary file next to path and renames it over the target, so readers of
// the file never see a partial document.
func NewFile(path string) interfaces.DocumentStore {
	return &fileStore{path: path}
}

func (s *fileStore) Save(ctx context.Context, body []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary file", goerr.V("dir", dir))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to write temporary file", goerr.V("path", tmpName))
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to sync temporary file", goerr.V("path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to close temporary file", goerr.V("path", tmpName))
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to set file permissions", goerr.V("path", tmpName))
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to replace document", goerr.V("path", s.path))
	}

	return nil
}

func (s *fileStore) Load(ctx context.Context) ([]byte, time.Time, bool, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, goerr.Wrap(err, "failed to stat document", goerr.V("path", s.path))
	}

	body, err := os.ReadFile(s.path)
	if err != nil {
		return nil, time.Time{}, false, goerr.Wrap(err, "failed to read document", goerr.V("path", s.path))
	}

	return body, info.ModTime(), true, nil
}
