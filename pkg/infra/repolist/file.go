package repolist

import (
	"context"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
)

type file struct {
	path string
}

// NewFile returns a SpecifierSource reading a newline-delimited list of
// "org/repo" or "org/*" entries. The file is read on every call so edits are
// picked up by the next run.
func NewFile(path string) interfaces.SpecifierSource {
	return &file{path: path}
}

// Read returns the entries in file order. Surrounding whitespace is trimmed;
// blank lines and lines starting with '#' are skipped.
func (f *file) Read(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read source list",
			goerr.V("path", f.path),
			goerr.T(types.ErrTagSourceListUnavailable),
		)
	}

	return Parse(data), nil
}

// Parse splits raw source list content into entries. Lines have no length
// limit.
func Parse(data []byte) []string {
	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}
