package config_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/issuedigest/pkg/cli/config"
)

func TestStorage_NewStore(t *testing.T) {
	t.Run("local file by default", func(t *testing.T) {
		cfg := &config.Storage{Output: filepath.Join(t.TempDir(), "index.html")}
		store, err := cfg.NewStore(context.Background())
		gt.NoError(t, err)

		gt.NoError(t, store.Save(context.Background(), []byte("<html></html>")))
		body, _, ok, err := store.Load(context.Background())
		gt.NoError(t, err)
		gt.True(t, ok)
		gt.Equal(t, string(body), "<html></html>")
	})

	t.Run("bucket without object", func(t *testing.T) {
		cfg := &config.Storage{GCSBucket: "my-bucket"}
		_, err := cfg.NewStore(context.Background())
		gt.Error(t, err)
	})
}

func TestGitHub_NewClient(t *testing.T) {
	cfg := &config.GitHub{
		Token:   "test-token",
		APIURL:  "https://ghe.example.com/api/v3",
		Timeout: 5 * time.Second,
		PerPage: 50,
	}
	client, err := cfg.NewClient()
	gt.NoError(t, err)
	gt.Value(t, client).NotNil()
}

func TestSentry_Configure(t *testing.T) {
	cfg := &config.Sentry{}
	flush, err := cfg.Configure()
	gt.NoError(t, err)
	flush()
}

func TestSlack_NewNotifier(t *testing.T) {
	cfg := &config.Slack{}
	gt.NoError(t, cfg.NewNotifier().Notify(context.Background(), "run failed"))
}
