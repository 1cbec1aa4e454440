package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"

	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/infra/storage"
)

// Storage holds configuration of the published document store
type Storage struct {
	Output         string
	GCSBucket      string
	GCSObject      string
	GCSCredentials string
}

// Flags returns CLI flags for storage configuration
func (c *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Path of the published HTML document",
			Value:       "index.html",
			Destination: &c.Output,
			Sources:     cli.EnvVars("ISSUEDIGEST_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Cloud Storage bucket of the published document; local file is used when empty",
			Destination: &c.GCSBucket,
			Sources:     cli.EnvVars("ISSUEDIGEST_GCS_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "gcs-object",
			Usage:       "Cloud Storage object name of the published document",
			Value:       "index.html",
			Destination: &c.GCSObject,
			Sources:     cli.EnvVars("ISSUEDIGEST_GCS_OBJECT"),
		},
		&cli.StringFlag{
			Name:        "gcs-credentials",
			Usage:       "Service account key file for Cloud Storage; application default credentials when empty",
			Destination: &c.GCSCredentials,
			Sources:     cli.EnvVars("ISSUEDIGEST_GCS_CREDENTIALS"),
		},
	}
}

// NewStore creates the document store
func (c *Storage) NewStore(ctx context.Context) (interfaces.DocumentStore, error) {
	if c.GCSBucket == "" {
		return storage.NewFile(c.Output), nil
	}

	if c.GCSObject == "" {
		return nil, goerr.New("gcs-object is required with gcs-bucket")
	}

	var opts []option.ClientOption
	if c.GCSCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(c.GCSCredentials))
	}
	return storage.NewGCS(ctx, c.GCSBucket, c.GCSObject, opts...)
}
