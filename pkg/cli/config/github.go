package config

import (
	"time"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
	githubinfra "github.com/m-mizutani/issuedigest/pkg/infra/github"
)

// GitHub holds GitHub configuration
type GitHub struct {
	Token         string `masq:"secret"`
	APIURL        string
	Timeout       time.Duration
	PerPage       int
	WebhookSecret string `masq:"secret"`
}

// Flags returns CLI flags for GitHub API access
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API bearer token (unauthenticated when empty)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("ISSUEDIGEST_GITHUB_TOKEN", "GH_ACCESS_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL, for GitHub Enterprise Server",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("ISSUEDIGEST_GITHUB_API_URL"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of each GitHub API call",
			Value:       30 * time.Second,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("ISSUEDIGEST_GITHUB_TIMEOUT"),
		},
		&cli.IntFlag{
			Name:        "github-per-page",
			Usage:       "Page size of list calls; only the first page is read",
			Value:       types.DefaultPerPage,
			Destination: &c.PerPage,
			Sources:     cli.EnvVars("ISSUEDIGEST_GITHUB_PER_PAGE"),
		},
	}
}

// WebhookFlags returns CLI flags for the webhook endpoint of the server
func (c *GitHub) WebhookFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret; enables POST /hooks/github when set",
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars("ISSUEDIGEST_GITHUB_WEBHOOK_SECRET"),
		},
	}
}

// NewClient creates the GitHub API client
func (c *GitHub) NewClient() (interfaces.GitHubClient, error) {
	var opts []githubinfra.Option
	if c.APIURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.APIURL))
	}
	if c.PerPage > 0 {
		opts = append(opts, githubinfra.WithPerPage(c.PerPage))
	}
	opts = append(opts, githubinfra.WithTimeout(c.Timeout))

	return githubinfra.NewClient(types.GitHubToken(c.Token), opts...)
}
