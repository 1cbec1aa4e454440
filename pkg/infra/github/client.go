package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
)

type client struct {
	githubClient *github.Client
	timeout      time.Duration
	perPage      int
}

// Option is a functional option for the GitHub client
type Option func(*config)

type config struct {
	baseURL    string
	timeout    time.Duration
	perPage    int
	httpClient *http.Client
}

// WithBaseURL sets the REST API endpoint, e.g. for GitHub Enterprise Server or tests
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithTimeout bounds every API call. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// WithPerPage sets the page size of list calls. Only the first page is read.
func WithPerPage(perPage int) Option {
	return func(c *config) {
		c.perPage = perPage
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

// NewClient creates a GitHub client authenticated by a bearer token. An empty
// token sends unauthenticated requests.
func NewClient(token types.GitHubToken, opts ...Option) (interfaces.GitHubClient, error) {
	cfg := &config{
		timeout: 30 * time.Second,
		perPage: types.DefaultPerPage,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	githubClient := github.NewClient(cfg.httpClient)
	if token != "" {
		githubClient = githubClient.WithAuthToken(token.String())
	}

	if cfg.baseURL != "" {
		baseURL := cfg.baseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse GitHub API base URL", goerr.V("base_url", cfg.baseURL))
		}
		githubClient.BaseURL = u
	}

	return &client{
		githubClient: githubClient,
		timeout:      cfg.timeout,
		perPage:      cfg.perPage,
	}, nil
}

func (c *client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// ListIssues lists open issues of a repository. Pull requests returned by the
// issues endpoint are dropped.
func (c *client) ListIssues(ctx context.Context, ref model.RepoRef, query model.IssueQuery) ([]*model.Issue, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	opts := &github.IssueListByRepoOptions{
		State:       "open",
		Since:       query.Since,
		ListOptions: github.ListOptions{PerPage: c.perPage},
	}
	if query.Label != "" {
		opts.Labels = []string{query.Label}
	}
	if query.UnassignedOnly {
		opts.Assignee = "none"
	}

	issues, resp, err := c.githubClient.Issues.ListByRepo(ctx, ref.Org, ref.Name, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issues",
			goerr.V("repo", ref.FullName()),
			goerr.V("label", query.Label),
			goerr.V("status", statusCode(resp)),
			goerr.T(types.ErrTagIssueFetch),
		)
	}

	result := make([]*model.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.IsPullRequest() {
			continue
		}
		result = append(result, &model.Issue{
			Title:     issue.GetTitle(),
			CreatedAt: issue.GetCreatedAt().Time,
			URL:       issue.GetHTMLURL(),
		})
	}

	return result, nil
}

// ListOrgRepos lists repository names of an organization, most recently pushed first
func (c *client) ListOrgRepos(ctx context.Context, org string) ([]string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	repos, resp, err := c.githubClient.Repositories.ListByOrg(ctx, org, &github.RepositoryListByOrgOptions{
		Sort:        "pushed",
		ListOptions: github.ListOptions{PerPage: c.perPage},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories of organization",
			goerr.V("org", org),
			goerr.V("status", statusCode(resp)),
			goerr.T(types.ErrTagOrgListing),
		)
	}

	names := make([]string, 0, len(repos))
	for _, repo := range repos {
		names = append(names, repo.GetName())
	}
	return names, nil
}

func statusCode(resp *github.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}
