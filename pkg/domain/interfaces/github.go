package interfaces

import (
	"context"

	"github.com/m-mizutani/issuedigest/pkg/domain/model"
)

//go:generate moq -out mocks/github_mock.go -pkg mocks . GitHubClient

// GitHubClient defines the read-only operations used against the GitHub API
type GitHubClient interface {
	// ListIssues returns open issues of ref matching query, in upstream order
	ListIssues(ctx context.Context, ref model.RepoRef, query model.IssueQuery) ([]*model.Issue, error)

	// ListOrgRepos returns repository names of org, most recently pushed first
	ListOrgRepos(ctx context.Context, org string) ([]string, error)
}
