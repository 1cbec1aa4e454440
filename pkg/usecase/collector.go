package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
)

// Collector fetches the issues of one repository
type Collector struct {
	githubClient interfaces.GitHubClient
}

// NewCollector creates a new Collector
func NewCollector(githubClient interfaces.GitHubClient) *Collector {
	return &Collector{githubClient: githubClient}
}

// Collect fetches issues of ref matching query. It never returns a partial
// result: any error makes the whole fetch a Failure, which the caller renders
// as a notice without retrying.
func (c *Collector) Collect(ctx context.Context, ref model.RepoRef, query model.IssueQuery) *model.CollectionResult {
	logger := ctxlog.From(ctx)

	issues, err := c.githubClient.ListIssues(ctx, ref, query)
	if err != nil {
		err = goerr.Wrap(err, "failed to collect issues",
			goerr.V("repo", ref.FullName()),
			goerr.V("label", query.Label),
			goerr.T(types.ErrTagIssueFetch),
		)
		logger.Warn("Issue fetch failed",
			"repo", ref.FullName(),
			"label", query.Label,
			"error", err,
		)
		return model.Failure(err)
	}

	logger.Debug("Collected issues",
		"repo", ref.FullName(),
		"label", query.Label,
		"count", len(issues),
	)
	return model.Success(issues)
}

// StandardQuery is the generic good-first-issue query: only unassigned issues
func StandardQuery(label string, since time.Time) model.IssueQuery {
	return model.IssueQuery{
		Label:          label,
		Since:          since,
		UnassignedOnly: true,
	}
}

// BountyQuery is the bounty source query. Bounty issues are listed regardless
// of assignment.
func BountyQuery(label string, since time.Time) model.IssueQuery {
	return model.IssueQuery{
		Label: label,
		Since: since,
	}
}
