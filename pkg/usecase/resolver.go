package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
)

// Resolver expands source specifiers into concrete repositories
type Resolver struct {
	githubClient interfaces.GitHubClient
}

// NewResolver creates a new Resolver
func NewResolver(githubClient interfaces.GitHubClient) *Resolver {
	return &Resolver{githubClient: githubClient}
}

// Resolve returns the repositories selected by spec. A plain org/repo
// specifier resolves without calling GitHub. A wildcard lists the
// organization's repositories, most recently pushed first; on failure the
// error is tagged ErrTagOrgListing and no repositories are returned.
func (r *Resolver) Resolve(ctx context.Context, spec model.SourceSpecifier) ([]model.RepoRef, error) {
	if !spec.IsWildcard() {
		return []model.RepoRef{{Org: spec.Org, Name: spec.Repo}}, nil
	}

	names, err := r.githubClient.ListOrgRepos(ctx, spec.Org)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve wildcard specifier",
			goerr.V("specifier", spec.String()),
			goerr.T(types.ErrTagOrgListing),
		)
	}

	refs := make([]model.RepoRef, 0, len(names))
	for _, name := range names {
		refs = append(refs, model.RepoRef{Org: spec.Org, Name: name})
	}
	return refs, nil
}
