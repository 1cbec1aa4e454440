package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
)

// Wildcard is the repository part of a specifier that selects every repository of an organization
const Wildcard = "*"

// SourceSpecifier is a parsed "org/repo" or "org/*" entry of the source list
type SourceSpecifier struct {
	Org  string // Organization or user login
	Repo string // Repository name, or Wildcard
}

// ParseSpecifier parses a raw source list entry.
func ParseSpecifier(raw string) (SourceSpecifier, error) {
	org, repo, ok := strings.Cut(raw, "/")
	if !ok || org == "" || repo == "" || strings.Contains(repo, "/") {
		return SourceSpecifier{}, goerr.New("invalid source specifier",
			goerr.V("specifier", raw),
			goerr.T(types.ErrTagInvalidSpecifier),
		)
	}

	return SourceSpecifier{Org: org, Repo: repo}, nil
}

// IsWildcard reports whether the specifier selects all repositories of the organization
func (s SourceSpecifier) IsWildcard() bool {
	return s.Repo == Wildcard
}

func (s SourceSpecifier) String() string {
	return s.Org + "/" + s.Repo
}

// RepoRef is a concrete repository, the unit of issue collection
type RepoRef struct {
	Org  string
	Name string
}

// FullName returns "org/name"
func (r RepoRef) FullName() string {
	return r.Org + "/" + r.Name
}

// UniqueSpecifiers removes repeated entries by exact string equality. The
// first occurrence keeps its position.
func UniqueSpecifiers(raws []string) []string {
	seen := make(map[string]struct{}, len(raws))
	unique := make([]string, 0, len(raws))
	for _, raw := range raws {
		if _, ok := seen[raw]; ok {
			continue
		}
		seen[raw] = struct{}{}
		unique = append(unique, raw)
	}
	return unique
}
