package types

// GitHubToken is an opaque bearer credential for the GitHub API. Values of
// this type are redacted from log output.
type GitHubToken string

func (t GitHubToken) String() string {
	return string(t)
}
