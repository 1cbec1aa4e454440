package model

import "time"

// Issue is an open issue as reported by GitHub
type Issue struct {
	Title     string
	CreatedAt time.Time
	URL       string // html_url
}

// IssueQuery holds the filters of one issue fetch. Only open issues are requested.
type IssueQuery struct {
	Label          string
	Since          time.Time
	UnassignedOnly bool // assignee=none
}

// BountyMode controls how the bounty source is fetched
type BountyMode string

const (
	// BountyModeAdditional fetches bounty issues and then the standard query
	BountyModeAdditional BountyMode = "additional"
	// BountyModeInstead fetches bounty issues only
	BountyModeInstead BountyMode = "instead"
)

// Valid reports whether m is a known mode
func (m BountyMode) Valid() bool {
	return m == BountyModeAdditional || m == BountyModeInstead
}
