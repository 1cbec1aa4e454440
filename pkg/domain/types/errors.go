package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagSourceListUnavailable marks a failure to read the specifier list. Fatal to the run.
	ErrTagSourceListUnavailable = goerr.NewTag("source_list_unavailable")

	// ErrTagOrgListing marks a failed wildcard expansion of one organization.
	ErrTagOrgListing = goerr.NewTag("org_listing_failure")

	// ErrTagIssueFetch marks a failed issue fetch for one repository.
	ErrTagIssueFetch = goerr.NewTag("issue_fetch_failure")

	// ErrTagInvalidSpecifier marks a specifier that is neither org/repo nor org/*.
	ErrTagInvalidSpecifier = goerr.NewTag("invalid_specifier")

	// ErrTagPublish marks a render or write failure of the published document.
	ErrTagPublish = goerr.NewTag("publish_failure")

	// ErrTagRunInProgress marks a run request dropped because another run is active.
	ErrTagRunInProgress = goerr.NewTag("run_in_progress")
)
