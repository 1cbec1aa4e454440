package model

// CollectionResult is the outcome of one issue fetch. Build it with Success or
// Failure; a fetch either fully succeeds or fully fails.
type CollectionResult struct {
	Issues []*Issue
	Err    error
}

// Success returns a successful result. issues may be empty.
func Success(issues []*Issue) *CollectionResult {
	if issues == nil {
		issues = []*Issue{}
	}
	return &CollectionResult{Issues: issues}
}

// Failure returns a failed result carrying the reason
func Failure(err error) *CollectionResult {
	return &CollectionResult{Err: err}
}

// Failed reports whether the fetch failed
func (r *CollectionResult) Failed() bool {
	return r.Err != nil
}
