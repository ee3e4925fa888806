package domain

import "strings"

// FetchOutcome is the terminal state of a dispatched task.
type FetchOutcome string

const (
	// OutcomeFetched means a new file was written to the target.
	OutcomeFetched FetchOutcome = "fetched"
	// OutcomeCurrent means a verify task found the local file up to date.
	OutcomeCurrent FetchOutcome = "current"
	// OutcomeSkipped means the task gave way to a fetch already in flight.
	OutcomeSkipped FetchOutcome = "skipped"
	// OutcomeFailed means the task ended with an error and wrote nothing.
	OutcomeFailed FetchOutcome = "failed"
)

// ParseFetchOutcome converts a string to a FetchOutcome, defaulting to failed if unknown.
func ParseFetchOutcome(s string) FetchOutcome {
	switch FetchOutcome(strings.ToLower(s)) {
	case OutcomeFetched:
		return OutcomeFetched
	case OutcomeCurrent:
		return OutcomeCurrent
	case OutcomeSkipped:
		return OutcomeSkipped
	default:
		return OutcomeFailed
	}
}

// FileStatus describes an imported file as seen by a reader of the import root.
type FileStatus string

const (
	// StatusReady means the file exists and no fetch is in flight for it.
	StatusReady FileStatus = "ready"
	// StatusPending means a fetch is in flight.
	StatusPending FileStatus = "pending"
	// StatusMissing means the file does not exist and nothing is fetching it.
	StatusMissing FileStatus = "missing"
)
