package domain

import "time"

// FetchKind tells a worker what a task must do.
type FetchKind int

const (
	// FetchFull retrieves the transformed asset and writes it to the target.
	FetchFull FetchKind = iota
	// FetchVerify asks the asset service for the modification time of an asset whose
	// target already exists, and fetches only if the local copy is older.
	FetchVerify
)

func (k FetchKind) String() string {
	if k == FetchVerify {
		return "verify"
	}
	return "fetch"
}

// FetchTask is an immutable unit of work for the dispatcher.
type FetchTask struct {
	ID         string
	Kind       FetchKind
	Asset      AssetReference
	Task       string
	Parameters []RuntimeParameter
	// Target is the file path relative to the import root.
	Target string
	// Placeholder is the marker path relative to the import root.
	// Full fetches are dispatched holding it; verify tasks only claim it once they decide to fetch.
	Placeholder string
	// LocalModTime is the modification time of the existing target, used by verify tasks.
	LocalModTime time.Time
}

// LockState is the outcome of a placeholder acquisition attempt.
type LockState int

const (
	// LockAcquired means no marker existed and the caller now holds a fresh one.
	LockAcquired LockState = iota
	// LockHeldFresh means another fetch is in flight; the caller must not dispatch.
	LockHeldFresh
	// LockHeldStale means the previous holder is presumed dead; the marker was renewed for the caller.
	LockHeldStale
)

func (s LockState) String() string {
	switch s {
	case LockAcquired:
		return "acquired"
	case LockHeldFresh:
		return "held-fresh"
	case LockHeldStale:
		return "held-stale"
	default:
		return "unknown"
	}
}

// Owned reports whether the caller holds the marker after the attempt.
func (s LockState) Owned() bool {
	return s == LockAcquired || s == LockHeldStale
}

// ImportResult is what an import hands back to the caller immediately.
type ImportResult struct {
	// Name is the transformation name.
	Name string `json:"name"`
	// File is the path relative to the import root.
	File string `json:"file"`
	// URL is the path under which the file is served.
	URL string `json:"url"`
	// Pending is set when the file is not there yet and will appear asynchronously.
	Pending bool `json:"pending"`
}

// Ready reports whether the file can be served right away.
func (r ImportResult) Ready() bool {
	return !r.Pending
}

// ReadyValue renders the ready flag the way annotations carry it.
func (r ImportResult) ReadyValue() string {
	if r.Pending {
		return "no"
	}
	return "yes"
}
