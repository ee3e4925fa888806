package ports

import (
	"time"

	"go.trai.ch/assetimport/internal/core/domain"
)

// PlaceholderLock is the cross-process advisory lock guarding a target file.
//
//go:generate mockgen -source=placeholder.go -destination=mocks/mock_placeholder.go -package=mocks
type PlaceholderLock interface {
	// TryAcquire claims the marker at rel, a path relative to the import root.
	// A marker older than staleAfter is renewed and reported as domain.LockHeldStale.
	TryAcquire(rel string, staleAfter time.Duration) (domain.LockState, error)

	// Release removes the marker. A missing marker is not an error.
	Release(rel string) error
}
