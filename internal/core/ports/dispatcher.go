package ports

import (
	"context"

	"go.trai.ch/assetimport/internal/core/domain"
)

// Dispatcher runs fetch tasks in the background.
//
//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks
type Dispatcher interface {
	// Dispatch queues a task and returns immediately.
	// It only fails once the dispatcher is closed.
	Dispatch(task domain.FetchTask) error

	// Close stops accepting tasks and waits for queued ones until ctx ends.
	Close(ctx context.Context) error
}
