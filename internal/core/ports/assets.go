// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/assetimport/internal/core/domain"
)

// AssetService is the remote store holding the original assets.
//
//go:generate mockgen -source=assets.go -destination=mocks/mock_assets.go -package=mocks
type AssetService interface {
	// Ping checks that the service is reachable with the configured credentials.
	Ping(ctx context.Context) error

	// GetAssetByID returns the asset with the given id.
	// It returns domain.ErrAssetNotFound if no such asset exists.
	GetAssetByID(ctx context.Context, id string) (domain.RemoteAsset, error)

	// GetContainerByPath returns the container at a hierarchical path.
	// It returns domain.ErrContainerNotFound if no such container exists.
	GetContainerByPath(ctx context.Context, path string) (domain.Container, error)

	// GetAssetByName returns the asset with the given name inside a container.
	GetAssetByName(ctx context.Context, containerID, name string) (domain.RemoteAsset, error)

	// FetchTransformed streams the asset after applying a task.
	// The no-op task streams the asset unmodified. The caller must close the reader.
	FetchTransformed(
		ctx context.Context,
		assetID, task string,
		params []domain.TypedParameter,
	) (io.ReadCloser, error)
}

// AssetLocator resolves a reference to a live remote asset.
type AssetLocator interface {
	// Locate tries the reference id first and falls back to its path.
	// Deleted assets count as missing.
	Locate(ctx context.Context, ref domain.AssetReference) (domain.RemoteAsset, error)
}
