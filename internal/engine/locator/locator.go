// Package locator resolves asset references against the remote asset service.
package locator

import (
	"context"
	"errors"

	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locator finds live assets by id, falling back to their path.
type Locator struct {
	service ports.AssetService
}

// New creates a Locator backed by service.
func New(service ports.AssetService) *Locator {
	return &Locator{service: service}
}

// Locate returns the asset ref points at. Deleted assets count as missing.
// Connectivity errors are returned as is so callers can tell them apart from a miss.
func (l *Locator) Locate(ctx context.Context, ref domain.AssetReference) (domain.RemoteAsset, error) {
	if ref.IsZero() {
		return domain.RemoteAsset{}, domain.ErrInvalidReference
	}

	if ref.ID != "" {
		asset, err := l.service.GetAssetByID(ctx, ref.ID)
		switch {
		case err == nil && !asset.Deleted:
			return asset, nil
		case err != nil && !errors.Is(err, domain.ErrAssetNotFound):
			return domain.RemoteAsset{}, err
		}
	}

	if ref.Path == "" {
		return domain.RemoteAsset{}, notFound(ref)
	}

	containerPath, name := ref.SplitPath()
	container, err := l.service.GetContainerByPath(ctx, containerPath)
	if err != nil {
		if errors.Is(err, domain.ErrContainerNotFound) || errors.Is(err, domain.ErrAssetNotFound) {
			return domain.RemoteAsset{}, notFound(ref)
		}
		return domain.RemoteAsset{}, err
	}

	asset, err := l.service.GetAssetByName(ctx, container.ID, name)
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			return domain.RemoteAsset{}, notFound(ref)
		}
		return domain.RemoteAsset{}, err
	}
	if asset.Deleted {
		return domain.RemoteAsset{}, notFound(ref)
	}
	return asset, nil
}

func notFound(ref domain.AssetReference) error {
	err := zerr.Wrap(domain.ErrAssetNotFound, "no live asset for reference")
	err = zerr.With(err, "id", ref.ID)
	return zerr.With(err, "path", ref.Path)
}
