package ports

import (
	"context"

	"go.trai.ch/assetimport/internal/core/domain"
)

// CatalogSource reads the catalog document.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type CatalogSource interface {
	// Load parses the current catalog document.
	Load(ctx context.Context) (*domain.Catalog, error)
}

// CatalogResolver answers which transformations apply where.
type CatalogResolver interface {
	// Resolve returns the bindings of a content type in a usage context.
	Resolve(ctx context.Context, contentType, usageContext string) ([]domain.SourceBinding, error)

	// ResolveForField returns the transformations bound to one field location.
	ResolveForField(ctx context.Context, contentType, usageContext, location string) ([]domain.TransformationDescriptor, error)

	// BindingForField returns the binding for one field location, if any.
	BindingForField(ctx context.Context, contentType, usageContext, location string) (domain.SourceBinding, bool, error)
}
