// Package catalog keeps the transformation catalog in memory and refreshes it periodically.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/zerr"
)

type snapshot struct {
	catalog  *domain.Catalog
	loadedAt time.Time
}

// Store serves catalog lookups from an atomically swapped snapshot.
//
// The first lookup blocks until a catalog is loaded. Later refreshes run on the
// caller that wins the reload lock; everyone else keeps reading the previous
// snapshot until the new one is installed.
type Store struct {
	source   ports.CatalogSource
	logger   ports.Logger
	interval time.Duration

	current atomic.Pointer[snapshot]
	loadMu  sync.Mutex
	forced  atomic.Bool
	loads   atomic.Int64
}

// NewStore creates a store reloading from source when interval has elapsed.
func NewStore(source ports.CatalogSource, logger ports.Logger, interval time.Duration) *Store {
	return &Store{
		source:   source,
		logger:   logger,
		interval: interval,
	}
}

// Catalog returns the catalog in effect, loading or refreshing it when due.
func (s *Store) Catalog(ctx context.Context) (*domain.Catalog, error) {
	snap := s.current.Load()
	if snap == nil {
		return s.initialLoad(ctx)
	}
	if !s.due(snap) {
		return snap.catalog, nil
	}

	if s.loadMu.TryLock() {
		defer s.loadMu.Unlock()
		if s.current.Load() == snap {
			s.refresh(ctx, snap)
		}
	}
	return s.current.Load().catalog, nil
}

// Invalidate makes the next lookup reload the catalog regardless of its age.
func (s *Store) Invalidate() {
	s.forced.Store(true)
}

// Loads returns how many times the source was read successfully.
func (s *Store) Loads() int64 {
	return s.loads.Load()
}

// LoadedAt returns when the catalog in effect was loaded.
func (s *Store) LoadedAt() (time.Time, bool) {
	snap := s.current.Load()
	if snap == nil {
		return time.Time{}, false
	}
	return snap.loadedAt, true
}

// Resolve returns the bindings of a content type in a usage context.
func (s *Store) Resolve(ctx context.Context, contentType, usageContext string) ([]domain.SourceBinding, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	bindings := c.Resolve(contentType, usageContext)
	if len(bindings) == 0 {
		s.logger.Info(fmt.Sprintf("no transformation configured for %s in context %s", contentType, usageContext))
	}
	return bindings, nil
}

// ResolveForField returns the transformations bound to one field location.
func (s *Store) ResolveForField(
	ctx context.Context,
	contentType, usageContext, location string,
) ([]domain.TransformationDescriptor, error) {
	binding, ok, err := s.BindingForField(ctx, contentType, usageContext, location)
	if err != nil || !ok {
		return nil, err
	}
	return binding.Transformations, nil
}

// BindingForField returns the binding for one field location.
func (s *Store) BindingForField(
	ctx context.Context,
	contentType, usageContext, location string,
) (domain.SourceBinding, bool, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return domain.SourceBinding{}, false, err
	}
	binding, ok := c.BindingForField(contentType, usageContext, location)
	if !ok || len(binding.Transformations) == 0 {
		s.logger.Info(fmt.Sprintf("no transformation configured for %s in context %s at %s",
			contentType, usageContext, location))
		return domain.SourceBinding{}, false, nil
	}
	return binding, true, nil
}

func (s *Store) due(snap *snapshot) bool {
	return s.forced.Load() || time.Since(snap.loadedAt) > s.interval
}

func (s *Store) initialLoad(ctx context.Context) (*domain.Catalog, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if snap := s.current.Load(); snap != nil {
		return snap.catalog, nil
	}

	c, err := s.source.Load(ctx)
	if err != nil {
		return nil, errors.Join(domain.ErrCatalogUnavailable, err)
	}
	s.install(c)
	return c, nil
}

// refresh replaces prev. On failure prev stays in effect and the next attempt
// waits for another interval.
func (s *Store) refresh(ctx context.Context, prev *snapshot) {
	c, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error(zerr.Wrap(err, "catalog refresh failed, keeping previous catalog"))
		s.forced.Store(false)
		s.current.Store(&snapshot{catalog: prev.catalog, loadedAt: time.Now()})
		return
	}
	s.install(c)
}

func (s *Store) install(c *domain.Catalog) {
	s.forced.Store(false)
	s.current.Store(&snapshot{catalog: c, loadedAt: time.Now()})
	s.loads.Add(1)
}
