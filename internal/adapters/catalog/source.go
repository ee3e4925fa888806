package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CatalogSource = (*FileSource)(nil)

// FileSource loads the catalog from a YAML file.
// Unchanged file contents are not parsed again.
type FileSource struct {
	path   string
	logger ports.Logger

	mu       sync.Mutex
	lastHash uint64
	last     *domain.Catalog
}

// NewFileSource creates a FileSource reading path.
func NewFileSource(path string, logger ports.Logger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

// Path returns the catalog file location.
func (s *FileSource) Path() string {
	return s.path
}

// Load reads and parses the catalog file.
func (s *FileSource) Load(_ context.Context) (*domain.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrCatalogReadFailed, err), "path", s.path)
	}

	sum := xxhash.Sum64(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last != nil && sum == s.lastHash {
		s.logger.Debug(fmt.Sprintf("catalog %s unchanged", s.path))
		return s.last, nil
	}

	c, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", s.path)
	}

	s.last, s.lastHash = c, sum
	s.logger.Debug(fmt.Sprintf("catalog %s loaded with %d bindings", s.path, c.Len()))
	return c, nil
}
