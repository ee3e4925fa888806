package ports

import (
	"io"
	"io/fs"

	"go.trai.ch/assetimport/internal/core/domain"
)

// Storage is the local directory tree holding imported files.
//
//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
type Storage interface {
	// Stat describes the file at rel. The boolean is false when the file does not exist.
	Stat(rel string) (fs.FileInfo, bool, error)

	// Glob returns the names in dir that start with base followed by a dot.
	Glob(dir, base string) ([]string, error)

	// Write streams r to rel. Readers never observe a partially written file.
	Write(rel string, r io.Reader) (int64, error)

	// URL returns the path under which rel is served.
	URL(rel string) string

	// Status reports whether rel is ready to serve, being fetched, or missing.
	Status(rel string) (domain.FileStatus, error)

	// Path returns the absolute path of rel.
	Path(rel string) (string, error)
}
