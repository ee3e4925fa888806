// Package storage implements the local directory tree holding imported files.
package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.Storage rooted at a directory.
type Store struct {
	root      string
	urlPrefix string
}

// NewStore creates the import root if needed and returns a store serving it under urlPrefix.
func NewStore(root, urlPrefix string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStorageReadFailed, err), "root", root)
	}
	if err := os.MkdirAll(abs, domain.DirPerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStorageWriteFailed, err), "root", abs)
	}
	return &Store{
		root:      abs,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// Root returns the absolute import root.
func (s *Store) Root() string {
	return s.root
}

// Path returns the absolute path of rel, refusing paths that escape the root.
func (s *Store) Path(rel string) (string, error) {
	clean := path.Clean("/" + filepath.ToSlash(rel))
	full := filepath.Join(s.root, filepath.FromSlash(clean))
	if full != s.root && !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", zerr.With(zerr.Wrap(domain.ErrPathOutsideRoot, "invalid relative path"), "path", rel)
	}
	return full, nil
}

// Stat describes the file at rel.
func (s *Store) Stat(rel string) (fs.FileInfo, bool, error) {
	full, err := s.Path(rel)
	if err != nil {
		return nil, false, err
	}
	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(errors.Join(domain.ErrStorageReadFailed, err), "path", rel)
	}
	return info, true, nil
}

// Glob returns the regular files in dir named base followed by a dot and an extension.
func (s *Store) Glob(dir, base string) ([]string, error) {
	full, err := s.Path(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrStorageReadFailed, err), "dir", dir)
	}

	prefix := base + "."
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || len(name) == len(prefix) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Write streams r to rel through a temporary file in the same directory and renames it into place.
func (s *Store) Write(rel string, r io.Reader) (int64, error) {
	full, err := s.Path(rel)
	if err != nil {
		return 0, err
	}
	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return 0, zerr.With(errors.Join(domain.ErrStorageWriteFailed, err), "path", rel)
	}

	tmpFile, err := os.CreateTemp(dir, domain.TempFilePattern)
	if err != nil {
		return 0, zerr.With(errors.Join(domain.ErrStorageWriteFailed, err), "path", rel)
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	n, err := io.Copy(tmpFile, r)
	if err != nil {
		_ = tmpFile.Close()
		return n, zerr.With(errors.Join(domain.ErrStorageWriteFailed, err), "path", rel)
	}

	if err := tmpFile.Close(); err != nil {
		return n, zerr.With(errors.Join(domain.ErrStorageWriteFailed, err), "path", rel)
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return n, zerr.With(errors.Join(domain.ErrStorageWriteFailed, err), "path", rel)
	}

	if err := os.Rename(tmpName, full); err != nil {
		return n, zerr.With(errors.Join(domain.ErrStorageWriteFailed, err), "path", rel)
	}
	return n, nil
}

// URL returns the path under which rel is served.
func (s *Store) URL(rel string) string {
	return s.urlPrefix + "/" + strings.TrimPrefix(filepath.ToSlash(rel), "/")
}

// Status reports whether rel can be served.
//
// A file is pending while its own marker exists, while it holds at most one
// byte, or, for default-named files, while the extensionless marker exists.
func (s *Store) Status(rel string) (domain.FileStatus, error) {
	dir, name := path.Split(filepath.ToSlash(rel))
	marker := path.Join(dir, domain.PlaceholderName(name))
	defaultMarker := path.Join(dir, domain.PlaceholderName(domain.DefaultBaseName))
	defaultNamed := name == domain.DefaultBaseName || strings.HasPrefix(name, domain.DefaultBaseName+".")

	info, ok, err := s.Stat(rel)
	if err != nil {
		return "", err
	}

	switch {
	case !ok && (s.exists(marker) || defaultNamed && s.exists(defaultMarker)):
		return domain.StatusPending, nil
	case !ok:
		return domain.StatusMissing, nil
	case info.Size() <= 1:
		return domain.StatusPending, nil
	case s.exists(marker):
		return domain.StatusPending, nil
	case defaultNamed && s.exists(defaultMarker):
		return domain.StatusPending, nil
	default:
		return domain.StatusReady, nil
	}
}

// Lookup returns the absolute path of rel. With onlyIfReady it only succeeds for ready files;
// otherwise any existing file is returned.
func (s *Store) Lookup(rel string, onlyIfReady bool) (string, bool, error) {
	status, err := s.Status(rel)
	if err != nil {
		return "", false, err
	}
	switch {
	case status == domain.StatusReady:
	case !onlyIfReady && status == domain.StatusPending:
		if _, ok, _ := s.Stat(rel); !ok {
			return "", false, nil
		}
	default:
		return "", false, nil
	}
	full, err := s.Path(rel)
	if err != nil {
		return "", false, err
	}
	return full, true, nil
}

func (s *Store) exists(rel string) bool {
	_, ok, err := s.Stat(rel)
	return err == nil && ok
}
