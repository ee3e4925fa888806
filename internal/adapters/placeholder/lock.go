// Package placeholder implements the filesystem advisory lock guarding in-flight fetches.
package placeholder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/zerr"
)

// marker is the content of a placeholder file.
var marker = []byte(".")

// Lock implements ports.PlaceholderLock with marker files under a root directory.
//
// Checking for a marker and creating it are separate steps across processes:
// two processes can both find no marker and both fetch. Within one process the
// importer coalesces callers before reaching the lock.
type Lock struct {
	root string
}

// New creates a Lock for markers below root.
func New(root string) *Lock {
	return &Lock{root: root}
}

// TryAcquire claims the marker at rel.
func (l *Lock) TryAcquire(rel string, staleAfter time.Duration) (domain.LockState, error) {
	path := filepath.Join(l.root, filepath.FromSlash(rel))

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if time.Since(info.ModTime()) <= staleAfter {
			return domain.LockHeldFresh, nil
		}
		if err := renew(path); err != nil {
			return 0, zerr.With(errors.Join(domain.ErrPlaceholderCreateFailed, err), "path", rel)
		}
		return domain.LockHeldStale, nil
	case !errors.Is(err, fs.ErrNotExist):
		return 0, zerr.With(errors.Join(domain.ErrPlaceholderCreateFailed, err), "path", rel)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return 0, zerr.With(errors.Join(domain.ErrPlaceholderCreateFailed, err), "path", rel)
	}

	//nolint:gosec // Path is built from the import root and a resolved target
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return domain.LockHeldFresh, nil
		}
		return 0, zerr.With(errors.Join(domain.ErrPlaceholderCreateFailed, err), "path", rel)
	}
	_, werr := f.Write(marker)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(path)
		return 0, zerr.With(errors.Join(domain.ErrPlaceholderCreateFailed, err), "path", rel)
	}
	return domain.LockAcquired, nil
}

// Release removes the marker at rel.
func (l *Lock) Release(rel string) error {
	path := filepath.Join(l.root, filepath.FromSlash(rel))
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(errors.Join(domain.ErrPlaceholderReleaseFailed, err), "path", rel)
	}
	return nil
}

// Exists reports whether a marker is present at rel, fresh or not.
func (l *Lock) Exists(rel string) bool {
	_, err := os.Stat(filepath.Join(l.root, filepath.FromSlash(rel)))
	return err == nil
}

func renew(path string) error {
	if err := os.WriteFile(path, marker, domain.FilePerm); err != nil {
		return err
	}
	now := time.Now()
	return os.Chtimes(path, now, now)
}
