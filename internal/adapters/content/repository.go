package content

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContentRepository = (*Repository)(nil)

// errForeignDocument is returned when Save is handed a document this repository did not open.
var errForeignDocument = errors.New("document was not opened by the content repository")

// Repository stores content records as YAML files.
type Repository struct{}

// NewRepository creates a new Repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Open reads the record at path.
func (r *Repository) Open(path string) (ports.ContentDocument, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrContentReadFailed, err), "path", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrContentParseFailed, err), "path", path)
	}
	return doc, nil
}

// Save writes doc to path atomically.
func (r *Repository) Save(path string, doc ports.ContentDocument) error {
	d, ok := doc.(*Document)
	if !ok {
		return zerr.With(errors.Join(domain.ErrContentWriteFailed, errForeignDocument), "path", path)
	}

	data, err := d.Marshal()
	if err != nil {
		return zerr.With(errors.Join(domain.ErrContentWriteFailed, err), "path", path)
	}

	if err := atomicWriteFile(path, data); err != nil {
		return zerr.With(errors.Join(domain.ErrContentWriteFailed, err), "path", path)
	}
	return nil
}

func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".content-*.yaml")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
