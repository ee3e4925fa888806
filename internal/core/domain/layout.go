package domain

import (
	"path/filepath"
	"time"
)

const (
	// StateDirName is the name of the internal workspace directory.
	StateDirName = ".assetimport"

	// ImportedDirName is the name of the directory holding imported files.
	ImportedDirName = "imported"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "assetimport.yaml"

	// CatalogFileName is the default name of the transformation catalog document.
	CatalogFileName = "transformations.yaml"

	// DefaultURLPrefix is the URL path under which imported files are served.
	DefaultURLPrefix = "/assets/mb-imported"

	// PlaceholderPrefix marks in-flight fetches next to their target file.
	PlaceholderPrefix = ".placeholder."

	// TempFilePattern is the pattern for partially written downloads.
	TempFilePattern = ".download-*"

	// DefaultBaseName is the file name used when neither path nor transformation names the file.
	DefaultBaseName = "original"

	// ReadyAttribute is the annotation attribute telling consumers whether a file is available.
	ReadyAttribute = "assetReady"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Defaults for the settings surface.
const (
	DefaultHTTPTimeout         = 10 * time.Second
	DefaultMaxConnections      = 4
	DefaultUpdateCheckInterval = time.Hour
	DefaultCatalogRefresh      = time.Hour
)

// DefaultImportRoot returns the default directory for imported files.
// It joins .assetimport and imported.
func DefaultImportRoot() string {
	return filepath.Join(StateDirName, ImportedDirName)
}

// PlaceholderName returns the marker file name guarding fileName.
func PlaceholderName(fileName string) string {
	return PlaceholderPrefix + fileName
}
