package domain

import "go.trai.ch/zerr"

var (
	// ErrConnection is returned when the remote asset service cannot be reached.
	ErrConnection = zerr.New("cannot connect to asset service")

	// ErrAssetNotFound is returned when neither the asset id nor the asset path resolve to a live asset.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrContainerNotFound is returned when a container path does not exist on the asset service.
	ErrContainerNotFound = zerr.New("container not found")

	// ErrInvalidReference is returned when an asset reference carries neither an id nor a path.
	ErrInvalidReference = zerr.New("asset reference has neither id nor path")

	// ErrCatalogUnavailable is returned when the catalog cannot be loaded and no previous version exists.
	ErrCatalogUnavailable = zerr.New("transformation catalog unavailable")

	// ErrCatalogReadFailed is returned when the catalog document cannot be read.
	ErrCatalogReadFailed = zerr.New("failed to read catalog document")

	// ErrCatalogParseFailed is returned when the catalog document cannot be parsed.
	ErrCatalogParseFailed = zerr.New("failed to parse catalog document")

	// ErrInvalidCatalogEntry is returned when a catalog entry is missing a required field.
	ErrInvalidCatalogEntry = zerr.New("invalid catalog entry")

	// ErrInconsistentLocalCache is returned when several files match a default base name.
	ErrInconsistentLocalCache = zerr.New("multiple local files match the default file name")

	// ErrMissingExtension is returned when the remote asset name carries no extension.
	ErrMissingExtension = zerr.New("asset name has no extension")

	// ErrFetchFailed is returned when a dispatched fetch cannot complete.
	ErrFetchFailed = zerr.New("asset fetch failed")

	// ErrRemoteRequestFailed is returned when the asset service answers with an unexpected status.
	ErrRemoteRequestFailed = zerr.New("asset service request failed")

	// ErrRemoteDecodeFailed is returned when an asset service response cannot be decoded.
	ErrRemoteDecodeFailed = zerr.New("failed to decode asset service response")

	// ErrPlaceholderCreateFailed is returned when a placeholder marker cannot be created.
	ErrPlaceholderCreateFailed = zerr.New("failed to create placeholder")

	// ErrPlaceholderReleaseFailed is returned when a placeholder marker cannot be removed.
	ErrPlaceholderReleaseFailed = zerr.New("failed to release placeholder")

	// ErrStorageWriteFailed is returned when an imported file cannot be written.
	ErrStorageWriteFailed = zerr.New("failed to write imported file")

	// ErrStorageReadFailed is returned when the local storage cannot be inspected.
	ErrStorageReadFailed = zerr.New("failed to inspect local storage")

	// ErrPathOutsideRoot is returned when a relative path escapes the import root.
	ErrPathOutsideRoot = zerr.New("path is outside the import root")

	// ErrUnknownParameter is returned when a runtime parameter name is not recognized.
	ErrUnknownParameter = zerr.New("unknown runtime parameter")

	// ErrInvalidParameterValue is returned when a runtime parameter value cannot be converted.
	ErrInvalidParameterValue = zerr.New("invalid runtime parameter value")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingEndpoint is returned when no asset service endpoint is configured.
	ErrMissingEndpoint = zerr.New("asset service endpoint is not configured")

	// ErrContentReadFailed is returned when a content document cannot be read.
	ErrContentReadFailed = zerr.New("failed to read content document")

	// ErrContentParseFailed is returned when a content document cannot be parsed.
	ErrContentParseFailed = zerr.New("failed to parse content document")

	// ErrContentWriteFailed is returned when an annotated content document cannot be written.
	ErrContentWriteFailed = zerr.New("failed to write content document")

	// ErrDispatcherClosed is returned when work is submitted after the dispatcher shut down.
	ErrDispatcherClosed = zerr.New("dispatcher is closed")

	// ErrWatcherFailed is returned when the catalog watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch catalog document")

	// ErrFilesNotReady is returned by status when some files cannot be served yet.
	ErrFilesNotReady = zerr.New("some files are not ready")
)
