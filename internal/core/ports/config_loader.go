package ports

import "go.trai.ch/assetimport/internal/core/domain"

// ConfigLoader defines the interface for loading the importer settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration starting at cwd and returns the resolved settings.
	// A missing configuration file is not an error; defaults are returned instead.
	Load(cwd string) (domain.Settings, error)

	// LoadFile reads the configuration at path. The file must exist.
	LoadFile(path string) (domain.Settings, error)
}
