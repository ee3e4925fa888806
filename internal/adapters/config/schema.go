package config

// File represents the structure of the assetimport.yaml configuration file.
//
// Durations and counts are kept as strings so that a malformed value can be
// reported and replaced by its default instead of failing the whole load.
type File struct {
	Service ServiceDTO `yaml:"service"`
	Catalog CatalogDTO `yaml:"catalog"`
	Import  ImportDTO  `yaml:"import"`
}

// ServiceDTO configures the connection to the asset service.
type ServiceDTO struct {
	Endpoint            string `yaml:"endpoint"`
	Domain              string `yaml:"domain"`
	Username            string `yaml:"username"`
	Password            string `yaml:"password"`
	Timeout             string `yaml:"timeout"`
	MaxConnections      string `yaml:"maxConnections"`
	UpdateCheckInterval string `yaml:"updateCheckInterval"`
}

// CatalogDTO configures where the transformation catalog lives.
type CatalogDTO struct {
	Path    string `yaml:"path"`
	Refresh string `yaml:"refresh"`
	Watch   bool   `yaml:"watch"`
}

// ImportDTO configures the local import layout.
type ImportDTO struct {
	Root                  string `yaml:"root"`
	URLPrefix             string `yaml:"urlPrefix"`
	PlaceholderStaleAfter string `yaml:"placeholderStaleAfter"`
}
