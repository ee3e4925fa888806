package domain

import "time"

// Credentials identify the importer against the asset service.
type Credentials struct {
	Endpoint string
	Domain   string
	Username string
	Password string
}

// User returns the login name, qualified with the domain when one is set.
func (c Credentials) User() string {
	if c.Domain == "" {
		return c.Username
	}
	return c.Domain + `\` + c.Username
}

// Settings is the resolved configuration of the importer.
type Settings struct {
	Credentials Credentials

	HTTPTimeout         time.Duration
	MaxConnections      int
	UpdateCheckInterval time.Duration

	CatalogPath    string
	CatalogRefresh time.Duration
	WatchCatalog   bool

	ImportRoot string
	URLPrefix  string

	// PlaceholderStaleAfter is how old a marker may grow before it is presumed abandoned.
	PlaceholderStaleAfter time.Duration
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		HTTPTimeout:           DefaultHTTPTimeout,
		MaxConnections:        DefaultMaxConnections,
		UpdateCheckInterval:   DefaultUpdateCheckInterval,
		CatalogPath:           CatalogFileName,
		CatalogRefresh:        DefaultCatalogRefresh,
		ImportRoot:            DefaultImportRoot(),
		URLPrefix:             DefaultURLPrefix,
		PlaceholderStaleAfter: DefaultUpdateCheckInterval,
	}
}
