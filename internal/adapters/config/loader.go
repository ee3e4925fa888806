// Package config provides the configuration loader for assetimport.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfig names an explicit configuration file, overriding discovery.
	EnvConfig = "ASSETIMPORT_CONFIG"
	// EnvPassword overrides the service password from the configuration file.
	EnvPassword = "ASSETIMPORT_PASSWORD"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	Getenv func(string) string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Getenv: os.Getenv}
}

// Load discovers assetimport.yaml by walking up from cwd.
// Without a configuration file the defaults are returned, resolved against cwd.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	if explicit := l.getenv(EnvConfig); explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(cwd, explicit)
		}
		return l.LoadFile(explicit)
	}

	configPath, ok := findConfiguration(cwd)
	if !ok {
		l.Logger.Info(fmt.Sprintf("no %s found, using defaults", domain.ConfigFileName))
		settings := domain.DefaultSettings()
		l.applyEnv(&settings)
		resolvePaths(&settings, cwd)
		return settings, nil
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the configuration at configPath.
// Relative paths inside the file are resolved against its directory.
func (l *Loader) LoadFile(configPath string) (domain.Settings, error) {
	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Settings{}, err
	}

	settings := l.toSettings(&file)
	l.applyEnv(&settings)
	resolvePaths(&settings, filepath.Dir(configPath))
	return settings, nil
}

func (l *Loader) toSettings(file *File) domain.Settings {
	settings := domain.DefaultSettings()

	settings.Credentials = domain.Credentials{
		Endpoint: strings.TrimRight(file.Service.Endpoint, "/"),
		Domain:   file.Service.Domain,
		Username: file.Service.Username,
		Password: file.Service.Password,
	}
	settings.HTTPTimeout = l.duration("service.timeout", file.Service.Timeout, settings.HTTPTimeout)
	settings.MaxConnections = l.count("service.maxConnections", file.Service.MaxConnections, settings.MaxConnections)
	settings.UpdateCheckInterval = l.duration(
		"service.updateCheckInterval", file.Service.UpdateCheckInterval, settings.UpdateCheckInterval,
	)

	if file.Catalog.Path != "" {
		settings.CatalogPath = file.Catalog.Path
	}
	settings.CatalogRefresh = l.duration("catalog.refresh", file.Catalog.Refresh, settings.CatalogRefresh)
	settings.WatchCatalog = file.Catalog.Watch

	if file.Import.Root != "" {
		settings.ImportRoot = file.Import.Root
	}
	if file.Import.URLPrefix != "" {
		settings.URLPrefix = "/" + strings.Trim(file.Import.URLPrefix, "/")
	}

	// Unless configured, markers go stale after one update-check interval.
	settings.PlaceholderStaleAfter = l.duration(
		"import.placeholderStaleAfter", file.Import.PlaceholderStaleAfter, settings.UpdateCheckInterval,
	)
	return settings
}

func (l *Loader) applyEnv(settings *domain.Settings) {
	if password := l.getenv(EnvPassword); password != "" {
		settings.Credentials.Password = password
	}
}

func (l *Loader) getenv(key string) string {
	if l.Getenv == nil {
		return ""
	}
	return l.Getenv(key)
}

func (l *Loader) duration(key, raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		l.Logger.Warn(fmt.Sprintf("invalid value %q for %s, using %s", raw, key, fallback))
		return fallback
	}
	return d
}

func (l *Loader) count(key, raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		l.Logger.Warn(fmt.Sprintf("invalid value %q for %s, using %d", raw, key, fallback))
		return fallback
	}
	return n
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func resolvePaths(settings *domain.Settings, base string) {
	settings.CatalogPath = resolvePath(base, settings.CatalogPath)
	settings.ImportRoot = resolvePath(base, settings.ImportRoot)
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func readAndUnmarshalYAML(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}
	return nil
}
