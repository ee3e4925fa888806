package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetimport/internal/adapters/config"
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, env map[string]string) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	l := config.NewLoader(log)
	l.Getenv = func(key string) string { return env[key] }
	return l, log
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	content := `
service:
  endpoint: https://dam.example.com/api/
  domain: CORP
  username: importer
  password: secret
  timeout: 30s
  maxConnections: "8"
  updateCheckInterval: 15m
catalog:
  path: catalog/transformations.yaml
  refresh: 5m
  watch: true
import:
  root: /srv/imported
  urlPrefix: media/imported/
`
	dir := t.TempDir()
	writeConfig(t, dir, content)
	l, _ := newLoader(t, nil)

	s, err := l.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.Credentials{
		Endpoint: "https://dam.example.com/api",
		Domain:   "CORP",
		Username: "importer",
		Password: "secret",
	}, s.Credentials)
	assert.Equal(t, `CORP\importer`, s.Credentials.User())
	assert.Equal(t, 30*time.Second, s.HTTPTimeout)
	assert.Equal(t, 8, s.MaxConnections)
	assert.Equal(t, 15*time.Minute, s.UpdateCheckInterval)
	assert.Equal(t, filepath.Join(dir, "catalog", "transformations.yaml"), s.CatalogPath)
	assert.Equal(t, 5*time.Minute, s.CatalogRefresh)
	assert.True(t, s.WatchCatalog)
	assert.Equal(t, "/srv/imported", s.ImportRoot)
	assert.Equal(t, "/media/imported", s.URLPrefix)
	assert.Equal(t, 15*time.Minute, s.PlaceholderStaleAfter)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	l, log := newLoader(t, nil)
	log.EXPECT().Info(gomock.Any())

	s, err := l.Load(dir)
	require.NoError(t, err)

	want := domain.DefaultSettings()
	assert.Equal(t, want.HTTPTimeout, s.HTTPTimeout)
	assert.Equal(t, want.MaxConnections, s.MaxConnections)
	assert.Equal(t, want.URLPrefix, s.URLPrefix)
	assert.Equal(t, filepath.Join(dir, domain.CatalogFileName), s.CatalogPath)
	assert.Equal(t, filepath.Join(dir, domain.DefaultImportRoot()), s.ImportRoot)
	assert.Empty(t, s.Credentials.Endpoint)
}

func TestLoad_Discovery(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "service:\n  endpoint: https://dam.example.com\n")

	deep := filepath.Join(root, "site", "content", "articles")
	require.NoError(t, os.MkdirAll(deep, 0o750))

	l, _ := newLoader(t, nil)
	s, err := l.Load(deep)
	require.NoError(t, err)

	assert.Equal(t, "https://dam.example.com", s.Credentials.Endpoint)
	assert.Equal(t, filepath.Join(root, domain.DefaultImportRoot()), s.ImportRoot)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "conf")
	require.NoError(t, os.MkdirAll(other, 0o750))
	writeConfig(t, dir, "service:\n  endpoint: https://ignored.example.com\n")
	writeConfig(t, other, "service:\n  endpoint: https://dam.example.com\n  password: from-file\n")

	l, _ := newLoader(t, map[string]string{
		config.EnvConfig:   filepath.Join("conf", domain.ConfigFileName),
		config.EnvPassword: "from-env",
	})

	s, err := l.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://dam.example.com", s.Credentials.Endpoint)
	assert.Equal(t, "from-env", s.Credentials.Password)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, s domain.Settings)
	}{
		{
			name:    "unparsable timeout",
			content: "service:\n  timeout: soon\n",
			check: func(t *testing.T, s domain.Settings) {
				t.Helper()
				assert.Equal(t, domain.DefaultHTTPTimeout, s.HTTPTimeout)
			},
		},
		{
			name:    "negative interval",
			content: "service:\n  updateCheckInterval: -1m\n",
			check: func(t *testing.T, s domain.Settings) {
				t.Helper()
				assert.Equal(t, domain.DefaultUpdateCheckInterval, s.UpdateCheckInterval)
			},
		},
		{
			name:    "zero connections",
			content: "service:\n  maxConnections: \"0\"\n",
			check: func(t *testing.T, s domain.Settings) {
				t.Helper()
				assert.Equal(t, domain.DefaultMaxConnections, s.MaxConnections)
			},
		},
		{
			name:    "non-numeric connections",
			content: "service:\n  maxConnections: many\n",
			check: func(t *testing.T, s domain.Settings) {
				t.Helper()
				assert.Equal(t, domain.DefaultMaxConnections, s.MaxConnections)
			},
		},
		{
			name:    "malformed catalog refresh",
			content: "catalog:\n  refresh: 10\n",
			check: func(t *testing.T, s domain.Settings) {
				t.Helper()
				assert.Equal(t, domain.DefaultCatalogRefresh, s.CatalogRefresh)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			l, log := newLoader(t, nil)
			log.EXPECT().Warn(gomock.Any())

			s, err := l.Load(dir)
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		l, _ := newLoader(t, nil)
		_, err := l.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, domain.ErrConfigReadFailed)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "service: [unterminated\n")
		l, _ := newLoader(t, nil)
		_, err := l.LoadFile(path)
		assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})
}
