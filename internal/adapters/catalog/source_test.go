package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetimport/internal/adapters/catalog"
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestFileSource_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	path := filepath.Join(t.TempDir(), domain.CatalogFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o600))

	source := catalog.NewFileSource(path, log)
	assert.Equal(t, path, source.Path())

	first, err := source.Load(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, first.Len())

	again, err := source.Load(t.Context())
	require.NoError(t, err)
	assert.Same(t, first, again, "unchanged bytes reuse the parsed catalog")

	require.NoError(t, os.WriteFile(path, []byte("sources: []\n"), 0o600))
	changed, err := source.Load(t.Context())
	require.NoError(t, err)
	assert.NotSame(t, first, changed)
	assert.Zero(t, changed.Len())
}

func TestFileSource_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		source := catalog.NewFileSource(filepath.Join(dir, "missing.yaml"), log)
		_, err := source.Load(t.Context())
		assert.ErrorIs(t, err, domain.ErrCatalogReadFailed)
	})

	t.Run("invalid document", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sources: [\n"), 0o600))
		source := catalog.NewFileSource(path, log)
		_, err := source.Load(t.Context())
		assert.ErrorIs(t, err, domain.ErrCatalogParseFailed)
	})
}
