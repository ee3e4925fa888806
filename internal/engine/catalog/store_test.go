package catalog_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports/mocks"
	"go.trai.ch/assetimport/internal/engine/catalog"
	"go.uber.org/mock/gomock"
)

func sampleCatalog(task string) *domain.Catalog {
	return domain.NewCatalog([]domain.SourceBinding{{
		ContentType: "article",
		Context:     "web",
		Location:    "hero/image",
		Transformations: []domain.TransformationDescriptor{
			{Name: "thumb", Task: task, Extension: "jpg"},
		},
	}})
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	l := mocks.NewMockLogger(ctrl)
	l.EXPECT().Info(gomock.Any()).AnyTimes()
	l.EXPECT().Debug(gomock.Any()).AnyTimes()
	return l
}

func TestStore_RefreshBoundary(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockCatalogSource(ctrl)
		store := catalog.NewStore(source, quietLogger(ctrl), time.Hour)

		source.EXPECT().Load(gomock.Any()).Return(sampleCatalog("v1"), nil).Times(1)
		descs, err := store.ResolveForField(t.Context(), "article", "web", "hero/image")
		require.NoError(t, err)
		assert.Equal(t, "v1", descs[0].Task)

		time.Sleep(time.Hour - time.Nanosecond)
		descs, err = store.ResolveForField(t.Context(), "article", "web", "hero/image")
		require.NoError(t, err)
		assert.Equal(t, "v1", descs[0].Task, "no reload before the interval elapsed")

		source.EXPECT().Load(gomock.Any()).Return(sampleCatalog("v2"), nil).Times(1)
		time.Sleep(2 * time.Nanosecond)
		descs, err = store.ResolveForField(t.Context(), "article", "web", "hero/image")
		require.NoError(t, err)
		assert.Equal(t, "v2", descs[0].Task)
		assert.Equal(t, int64(2), store.Loads())
	})
}

func TestStore_UnavailableWithoutPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockCatalogSource(ctrl)
	store := catalog.NewStore(source, quietLogger(ctrl), time.Hour)

	source.EXPECT().Load(gomock.Any()).Return(nil, errors.New("disk gone"))
	_, err := store.Resolve(t.Context(), "article", "web")
	require.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.ErrorContains(t, err, "disk gone")

	source.EXPECT().Load(gomock.Any()).Return(sampleCatalog("v1"), nil)
	bindings, err := store.Resolve(t.Context(), "article", "web")
	require.NoError(t, err)
	assert.Len(t, bindings, 1)
}

func TestStore_KeepsPreviousOnFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockCatalogSource(ctrl)
		logger := quietLogger(ctrl)
		store := catalog.NewStore(source, logger, time.Minute)

		source.EXPECT().Load(gomock.Any()).Return(sampleCatalog("v1"), nil)
		_, err := store.Catalog(t.Context())
		require.NoError(t, err)

		time.Sleep(2 * time.Minute)
		source.EXPECT().Load(gomock.Any()).Return(nil, errors.New("parse error"))
		logger.EXPECT().Error(gomock.Any()).Times(1)

		c, err := store.Catalog(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "v1", c.ResolveForField("article", "web", "hero/image")[0].Task)

		// The failed attempt counts as a load for scheduling purposes.
		c, err = store.Catalog(t.Context())
		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestStore_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockCatalogSource(ctrl)
	store := catalog.NewStore(source, quietLogger(ctrl), time.Hour)

	source.EXPECT().Load(gomock.Any()).Return(sampleCatalog("v1"), nil)
	_, err := store.Catalog(t.Context())
	require.NoError(t, err)

	store.Invalidate()
	source.EXPECT().Load(gomock.Any()).Return(sampleCatalog("v2"), nil)
	c, err := store.Catalog(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "v2", c.ResolveForField("article", "web", "hero/image")[0].Task)
}

func TestStore_SingleInitialLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockCatalogSource(ctrl)
	store := catalog.NewStore(source, quietLogger(ctrl), time.Hour)

	source.EXPECT().Load(gomock.Any()).Return(sampleCatalog("v1"), nil).Times(1)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			c, err := store.Catalog(context.Background())
			assert.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
	wg.Wait()
	assert.Equal(t, int64(1), store.Loads())
}

func TestStore_StaleReadersDoNotWaitForRefresh(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockCatalogSource(ctrl)
		store := catalog.NewStore(source, quietLogger(ctrl), time.Minute)

		source.EXPECT().Load(gomock.Any()).Return(sampleCatalog("v1"), nil)
		_, err := store.Catalog(t.Context())
		require.NoError(t, err)
		time.Sleep(2 * time.Minute)

		release := make(chan struct{})
		started := make(chan struct{})
		source.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) (*domain.Catalog, error) {
			close(started)
			<-release
			return sampleCatalog("v2"), nil
		}).Times(1)

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = store.Catalog(context.Background())
		}()
		<-started

		c, err := store.Catalog(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "v1", c.ResolveForField("article", "web", "hero/image")[0].Task)

		close(release)
		<-done
		c, err = store.Catalog(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "v2", c.ResolveForField("article", "web", "hero/image")[0].Task)
	})
}

func TestStore_NoTransformationIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockCatalogSource(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	store := catalog.NewStore(source, logger, time.Hour)

	source.EXPECT().Load(gomock.Any()).Return(sampleCatalog("v1"), nil)
	logger.EXPECT().Info(gomock.Any()).Times(1)

	descs, err := store.ResolveForField(t.Context(), "page", "web", "hero/image")
	require.NoError(t, err)
	assert.Empty(t, descs)
}
