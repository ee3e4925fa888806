package app_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/assetimport/internal/adapters/config"
	"go.trai.ch/assetimport/internal/adapters/content"
	"go.trai.ch/assetimport/internal/adapters/telemetry"
	"go.trai.ch/assetimport/internal/app"
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/assetimport/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const catalogDocument = `
sources:
  - contentType: article
    context: web
    assets:
      - location: body/hero
        alias: hero
        assetIdLocation: id
        assetPathLocation: path
        transformations:
          - name: original
          - name: thumbnail
            task: resize
            extension: jpg
            parameters:
              - name: Image Size/Image Sizer Parameters/Output Width
                value: "200"
`

const configDocument = `
service:
  endpoint: https://dam.example.com
  maxConnections: "2"
catalog:
  path: transformations.yaml
import:
  root: imported
  urlPrefix: /media
`

// fakeService is an in-memory asset service.
type fakeService struct {
	mu      sync.Mutex
	assets  map[string]domain.RemoteAsset
	fetches int
}

func newFakeService() *fakeService {
	return &fakeService{assets: map[string]domain.RemoteAsset{
		"A7": {ID: "A7", Name: "beach.png", ModifiedAt: time.Now().Add(-24 * time.Hour)},
	}}
}

func (f *fakeService) Ping(context.Context) error { return nil }

func (f *fakeService) GetAssetByID(_ context.Context, id string) (domain.RemoteAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.assets[id]
	if !ok {
		return domain.RemoteAsset{}, zerr.Wrap(domain.ErrAssetNotFound, id)
	}
	return a, nil
}

func (f *fakeService) GetContainerByPath(_ context.Context, p string) (domain.Container, error) {
	return domain.Container{ID: p, Path: p}, nil
}

func (f *fakeService) GetAssetByName(_ context.Context, _, name string) (domain.RemoteAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.assets {
		if a.Name == name {
			return a, nil
		}
	}
	return domain.RemoteAsset{}, zerr.Wrap(domain.ErrAssetNotFound, name)
}

func (f *fakeService) FetchTransformed(
	_ context.Context,
	id, task string,
	_ []domain.TypedParameter,
) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	return io.NopCloser(strings.NewReader(id + " via " + task)), nil
}

func (f *fakeService) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

type fixture struct {
	dir     string
	service *fakeService
	app     *app.App
}

func setup(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(configDocument), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.CatalogFileName), []byte(catalogDocument), 0o600))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	service := newFakeService()
	a := app.New(config.NewLoader(log), log, nil, telemetry.NewNoOpTracer(), content.NewRepository()).
		WithWorkDir(dir).
		WithDrainTimeout(10 * time.Second).
		WithDialer(func(context.Context, domain.Settings) (ports.AssetService, error) {
			return service, nil
		})

	return &fixture{dir: dir, service: service, app: a}
}

func (f *fixture) imported(rel string) string {
	return filepath.Join(f.dir, "imported", filepath.FromSlash(rel))
}
