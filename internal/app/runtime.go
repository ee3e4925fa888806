package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	catalogsource "go.trai.ch/assetimport/internal/adapters/catalog" //nolint:depguard // Wired in app layer
	"go.trai.ch/assetimport/internal/adapters/placeholder"            //nolint:depguard // Wired in app layer
	"go.trai.ch/assetimport/internal/adapters/remote"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/assetimport/internal/adapters/storage"                //nolint:depguard // Wired in app layer
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/assetimport/internal/engine/catalog"
	"go.trai.ch/assetimport/internal/engine/dispatcher"
	"go.trai.ch/assetimport/internal/engine/importer"
	"go.trai.ch/assetimport/internal/engine/locator"
	"go.trai.ch/assetimport/internal/engine/modtime"
)

// DialFunc connects to the asset service described by settings.
type DialFunc func(ctx context.Context, settings domain.Settings) (ports.AssetService, error)

func dialRemote(ctx context.Context, settings domain.Settings) (ports.AssetService, error) {
	return remote.Dial(ctx, settings)
}

// runtime is the object graph serving one command, built from the loaded settings.
type runtime struct {
	settings   domain.Settings
	registry   *prometheus.Registry
	storage    *storage.Store
	source     *catalogsource.FileSource
	catalog    *catalog.Store
	dispatcher *dispatcher.Dispatcher
	importer   *importer.Importer
}

func (a *App) open(ctx context.Context) (*runtime, error) {
	settings, err := a.loadSettings()
	if err != nil {
		return nil, err
	}

	service, err := a.dial(ctx, settings)
	if err != nil {
		return nil, err
	}

	store, err := newStorage(settings)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	lock := placeholder.New(store.Root())
	loc := locator.New(service)
	modtimes := modtime.New(settings.UpdateCheckInterval)
	source := newCatalogSource(settings, a.logger)
	cat := catalog.NewStore(source, a.logger, settings.CatalogRefresh)

	disp, err := dispatcher.New(ctx, settings.MaxConnections, settings.PlaceholderStaleAfter,
		dispatcher.Deps{
			Locator:  loc,
			Service:  service,
			Storage:  store,
			Lock:     lock,
			ModTimes: modtimes,
			Logger:   a.logger,
			Tracer:   a.tracer,
		},
		dispatcher.WithRegisterer(registry),
		dispatcher.WithOnComplete(a.onComplete),
	)
	if err != nil {
		return nil, err
	}

	imp, err := importer.New(settings.PlaceholderStaleAfter,
		importer.Deps{
			Catalog:    cat,
			Locator:    loc,
			Storage:    store,
			Lock:       lock,
			Dispatcher: disp,
			ModTimes:   modtimes,
			Logger:     a.logger,
			Tracer:     a.tracer,
		},
		importer.WithRegisterer(registry),
		importer.WithConcurrency(settings.MaxConnections),
	)
	if err != nil {
		_ = disp.Close(ctx)
		return nil, err
	}

	return &runtime{
		settings:   settings,
		registry:   registry,
		storage:    store,
		source:     source,
		catalog:    cat,
		dispatcher: disp,
		importer:   imp,
	}, nil
}

func newStorage(settings domain.Settings) (*storage.Store, error) {
	return storage.NewStore(settings.ImportRoot, settings.URLPrefix)
}

func newCatalogSource(settings domain.Settings, log ports.Logger) *catalogsource.FileSource {
	return catalogsource.NewFileSource(settings.CatalogPath, log)
}
