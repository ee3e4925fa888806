// Package app implements the application layer for assetimport.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/assetimport/internal/engine/dispatcher"
	"go.trai.ch/assetimport/internal/engine/importer"
	"go.trai.ch/zerr"
)

// DefaultDrainTimeout bounds how long a command waits for queued fetches before exiting.
const DefaultDrainTimeout = 5 * time.Minute

// LogSettings adjusts the logger from command line flags.
type LogSettings interface {
	SetOutput(w io.Writer)
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	JSON       bool
	Verbose    bool
	// LogOutput replaces the log destination when set.
	LogOutput io.Writer
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	logSettings  LogSettings
	tracer       ports.Tracer
	content      ports.ContentRepository

	dial         DialFunc
	workDir      string
	configPath   string
	drainTimeout time.Duration
	onComplete   dispatcher.CompletionFunc
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	logSettings LogSettings,
	tracer ports.Tracer,
	content ports.ContentRepository,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		logSettings:  logSettings,
		tracer:       tracer,
		content:      content,
		dial:         dialRemote,
		drainTimeout: DefaultDrainTimeout,
	}
}

// WithDialer replaces the asset service constructor.
// This is primarily used for testing against a fake service.
func (a *App) WithDialer(dial DialFunc) *App {
	a.dial = dial
	return a
}

// WithWorkDir sets the directory configuration discovery starts from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithDrainTimeout bounds how long commands wait for queued fetches.
func (a *App) WithDrainTimeout(d time.Duration) *App {
	a.drainTimeout = d
	return a
}

// WithOnComplete observes every finished fetch task.
func (a *App) WithOnComplete(fn dispatcher.CompletionFunc) *App {
	a.onComplete = fn
	return a
}

// Configure applies the global command line options.
func (a *App) Configure(opts GlobalOptions) {
	a.configPath = opts.ConfigPath
	if a.logSettings != nil {
		if opts.LogOutput != nil {
			a.logSettings.SetOutput(opts.LogOutput)
		}
		a.logSettings.SetJSON(opts.JSON)
		a.logSettings.SetVerbose(opts.Verbose)
	}
}

// ImportOptions configuration for the Import method.
type ImportOptions struct {
	// Wait reports the state of every file after queued fetches finished.
	Wait bool
}

// Import imports the transformations bound to one field location.
// Queued fetches complete before Import returns.
func (a *App) Import(ctx context.Context, req importer.Request, opts ImportOptions) ([]domain.ImportResult, error) {
	rt, err := a.open(ctx)
	if err != nil {
		return nil, err
	}

	results, importErr := rt.importer.Import(ctx, req)
	drainErr := a.drain(ctx, rt)

	if opts.Wait && drainErr == nil {
		results = refresh(rt.storage, results)
	}
	return results, errors.Join(importErr, drainErr)
}

// DocumentOptions configuration for the ImportDocument method.
type DocumentOptions struct {
	Path    string
	Context string
	Locale  string
	// Output is where the annotated document is written. Empty means in place.
	Output string
}

// ImportDocument imports every asset referenced by a content document and
// writes the annotated document back.
func (a *App) ImportDocument(ctx context.Context, opts DocumentOptions) (importer.Report, error) {
	doc, err := a.content.Open(opts.Path)
	if err != nil {
		return importer.Report{}, err
	}

	rt, err := a.open(ctx)
	if err != nil {
		return importer.Report{}, err
	}

	report, importErr := rt.importer.ImportDocument(ctx, doc, opts.Context, domain.ParseLocale(opts.Locale))
	drainErr := a.drain(ctx, rt)

	out := opts.Output
	if out == "" {
		out = opts.Path
	}
	if err := a.content.Save(out, doc); err != nil {
		return report, errors.Join(importErr, drainErr, err)
	}
	a.logger.Info(fmt.Sprintf("annotated %d fields in %s", report.Fields, out))

	return report, errors.Join(importErr, drainErr)
}

// FileState is the serving state of one imported file.
type FileState struct {
	Path   string            `json:"path"`
	Status domain.FileStatus `json:"status"`
	URL    string            `json:"url"`
}

// Status reports whether the given files under the import root can be served.
func (a *App) Status(_ context.Context, paths []string) ([]FileState, error) {
	settings, err := a.loadSettings()
	if err != nil {
		return nil, err
	}
	store, err := newStorage(settings)
	if err != nil {
		return nil, err
	}

	states := make([]FileState, 0, len(paths))
	var errs []error
	for _, p := range paths {
		status, err := store.Status(p)
		if err != nil {
			errs = append(errs, zerr.With(err, "path", p))
			continue
		}
		states = append(states, FileState{Path: p, Status: status, URL: store.URL(p)})
	}
	return states, errors.Join(errs...)
}

// CatalogListing is the parsed catalog together with where it was read from.
type CatalogListing struct {
	Path    string
	Catalog *domain.Catalog
}

// Catalog loads the transformation catalog.
func (a *App) Catalog(ctx context.Context) (CatalogListing, error) {
	settings, err := a.loadSettings()
	if err != nil {
		return CatalogListing{}, err
	}

	source := newCatalogSource(settings, a.logger)
	c, err := source.Load(ctx)
	if err != nil {
		return CatalogListing{}, err
	}
	return CatalogListing{Path: settings.CatalogPath, Catalog: c}, nil
}

func (a *App) loadSettings() (domain.Settings, error) {
	if a.configPath != "" {
		settings, err := a.configLoader.LoadFile(a.configPath)
		if err != nil {
			return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
		}
		return settings, nil
	}

	dir := a.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return domain.Settings{}, zerr.Wrap(err, "failed to determine working directory")
		}
		dir = wd
	}

	settings, err := a.configLoader.Load(dir)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}

func (a *App) drain(ctx context.Context, rt *runtime) error {
	if pending := rt.dispatcher.Pending(); pending > 0 {
		a.logger.Info(fmt.Sprintf("waiting for %d queued fetches", pending))
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.drainTimeout)
	defer cancel()
	if ctx.Err() != nil {
		// Interrupted: leave running fetches to the stale-placeholder recovery.
		cancel()
	}
	return rt.dispatcher.Close(drainCtx)
}

func refresh(store ports.Storage, results []domain.ImportResult) []domain.ImportResult {
	for i := range results {
		status, err := store.Status(results[i].File)
		if err != nil {
			continue
		}
		results[i].Pending = status != domain.StatusReady
	}
	return results
}
