// Package importer decides whether an asset transformation must be fetched and dispatches it.
package importer

import (
	"context"
	"errors"
	"path"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/assetimport/internal/engine/modtime"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Request asks for the transformations bound to one field location.
type Request struct {
	ContentType string                `json:"contentType"`
	Context     string                `json:"context"`
	Location    string                `json:"location"`
	Asset       domain.AssetReference `json:"asset"`
}

// Deps are the collaborators of an Importer.
type Deps struct {
	Catalog    ports.CatalogResolver
	Locator    ports.AssetLocator
	Storage    ports.Storage
	Lock       ports.PlaceholderLock
	Dispatcher ports.Dispatcher
	ModTimes   *modtime.Cache
	Logger     ports.Logger
	Tracer     ports.Tracer
}

// Option configures an Importer.
type Option func(*Importer)

// WithRegisterer registers the importer metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(i *Importer) {
		i.registerer = reg
	}
}

// WithConcurrency bounds the number of imports a bulk import runs at once.
func WithConcurrency(n int) Option {
	return func(i *Importer) {
		if n > 0 {
			i.concurrency = n
		}
	}
}

// Importer is the import orchestrator. It is safe for concurrent use.
type Importer struct {
	catalog    ports.CatalogResolver
	locator    ports.AssetLocator
	storage    ports.Storage
	lock       ports.PlaceholderLock
	dispatcher ports.Dispatcher
	modtimes   *modtime.Cache
	logger     ports.Logger
	tracer     ports.Tracer

	staleAfter  time.Duration
	concurrency int

	lookups   singleflight.Group
	claims    claims
	verifying verifying

	metrics    *Metrics
	registerer prometheus.Registerer
}

// New creates an Importer. Placeholders older than staleAfter are presumed abandoned.
func New(staleAfter time.Duration, deps Deps, opts ...Option) (*Importer, error) {
	i := &Importer{
		catalog:     deps.Catalog,
		locator:     deps.Locator,
		storage:     deps.Storage,
		lock:        deps.Lock,
		dispatcher:  deps.Dispatcher,
		modtimes:    deps.ModTimes,
		logger:      deps.Logger,
		tracer:      deps.Tracer,
		staleAfter:  staleAfter,
		concurrency: domain.DefaultMaxConnections,
		claims:      claims{held: make(map[string]struct{})},
		verifying:   verifying{since: make(map[string]time.Time)},
		metrics:     newMetrics(),
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.registerer != nil {
		if err := i.metrics.register(i.registerer); err != nil {
			return nil, zerr.Wrap(err, "failed to register importer metrics")
		}
	}
	return i, nil
}

// Import imports every transformation bound to the requested field location.
// Results of the transformations that succeeded are returned alongside the
// joined errors of those that did not. No configured transformation yields no results.
func (i *Importer) Import(ctx context.Context, req Request) ([]domain.ImportResult, error) {
	ctx, span := i.tracer.Start(ctx, "import",
		ports.WithAttribute("content.type", req.ContentType),
		ports.WithAttribute("context", req.Context),
		ports.WithAttribute("location", req.Location),
	)
	defer span.End()

	binding, ok, err := i.catalog.BindingForField(ctx, req.ContentType, req.Context, req.Location)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	results := make([]domain.ImportResult, 0, len(binding.Transformations))
	var errs []error
	for _, t := range binding.Transformations {
		res, err := i.ImportTransformation(ctx, binding, req.Asset, t)
		if err != nil {
			errs = append(errs, zerr.With(err, "transformation", t.Name))
			continue
		}
		results = append(results, res)
	}

	err = errors.Join(errs...)
	if err != nil {
		span.RecordError(err)
	}
	return results, err
}

// ImportTransformation runs the decision procedure for one asset and one transformation.
// It never waits for a fetch: a pending result names the file that will appear.
func (i *Importer) ImportTransformation(
	ctx context.Context,
	binding domain.SourceBinding,
	ref domain.AssetReference,
	t domain.TransformationDescriptor,
) (domain.ImportResult, error) {
	ref, known, err := i.resolveID(ctx, ref)
	if err != nil {
		i.metrics.decisions.WithLabelValues(decisionFailed).Inc()
		return domain.ImportResult{}, err
	}

	target := domain.ResolveTarget(domain.TargetInput{
		ContentType:      binding.ContentType,
		Alias:            binding.FileSystemAlias(),
		AssetID:          ref.ID,
		AssetPath:        ref.Path,
		Task:             t.Task,
		ParameterSummary: t.ParameterSummary(),
		Extension:        t.Extension,
	})

	if target.DeferredExtension {
		target, err = i.adoptLocalExtension(target)
		if err != nil {
			i.metrics.decisions.WithLabelValues(decisionFailed).Inc()
			return domain.ImportResult{}, err
		}
	}

	d := decision{ref: ref, asset: known, target: target, transformation: t}

	if !target.DeferredExtension {
		info, exists, err := i.storage.Stat(target.RelPath())
		if err != nil {
			i.metrics.decisions.WithLabelValues(decisionFailed).Inc()
			return domain.ImportResult{}, err
		}
		if exists {
			return i.existing(d, info.ModTime())
		}
	}
	return i.missing(ctx, d)
}

type decision struct {
	ref            domain.AssetReference
	asset          *domain.RemoteAsset
	target         domain.Target
	transformation domain.TransformationDescriptor
}

func (d decision) result(url string, pending bool) domain.ImportResult {
	return domain.ImportResult{
		Name:    d.transformation.Name,
		File:    d.target.RelPath(),
		URL:     url,
		Pending: pending,
	}
}

func (d decision) task(kind domain.FetchKind) domain.FetchTask {
	return domain.FetchTask{
		Kind:        kind,
		Asset:       d.ref,
		Task:        d.transformation.Task,
		Parameters:  d.transformation.Parameters,
		Target:      d.target.RelPath(),
		Placeholder: d.target.PlaceholderRelPath(),
	}
}

// existing handles a target already on disk.
func (i *Importer) existing(d decision, local time.Time) (domain.ImportResult, error) {
	url := i.storage.URL(d.target.RelPath())

	remote, ok := i.modtimes.Get(d.ref.ID)
	if !ok {
		// One verify per asset fills the cache for every caller.
		if !i.verifying.start(d.ref.ID, i.modtimes.TTL()) {
			i.metrics.decisions.WithLabelValues(decisionReady).Inc()
			return d.result(url, false), nil
		}
		task := d.task(domain.FetchVerify)
		task.LocalModTime = local
		if err := i.dispatcher.Dispatch(task); err != nil {
			i.verifying.finish(d.ref.ID)
			i.metrics.decisions.WithLabelValues(decisionFailed).Inc()
			return domain.ImportResult{}, err
		}
		i.metrics.decisions.WithLabelValues(decisionVerify).Inc()
		return d.result(url, false), nil
	}
	i.verifying.finish(d.ref.ID)

	if !local.Before(remote) {
		i.metrics.decisions.WithLabelValues(decisionReady).Inc()
		return d.result(url, false), nil
	}

	// The local copy is outdated. Keep serving it while someone else refreshes it.
	key := d.target.PlaceholderRelPath()
	if !i.claims.tryClaim(key) {
		i.metrics.decisions.WithLabelValues(decisionReady).Inc()
		return d.result(url, false), nil
	}
	defer i.claims.release(key)

	state, err := i.lock.TryAcquire(key, i.staleAfter)
	if err != nil {
		i.metrics.decisions.WithLabelValues(decisionFailed).Inc()
		return domain.ImportResult{}, err
	}
	if !state.Owned() {
		i.metrics.decisions.WithLabelValues(decisionReady).Inc()
		return d.result(url, false), nil
	}

	if err := i.dispatchHeld(d.task(domain.FetchFull)); err != nil {
		return domain.ImportResult{}, err
	}
	i.logger.Debug("refreshing outdated " + d.target.RelPath())
	return d.result(url, true), nil
}

// missing handles a target not yet on disk.
func (i *Importer) missing(ctx context.Context, d decision) (domain.ImportResult, error) {
	key := d.target.PlaceholderRelPath()
	if !i.claims.tryClaim(key) {
		i.metrics.decisions.WithLabelValues(decisionPending).Inc()
		return d.result(i.storage.URL(d.target.RelPath()), true), nil
	}
	defer i.claims.release(key)

	state, err := i.lock.TryAcquire(key, i.staleAfter)
	if err != nil {
		i.metrics.decisions.WithLabelValues(decisionFailed).Inc()
		return domain.ImportResult{}, err
	}
	if !state.Owned() {
		i.metrics.decisions.WithLabelValues(decisionPending).Inc()
		return d.result(i.storage.URL(d.target.RelPath()), true), nil
	}
	if state == domain.LockHeldStale {
		i.logger.Warn("recovering abandoned placeholder " + key)
	}

	if d.target.DeferredExtension {
		ext, err := i.remoteExtension(ctx, d)
		if err != nil {
			i.release(key)
			i.metrics.decisions.WithLabelValues(decisionFailed).Inc()
			return domain.ImportResult{}, err
		}
		d.target = d.target.WithExtension(ext)
	}

	// A fetch that finished between the stat and the claim leaves nothing to do.
	if _, exists, err := i.storage.Stat(d.target.RelPath()); err == nil && exists {
		i.release(key)
		i.metrics.decisions.WithLabelValues(decisionReady).Inc()
		return d.result(i.storage.URL(d.target.RelPath()), false), nil
	}

	if err := i.dispatchHeld(d.task(domain.FetchFull)); err != nil {
		return domain.ImportResult{}, err
	}
	return d.result(i.storage.URL(d.target.RelPath()), true), nil
}

// dispatchHeld hands a task holding its placeholder to the dispatcher,
// releasing the placeholder if the dispatcher refuses it.
func (i *Importer) dispatchHeld(task domain.FetchTask) error {
	if err := i.dispatcher.Dispatch(task); err != nil {
		i.release(task.Placeholder)
		i.metrics.decisions.WithLabelValues(decisionFailed).Inc()
		return err
	}
	i.metrics.decisions.WithLabelValues(decisionFetch).Inc()
	return nil
}

func (i *Importer) release(placeholder string) {
	if err := i.lock.Release(placeholder); err != nil {
		i.logger.Error(err)
	}
}

// adoptLocalExtension completes a deferred target from the single local original.* file.
func (i *Importer) adoptLocalExtension(target domain.Target) (domain.Target, error) {
	names, err := i.storage.Glob(target.Dir, domain.DefaultBaseName)
	if err != nil {
		return target, err
	}
	switch len(names) {
	case 0:
		return target, nil
	case 1:
		return target.WithExtension(path.Ext(names[0])), nil
	default:
		err := zerr.Wrap(domain.ErrInconsistentLocalCache, "cannot choose a local file")
		err = zerr.With(err, "dir", target.Dir)
		return target, zerr.With(err, "files", names)
	}
}

// remoteExtension asks the asset service for the native extension of the asset.
func (i *Importer) remoteExtension(ctx context.Context, d decision) (string, error) {
	asset := d.asset
	if asset == nil {
		located, err := i.locate(ctx, d.ref)
		if err != nil {
			return "", err
		}
		asset = &located
	}
	ext := asset.Extension()
	if ext == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrMissingExtension, "cannot name imported file"), "asset", asset.Name)
	}
	return ext, nil
}

// resolveID turns a path-only reference into one carrying the asset id.
// The located asset is returned so later steps need not ask again.
func (i *Importer) resolveID(ctx context.Context, ref domain.AssetReference) (domain.AssetReference, *domain.RemoteAsset, error) {
	if ref.IsZero() {
		return ref, nil, domain.ErrInvalidReference
	}
	if ref.ID != "" {
		return ref, nil, nil
	}
	asset, err := i.locate(ctx, ref)
	if err != nil {
		return ref, nil, err
	}
	ref.ID = asset.ID
	return ref, &asset, nil
}

// locate shares one remote lookup between concurrent callers asking for the same reference.
func (i *Importer) locate(ctx context.Context, ref domain.AssetReference) (domain.RemoteAsset, error) {
	key := ref.ID + "\x00" + ref.Path
	v, err, _ := i.lookups.Do(key, func() (any, error) {
		asset, err := i.locator.Locate(ctx, ref)
		if err != nil {
			return nil, err
		}
		i.modtimes.Set(asset.ID, asset.ModifiedAt)
		if ref.ID != "" && ref.ID != asset.ID {
			i.modtimes.Set(ref.ID, asset.ModifiedAt)
		}
		return asset, nil
	})
	if err != nil {
		return domain.RemoteAsset{}, err
	}
	asset, _ := v.(domain.RemoteAsset)
	return asset, nil
}

// claims coalesces decisions on the same placeholder within the process.
type claims struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func (c *claims) tryClaim(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.held[key]; ok {
		return false
	}
	c.held[key] = struct{}{}
	return true
}

func (c *claims) release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.held, key)
}

// verifying tracks the assets with a verify task in flight.
// An entry older than the window no longer blocks, so a verify that failed is retried.
type verifying struct {
	mu    sync.Mutex
	since map[string]time.Time
}

func (v *verifying) start(id string, window time.Duration) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if at, ok := v.since[id]; ok && time.Since(at) < window {
		return false
	}
	v.since[id] = time.Now()
	return true
}

func (v *verifying) finish(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.since, id)
}
