// Package dispatcher executes fetch tasks on a fixed pool of workers.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/assetimport/internal/engine/modtime"
	"go.trai.ch/zerr"
)

// CompletionFunc observes every finished task.
type CompletionFunc func(task domain.FetchTask, outcome domain.FetchOutcome, err error)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRegisterer registers the dispatcher metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(d *Dispatcher) {
		d.registerer = reg
	}
}

// WithOnComplete installs a hook called after each task, once its placeholder is released.
func WithOnComplete(fn CompletionFunc) Option {
	return func(d *Dispatcher) {
		d.onComplete = fn
	}
}

// Dispatcher implements ports.Dispatcher.
//
// The queue is unbounded: Dispatch never blocks and never signals backpressure.
// Tasks cannot be cancelled once queued; each runs to completion or failure.
type Dispatcher struct {
	locator    ports.AssetLocator
	service    ports.AssetService
	storage    ports.Storage
	lock       ports.PlaceholderLock
	modtimes   *modtime.Cache
	logger     ports.Logger
	tracer     ports.Tracer
	staleAfter time.Duration

	metrics    *Metrics
	registerer prometheus.Registerer
	onComplete CompletionFunc

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []domain.FetchTask
	closed bool
	wg     sync.WaitGroup
	base   context.Context
}

// Deps are the collaborators of a Dispatcher.
type Deps struct {
	Locator  ports.AssetLocator
	Service  ports.AssetService
	Storage  ports.Storage
	Lock     ports.PlaceholderLock
	ModTimes *modtime.Cache
	Logger   ports.Logger
	Tracer   ports.Tracer
}

// New starts workers goroutines serving the queue.
// Tasks run detached from ctx cancellation but keep its values.
func New(ctx context.Context, workers int, staleAfter time.Duration, deps Deps, opts ...Option) (*Dispatcher, error) {
	if workers <= 0 {
		workers = domain.DefaultMaxConnections
	}

	d := &Dispatcher{
		locator:    deps.Locator,
		service:    deps.Service,
		storage:    deps.Storage,
		lock:       deps.Lock,
		modtimes:   deps.ModTimes,
		logger:     deps.Logger,
		tracer:     deps.Tracer,
		staleAfter: staleAfter,
		metrics:    newMetrics(),
		base:       context.WithoutCancel(ctx),
	}
	d.cond = sync.NewCond(&d.mu)

	for _, opt := range opts {
		opt(d)
	}

	if d.registerer != nil {
		if err := d.metrics.register(d.registerer); err != nil {
			return nil, zerr.Wrap(err, "failed to register dispatcher metrics")
		}
	}

	d.wg.Add(workers)
	for range workers {
		go d.worker()
	}
	return d, nil
}

// Dispatch queues task and returns immediately.
func (d *Dispatcher) Dispatch(task domain.FetchTask) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return zerr.With(zerr.Wrap(domain.ErrDispatcherClosed, "task rejected"), "target", task.Target)
	}
	d.queue = append(d.queue, task)
	d.metrics.queueDepth.Set(float64(len(d.queue)))
	d.cond.Signal()
	return nil
}

// Pending returns the number of queued tasks not yet picked up by a worker.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// Close stops accepting tasks and waits for the queue to drain or ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.cond.Broadcast()
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return zerr.With(zerr.Wrap(ctx.Err(), "dispatcher did not drain"), "pending", d.Pending())
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for {
		task, ok := d.next()
		if !ok {
			return
		}
		d.execute(task)
	}
}

func (d *Dispatcher) next() (domain.FetchTask, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for len(d.queue) == 0 && !d.closed {
		d.cond.Wait()
	}
	if len(d.queue) == 0 {
		return domain.FetchTask{}, false
	}

	task := d.queue[0]
	d.queue[0] = domain.FetchTask{}
	d.queue = d.queue[1:]
	d.metrics.queueDepth.Set(float64(len(d.queue)))
	return task, true
}

func (d *Dispatcher) execute(task domain.FetchTask) {
	ctx, span := d.tracer.Start(d.base, "fetch "+task.Kind.String(),
		ports.WithAttribute("task.id", task.ID),
		ports.WithAttribute("asset.id", task.Asset.ID),
		ports.WithAttribute("target", task.Target),
	)
	defer span.End()

	d.metrics.inFlight.Inc()
	start := time.Now()

	outcome, err := d.process(ctx, task)

	elapsed := time.Since(start)
	d.metrics.inFlight.Dec()
	d.metrics.tasks.WithLabelValues(task.Kind.String(), string(outcome)).Inc()
	d.metrics.duration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())

	span.SetAttribute("outcome", string(outcome))
	if err != nil {
		span.RecordError(err)
		d.logger.Error(zerr.With(zerr.With(err, "target", task.Target), "task", task.ID))
	} else {
		d.logger.Debug(fmt.Sprintf("%s %s in %s", outcome, task.Target, elapsed.Round(time.Millisecond)))
	}

	if d.onComplete != nil {
		d.onComplete(task, outcome, err)
	}
}

// process runs one task. Whatever happens, a placeholder held by the task is
// released before process returns.
func (d *Dispatcher) process(ctx context.Context, task domain.FetchTask) (outcome domain.FetchOutcome, err error) {
	held := task.Kind == domain.FetchFull && task.Placeholder != ""

	defer func() {
		if r := recover(); r != nil {
			outcome = domain.OutcomeFailed
			err = zerr.With(zerr.Wrap(domain.ErrFetchFailed, "fetch task panicked"), "panic", fmt.Sprint(r))
		}
		if held {
			if rerr := d.lock.Release(task.Placeholder); rerr != nil {
				d.logger.Error(rerr)
			}
		}
	}()

	asset, err := d.locator.Locate(ctx, task.Asset)
	if err != nil {
		return domain.OutcomeFailed, errors.Join(domain.ErrFetchFailed, err)
	}
	d.modtimes.Set(asset.ID, asset.ModifiedAt)
	// Importers look the time up under the id they were given, which the path fallback may have replaced.
	if task.Asset.ID != "" && task.Asset.ID != asset.ID {
		d.modtimes.Set(task.Asset.ID, asset.ModifiedAt)
	}

	if task.Kind == domain.FetchVerify {
		if !task.LocalModTime.Before(asset.ModifiedAt) {
			return domain.OutcomeCurrent, nil
		}
		state, err := d.lock.TryAcquire(task.Placeholder, d.staleAfter)
		if err != nil {
			return domain.OutcomeFailed, errors.Join(domain.ErrFetchFailed, err)
		}
		if !state.Owned() {
			return domain.OutcomeSkipped, nil
		}
		held = true
	}

	params := d.typeParameters(task)
	body, err := d.service.FetchTransformed(ctx, asset.ID, task.Task, params)
	if err != nil {
		return domain.OutcomeFailed, errors.Join(domain.ErrFetchFailed, err)
	}
	defer func() { _ = body.Close() }()

	if _, err := d.storage.Write(task.Target, body); err != nil {
		return domain.OutcomeFailed, errors.Join(domain.ErrFetchFailed, err)
	}
	return domain.OutcomeFetched, nil
}

// typeParameters converts the task parameters, logging and dropping those that do not convert.
func (d *Dispatcher) typeParameters(task domain.FetchTask) []domain.TypedParameter {
	typed, errs := domain.TypeParameters(task.Parameters)
	for _, err := range errs {
		if errors.Is(err, domain.ErrUnknownParameter) {
			d.logger.Warn(err.Error())
			continue
		}
		d.logger.Error(err)
	}
	return typed
}
