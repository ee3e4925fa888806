package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	catalogsource "go.trai.ch/assetimport/internal/adapters/catalog" //nolint:depguard // Wired in app layer
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/engine/importer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultAddr is where serve listens unless told otherwise.
	DefaultAddr = "127.0.0.1:8080"

	shutdownTimeout = 10 * time.Second
	maxRequestBytes = 1 << 20
)

// ServeOptions configuration for the Serve method.
type ServeOptions struct {
	Addr string
	// Ready, when set, receives the bound address once the server listens.
	Ready func(addr string)
}

// Serve answers import requests over HTTP until ctx is done.
// With catalog watching enabled, catalog edits take effect without waiting for the refresh interval.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	rt, err := a.open(ctx)
	if err != nil {
		return err
	}

	addr := opts.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
	if err != nil {
		_ = a.drain(ctx, rt)
		return zerr.With(zerr.Wrap(err, "failed to listen"), "addr", addr)
	}

	srv := &http.Server{
		Handler:           a.handler(rt),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info(fmt.Sprintf("serving on http://%s", listener.Addr()))
		if opts.Ready != nil {
			opts.Ready(listener.Addr().String())
		}
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "server failed")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if rt.settings.WatchCatalog {
		g.Go(func() error {
			return catalogsource.NewWatcher(rt.source.Path(), rt.catalog, a.logger).Run(gctx)
		})
	}

	serveErr := g.Wait()

	// Queued fetches finish after a clean stop and are abandoned after a failure.
	drainCtx := context.WithoutCancel(ctx)
	if serveErr != nil {
		drainCtx = ctx
	}
	return errors.Join(serveErr, a.drain(drainCtx, rt))
}

type importResponse struct {
	Results []domain.ImportResult `json:"results"`
	Errors  []string              `json:"errors,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) handler(rt *runtime) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/import", func(w http.ResponseWriter, r *http.Request) {
		var req importer.Request
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		results, err := rt.importer.Import(r.Context(), req)
		resp := importResponse{Results: results}
		if resp.Results == nil {
			resp.Results = []domain.ImportResult{}
		}
		if err == nil {
			writeJSON(w, http.StatusOK, resp)
			return
		}

		a.logger.Error(err)
		for _, e := range unjoin(err) {
			resp.Errors = append(resp.Errors, e.Error())
		}
		code := http.StatusOK
		if len(results) == 0 {
			code = statusFor(err)
		}
		writeJSON(w, code, resp)
	})

	mux.HandleFunc("GET /v1/status", func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Query().Get("path")
		if p == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing path parameter"})
			return
		}
		status, err := rt.storage.Status(p)
		if err != nil {
			writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, FileState{Path: p, Status: status, URL: rt.storage.URL(p)})
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(rt.registry, promhttp.HandlerOpts{}))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidReference), errors.Is(err, domain.ErrPathOutsideRoot):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAssetNotFound), errors.Is(err, domain.ErrContainerNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInconsistentLocalCache):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCatalogUnavailable), errors.Is(err, domain.ErrConnection),
		errors.Is(err, domain.ErrDispatcherClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
