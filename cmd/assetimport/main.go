// Package main is the entry point for the assetimport CLI.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetimport/cmd/assetimport/commands"
	"go.trai.ch/assetimport/internal/adapters/telemetry"
	"go.trai.ch/assetimport/internal/app"
	"go.trai.ch/assetimport/internal/core/domain"
	_ "go.trai.ch/assetimport/internal/wiring"
)

const telemetryShutdownTimeout = time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...func(*app.App)) int {
	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}
	defer func() { _ = telemetry.Shutdown(components.TracerProvider, telemetryShutdownTimeout) }()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrFilesNotReady) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
