package app

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/assetimport/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App            *App
	Logger         ports.Logger
	TracerProvider *sdktrace.TracerProvider
}
