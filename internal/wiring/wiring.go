// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/assetimport/internal/adapters/config"
	_ "go.trai.ch/assetimport/internal/adapters/content"
	_ "go.trai.ch/assetimport/internal/adapters/logger"
	_ "go.trai.ch/assetimport/internal/adapters/telemetry"
	// Register the app nodes.
	_ "go.trai.ch/assetimport/internal/app"
)
