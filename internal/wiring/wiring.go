// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bundle/internal/adapters/config"
	_ "go.trai.ch/bundle/internal/adapters/esbuild"
	_ "go.trai.ch/bundle/internal/adapters/fs"
	_ "go.trai.ch/bundle/internal/adapters/logger"
	_ "go.trai.ch/bundle/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/bundle/internal/app"
)
