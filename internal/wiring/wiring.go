// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gavel/internal/adapters/authz"
	_ "go.trai.ch/gavel/internal/adapters/codec"
	_ "go.trai.ch/gavel/internal/adapters/config"
	_ "go.trai.ch/gavel/internal/adapters/logger"
	_ "go.trai.ch/gavel/internal/adapters/storage"
	_ "go.trai.ch/gavel/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/gavel/internal/adapters/version"
	// Register app nodes.
	_ "go.trai.ch/gavel/internal/app"
)
