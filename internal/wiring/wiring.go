// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/trim/internal/adapters/binref"
	_ "go.trai.ch/trim/internal/adapters/cas"
	_ "go.trai.ch/trim/internal/adapters/fs"
	_ "go.trai.ch/trim/internal/adapters/lockfile"
	_ "go.trai.ch/trim/internal/adapters/logger"
	_ "go.trai.ch/trim/internal/adapters/shell"
	_ "go.trai.ch/trim/internal/adapters/telemetry"
	_ "go.trai.ch/trim/internal/adapters/unitfile"
	// Register app nodes.
	_ "go.trai.ch/trim/internal/app"
)
