// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/plansync/internal/adapters/config"
	_ "go.trai.ch/plansync/internal/adapters/kvstore"
	_ "go.trai.ch/plansync/internal/adapters/logger"
	_ "go.trai.ch/plansync/internal/adapters/planapi"
	_ "go.trai.ch/plansync/internal/adapters/telemetry"
	_ "go.trai.ch/plansync/internal/adapters/watcher"
	_ "go.trai.ch/plansync/internal/adapters/work"
	// Register app and engine nodes.
	_ "go.trai.ch/plansync/internal/app"
	_ "go.trai.ch/plansync/internal/engine/cache"
	_ "go.trai.ch/plansync/internal/engine/plansync"
)
