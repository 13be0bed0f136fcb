package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plansync/internal/adapters/config"
	"go.trai.ch/plansync/internal/adapters/logger"
	"go.trai.ch/plansync/internal/adapters/watcher"
	"go.trai.ch/plansync/internal/adapters/work"
	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports"
	"go.trai.ch/plansync/internal/engine/cache"
	"go.trai.ch/plansync/internal/engine/plansync"
)

// Components aggregates the resolved application dependencies the CLI needs.
type Components struct {
	App    *App
	Config *domain.Config
	Logger ports.Logger
}

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			plansync.NodeID,
			cache.NodeID,
			watcher.NodeID,
			work.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			controller, err := graft.Dep[*plansync.Controller](ctx)
			if err != nil {
				return nil, err
			}
			bus, err := graft.Dep[*cache.EventBus](ctx)
			if err != nil {
				return nil, err
			}
			storeWatcher, err := graft.Dep[*watcher.StoreWatcher](ctx)
			if err != nil {
				return nil, err
			}
			session, err := graft.Dep[ports.WorkSession](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			log.SetJSON(cfg.JSONLogs)

			return &Components{
				App:    New(cfg, controller, bus, storeWatcher, session, log),
				Config: cfg,
				Logger: log,
			}, nil
		},
	})
}
