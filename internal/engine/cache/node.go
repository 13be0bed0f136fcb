package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plansync/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plansync/internal/core/ports"
)

// NodeID is the unique identifier for the cache event bus Graft node.
const NodeID graft.ID = "engine.cache_bus"

func init() {
	graft.Register(graft.Node[*EventBus]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*EventBus, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEventBus(log), nil
		},
	})
}
