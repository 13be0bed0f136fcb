package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plansync/internal/adapters/kvstore"
	"go.trai.ch/plansync/internal/adapters/logger"
	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports"
	"go.trai.ch/plansync/internal/engine/cache"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the store watcher Graft node.
const NodeID graft.ID = "adapter.store_watcher"

func init() {
	graft.Register(graft.Node[*StoreWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{kvstore.NodeID, cache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*StoreWatcher, error) {
			kv, err := graft.Dep[ports.KeyValueStore](ctx)
			if err != nil {
				return nil, err
			}
			store, ok := kv.(*kvstore.Store)
			if !ok {
				return nil, zerr.With(domain.ErrWatcherStartFailed, "reason", "store does not track local writes")
			}

			bus, err := graft.Dep[*cache.EventBus](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewStoreWatcher(store, bus, log)
		},
	})
}
