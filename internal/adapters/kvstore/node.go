package kvstore

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/plansync/internal/adapters/config"
	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the key-value store Graft node.
const NodeID graft.ID = "adapter.kvstore"

func init() {
	graft.Register(graft.Node[ports.KeyValueStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.KeyValueStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			if err := os.MkdirAll(cfg.StorePath, domain.DirPerm); err != nil {
				return nil, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
			}
			return NewStore(cfg.StorePath), nil
		},
	})
}
