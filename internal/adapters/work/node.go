package work

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plansync/internal/adapters/logger"
	"go.trai.ch/plansync/internal/core/ports"
)

// NodeID is the unique identifier for the work session Graft node.
const NodeID graft.ID = "adapter.work_session"

func init() {
	graft.Register(graft.Node[ports.WorkSession]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkSession, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSession(log), nil
		},
	})
}
