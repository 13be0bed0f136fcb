package planapi

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plansync/internal/adapters/config"
	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports"
)

// NodeID is the unique identifier for the plan service Graft node.
const NodeID graft.ID = "adapter.plan_service"

func init() {
	graft.Register(graft.Node[ports.PlanService]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.PlanService, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.Service.BaseURL, cfg.Service.Timeout), nil
		},
	})
}
