package plansync

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plansync/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plansync/internal/adapters/kvstore"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plansync/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plansync/internal/adapters/planapi"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plansync/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plansync/internal/adapters/work"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports"
	"go.trai.ch/plansync/internal/engine/cache"
)

// NodeID is the unique identifier for the plan sync controller Graft node.
const NodeID graft.ID = "engine.plan_controller"

func init() {
	graft.Register(graft.Node[*Controller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			kvstore.NodeID,
			cache.NodeID,
			planapi.NodeID,
			work.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Controller, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			kv, err := graft.Dep[ports.KeyValueStore](ctx)
			if err != nil {
				return nil, err
			}
			bus, err := graft.Dep[*cache.EventBus](ctx)
			if err != nil {
				return nil, err
			}
			service, err := graft.Dep[ports.PlanService](ctx)
			if err != nil {
				return nil, err
			}
			session, err := graft.Dep[ports.WorkSession](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			// All typed caches register here so the registry's domain fan-out
			// is populated before any invalidation can fire.
			plans := cache.NewPlanCache(kv, cfg.TTL.TrainingPlan, log)
			bus.Register(plans)
			bus.Register(cache.NewSummaryCache(kv, cfg.TTL.WeeklySummary, log))
			bus.Register(cache.NewWorkoutsCache(kv, cfg.TTL.Workouts, log))
			bus.Register(cache.NewTargetsCache(kv, cfg.TTL.Targets, log))

			opts := Options{
				AthleteID:           cfg.AthleteID,
				CurrentTrainingWeek: cfg.CurrentTrainingWeek,
				TotalWeeks:          cfg.TotalWeeks,
			}
			return NewController(opts, service, plans, bus, session, tracer, log), nil
		},
	})
}
