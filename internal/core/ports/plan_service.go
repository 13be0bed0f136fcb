package ports

import (
	"context"

	"go.trai.ch/plansync/internal/core/domain"
)

// PlanService is the remote service that generates and serves weekly plans.
// Implementations must distinguish "no plan generated yet" from transport
// failures: a missing plan is reported as domain.ErrPlanNotFound.
//
//go:generate mockgen -source=plan_service.go -destination=mocks/mock_plan_service.go -package=mocks
type PlanService interface {
	// FetchPlan retrieves the weekly plan with the given composite id.
	// Returns domain.ErrPlanNotFound if no plan exists for the id.
	FetchPlan(ctx context.Context, planID string) (*domain.WeeklyPlan, error)

	// CreatePlan asks the service to generate the plan for the target week.
	// The created plan is fetched separately by its composite id.
	CreatePlan(ctx context.Context, targetWeek int) error
}
