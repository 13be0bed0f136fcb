// Package plansync implements the weekly plan synchronization state machine.
package plansync

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports"
	"go.trai.ch/plansync/internal/engine/cache"
	"go.trai.ch/plansync/internal/engine/task"
	"golang.org/x/sync/errgroup"
)

// Operation ids issued through the coordinator. The selected-week refresh
// uses a single id so a newer refresh preempts the running one; fetches for
// other weeks carry a per-week id so switching weeks does not cancel
// unrelated in-flight fetches.
const (
	OpLoadWeeklyPlan = "load_weekly_plan"
	OpGeneratePlan   = "generate_plan"

	opLoadWeekFormat = "load_weekly_plan_week_%d"
)

// Steps recorded in the error state for diagnostics.
const (
	stepFetchPlan  = "fetch_plan"
	stepCreatePlan = "create_plan"
	stepFetchNew   = "fetch_created_plan"
)

// Options configures a Controller.
type Options struct {
	// AthleteID is the athlete whose plans are synchronized.
	AthleteID string
	// CurrentTrainingWeek is the week the athlete is currently in.
	CurrentTrainingWeek int
	// TotalWeeks is the length of the training cycle, zero if unknown.
	TotalWeeks int
}

// Controller implements offline-first reads of the weekly training plan:
// cached data is published immediately while a coordinated background fetch
// revalidates it. It owns a task coordinator and publishes a single
// PlanSyncState to its consumer.
//
// A Controller has one logical owner. Close must be called before the owner
// is torn down so no in-flight operation outlives it.
type Controller struct {
	athleteID string
	service   ports.PlanService
	plans     *cache.PlanCache
	registry  ports.CacheRegistry
	work      ports.WorkSession
	tracer    ports.Tracer
	log       ports.Logger
	coord     *task.Coordinator

	mu                  sync.Mutex
	state               domain.PlanSyncState
	selectedWeek        int
	currentTrainingWeek int
	totalWeeks          int
	closed              bool
	onChange            func(domain.PlanSyncState)
}

// NewController creates a Controller. The plan cache must already be
// registered on the registry by the caller.
func NewController(
	opts Options,
	service ports.PlanService,
	plans *cache.PlanCache,
	registry ports.CacheRegistry,
	work ports.WorkSession,
	tracer ports.Tracer,
	log ports.Logger,
) *Controller {
	current := opts.CurrentTrainingWeek
	if current < 1 {
		current = 1
	}
	return &Controller{
		athleteID:           opts.AthleteID,
		service:             service,
		plans:               plans,
		registry:            registry,
		work:                work,
		tracer:              tracer,
		log:                 log,
		coord:               task.NewCoordinator(log),
		state:               domain.Loading(),
		selectedWeek:        current,
		currentTrainingWeek: current,
		totalWeeks:          opts.TotalWeeks,
	}
}

// SetOnChange registers the consumer's state callback. It is invoked after
// every publication, outside the controller's lock.
func (c *Controller) SetOnChange(fn func(domain.PlanSyncState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// State returns the published state. The completed and no-plan phases are
// derived from (selectedWeek, currentTrainingWeek, totalWeeks, cache
// presence) on every read; they are never stored flags.
func (c *Controller) State() domain.PlanSyncState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deriveLocked()
}

// SelectedWeek returns the currently selected week.
func (c *Controller) SelectedWeek() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedWeek
}

// CurrentTrainingWeek returns the week the athlete is currently in.
func (c *Controller) CurrentTrainingWeek() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTrainingWeek
}

// AvailableWeeks returns the selectable range [1, currentTrainingWeek].
func (c *Controller) AvailableWeeks() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	weeks := make([]int, 0, c.currentTrainingWeek)
	for w := 1; w <= c.currentTrainingWeek; w++ {
		weeks = append(weeks, w)
	}
	return weeks
}

// Start performs the cold start: the cached plan for the selected week is
// published immediately when present, loading otherwise, and a revalidating
// fetch runs concurrently with a sweep of expired caches. Start returns
// when both have finished; intermediate states reach the consumer through
// the onChange callback.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	week := c.selectedWeek
	if plan, ok := c.plans.Plan(week); ok {
		c.adoptPlanLocked(plan)
	} else {
		c.state = domain.Loading()
	}
	c.mu.Unlock()
	c.notify()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.fetchWeek(gctx, OpLoadWeeklyPlan, week)
		return nil
	})
	g.Go(func() error {
		c.registry.Invalidate(domain.Expired())
		return nil
	})
	_ = g.Wait()
}

// Refresh re-issues the selected week's fetch. A still-running fetch for the
// same operation id is canceled first by the coordinator contract.
func (c *Controller) Refresh(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	week := c.selectedWeek
	c.mu.Unlock()

	c.fetchWeek(ctx, OpLoadWeeklyPlan, week)
}

// SelectWeek switches the selected week. A cached plan for the new week is
// published synchronously; otherwise loading is published for that week and
// a fetch with a per-week operation id is issued, leaving fetches for other
// weeks untouched.
func (c *Controller) SelectWeek(ctx context.Context, week int) {
	if week < 1 {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.selectedWeek = week

	if plan, ok := c.plans.Plan(week); ok {
		c.adoptPlanLocked(plan)
		c.mu.Unlock()
		c.notify()
		return
	}

	c.state = domain.Loading()
	derived := c.deriveLocked()
	c.mu.Unlock()
	c.notify()

	// Past the cycle horizon or behind the current week there is nothing to
	// fetch; the derived state already answers.
	if derived.Phase == domain.PhaseCompleted || derived.Phase == domain.PhaseNoPlan {
		return
	}

	c.fetchWeek(ctx, fmt.Sprintf(opLoadWeekFormat, week), week)
}

// fetchWeek fetches the plan for one week through the coordinator and
// publishes the outcome. Cancellation publishes nothing.
func (c *Controller) fetchWeek(ctx context.Context, opID string, week int) {
	ctx, span := c.tracer.Start(ctx, "plansync.fetch_week")
	span.SetAttribute("week", week)
	defer span.End()

	c.coord.Run(ctx, opID, func(runCtx context.Context) error {
		plan, err := c.service.FetchPlan(runCtx, domain.PlanID(c.athleteID, week))
		if err != nil {
			if runCtx.Err() != nil || errors.Is(err, context.Canceled) {
				// Preempted or torn down: stop silently, no state mutation.
				return context.Canceled
			}
			if errors.Is(err, domain.ErrPlanNotFound) {
				// Expected outcome: nothing generated yet for this week.
				c.publishFetchOutcome(week, nil, nil)
				return nil
			}
			span.RecordError(err)
			c.publishFetchOutcome(week, nil, err)
			return err
		}

		if err := c.plans.WritePlan(plan); err != nil {
			// The fetched plan is still good; only persistence failed.
			span.RecordError(err)
		}
		c.registry.Invalidate(domain.DataChanged(domain.DomainTrainingPlan))

		// Final cancellation check before publication: state must never be
		// written based on since-invalidated premises.
		if runCtx.Err() != nil {
			return context.Canceled
		}
		c.publishFetchOutcome(week, plan, nil)
		return nil
	})
}

// GenerateNextWeek requests generation of the week after the current one
// and adopts it on success.
func (c *Controller) GenerateNextWeek(ctx context.Context) {
	c.mu.Lock()
	target := c.currentTrainingWeek + 1
	c.mu.Unlock()
	c.Generate(ctx, target)
}

// Generate runs the plan creation flow for the target week: create on the
// service, fetch the created plan by composite id, write through, invalidate
// dependents, publish ready. A failure at any step publishes error with the
// originating step recorded. The long-running-work token is released exactly
// once on every exit path, including cancellation.
func (c *Controller) Generate(ctx context.Context, targetWeek int) {
	if targetWeek < 1 {
		c.publishState(domain.SyncError(stepCreatePlan, domain.ErrInvalidWeek))
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	token := c.work.Begin(OpGeneratePlan)
	var release sync.Once
	endToken := func() {
		release.Do(func() { c.work.End(token) })
	}
	defer endToken()

	ctx, span := c.tracer.Start(ctx, "plansync.generate")
	span.SetAttribute("target_week", targetWeek)
	defer span.End()

	c.publishState(domain.Loading())

	c.coord.Run(ctx, OpGeneratePlan, func(runCtx context.Context) error {
		defer endToken()

		if err := c.service.CreatePlan(runCtx, targetWeek); err != nil {
			return c.failGenerate(runCtx, span, stepCreatePlan, err)
		}

		plan, err := c.service.FetchPlan(runCtx, domain.PlanID(c.athleteID, targetWeek))
		if err != nil {
			return c.failGenerate(runCtx, span, stepFetchNew, err)
		}

		if err := c.plans.WritePlan(plan); err != nil {
			span.RecordError(err)
		}
		c.registry.Invalidate(domain.DataChanged(domain.DomainTrainingPlan))

		if runCtx.Err() != nil {
			return context.Canceled
		}
		c.adoptGenerated(plan)
		return nil
	})
}

// failGenerate classifies a generation step failure. Cancellation stays
// silent; everything else, including not-found for a plan the service just
// acknowledged creating, is published as an error with the failing step.
func (c *Controller) failGenerate(runCtx context.Context, span ports.Span, step string, err error) error {
	if runCtx.Err() != nil || errors.Is(err, context.Canceled) {
		return context.Canceled
	}
	span.RecordError(err)
	c.publishState(domain.SyncError(step, err))
	return err
}

// adoptGenerated advances the cycle onto the freshly generated week.
func (c *Controller) adoptGenerated(plan *domain.WeeklyPlan) {
	c.mu.Lock()
	c.selectedWeek = plan.WeekNumber
	if plan.WeekNumber > c.currentTrainingWeek {
		c.currentTrainingWeek = plan.WeekNumber
	}
	c.adoptPlanLocked(plan)
	c.mu.Unlock()
	c.notify()
}

// Close cancels all in-flight operations and waits for their teardown.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.coord.CancelAll()
}

// publishFetchOutcome publishes the result of a week fetch. A result for a
// week that is no longer selected is dropped: ready is never populated with
// a plan whose week disagrees with the selection at publication time.
func (c *Controller) publishFetchOutcome(week int, plan *domain.WeeklyPlan, err error) {
	c.mu.Lock()
	if week != c.selectedWeek {
		c.mu.Unlock()
		return
	}
	switch {
	case err != nil:
		c.state = domain.SyncError(stepFetchPlan, err)
	case plan == nil:
		c.state = domain.NoPlan()
	default:
		c.adoptPlanLocked(plan)
	}
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) publishState(state domain.PlanSyncState) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
	c.notify()
}

// adoptPlanLocked sets ready and absorbs the plan's cycle metadata.
func (c *Controller) adoptPlanLocked(plan *domain.WeeklyPlan) {
	if plan.TotalWeeks > 0 {
		c.totalWeeks = plan.TotalWeeks
	}
	c.state = domain.Ready(plan)
}

// deriveLocked computes the effective state. The completed and no-plan
// answers are pure functions of the selection, the cycle bounds and cache
// presence, recomputed on every read so stored state can never drift from
// the facts it summarizes.
func (c *Controller) deriveLocked() domain.PlanSyncState {
	if c.totalWeeks > 0 && c.selectedWeek > c.totalWeeks {
		return domain.Completed()
	}
	if c.selectedWeek < c.currentTrainingWeek {
		if plan, ok := c.plans.Plan(c.selectedWeek); ok {
			return domain.Ready(plan)
		}
		return domain.NoPlan()
	}
	return c.state
}

// notify delivers the derived state to the consumer outside the lock.
func (c *Controller) notify() {
	c.mu.Lock()
	state := c.deriveLocked()
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}
