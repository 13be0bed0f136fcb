package domain

// SyncPhase discriminates the published plan synchronization states.
type SyncPhase uint8

const (
	// PhaseLoading indicates a fetch is in flight and no usable plan is cached.
	PhaseLoading SyncPhase = iota
	// PhaseNoPlan indicates no plan exists yet for the selected week.
	PhaseNoPlan
	// PhaseReady indicates a plan for the selected week is available.
	PhaseReady
	// PhaseCompleted indicates the selected week is past the end of the cycle.
	PhaseCompleted
	// PhaseError indicates the last fetch or generation failed.
	PhaseError
)

// String returns the phase name used in logs and the status command.
func (p SyncPhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseNoPlan:
		return "no_plan"
	case PhaseReady:
		return "ready"
	case PhaseCompleted:
		return "completed"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// SyncErrorInfo carries diagnostic detail for the error state. Step records
// which part of a multi-step flow failed; Err is the underlying cause and is
// logged, not shown to the athlete.
type SyncErrorInfo struct {
	Step string
	Err  error
}

// PlanSyncState is the single published state of the plan sync controller.
// Plan is set only in PhaseReady; ErrorInfo only in PhaseError. A ready state
// always carries a plan whose week number matches the selected week at the
// moment it was published.
type PlanSyncState struct {
	Phase     SyncPhase
	Plan      *WeeklyPlan
	ErrorInfo *SyncErrorInfo
}

// Loading returns the loading state.
func Loading() PlanSyncState {
	return PlanSyncState{Phase: PhaseLoading}
}

// NoPlan returns the no-plan state.
func NoPlan() PlanSyncState {
	return PlanSyncState{Phase: PhaseNoPlan}
}

// Ready returns the ready state carrying the given plan.
func Ready(plan *WeeklyPlan) PlanSyncState {
	return PlanSyncState{Phase: PhaseReady, Plan: plan}
}

// Completed returns the cycle-completed state.
func Completed() PlanSyncState {
	return PlanSyncState{Phase: PhaseCompleted}
}

// SyncError returns the error state with the originating step recorded.
func SyncError(step string, err error) PlanSyncState {
	return PlanSyncState{Phase: PhaseError, ErrorInfo: &SyncErrorInfo{Step: step, Err: err}}
}
