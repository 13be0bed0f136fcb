package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plansync/internal/core/domain"
)

func TestDependentCaches_TotalOverAllDomains(t *testing.T) {
	known := domain.AllCacheIdentities()

	for _, d := range domain.AllDataDomains() {
		t.Run(d.String(), func(t *testing.T) {
			ids := domain.DependentCaches(d)
			for _, id := range ids {
				assert.Contains(t, known, id, "table references an unknown cache identity")
			}
		})
	}
}

func TestDependentCaches_ReturnsCopy(t *testing.T) {
	first := domain.DependentCaches(domain.DomainWorkouts)
	require.NotEmpty(t, first)

	first[0] = domain.CacheIdentity("mutated")
	second := domain.DependentCaches(domain.DomainWorkouts)
	assert.NotEqual(t, first[0], second[0], "callers must not be able to mutate the table")
}

func TestDependentCaches_ProducerExcludedFromOwnDomain(t *testing.T) {
	// The fetch flow writes the plan cache and then fires dataChanged for
	// the plan domain; the table must not wipe the fresh entry.
	ids := domain.DependentCaches(domain.DomainTrainingPlan)
	assert.NotContains(t, ids, domain.CacheTrainingPlan)
}

func TestInvalidationReasons(t *testing.T) {
	assert.Equal(t, domain.InvalidateUserLogout, domain.UserLogout().Kind)
	assert.Equal(t, domain.InvalidateManualClear, domain.ManualClear().Kind)
	assert.Equal(t, domain.InvalidateExpired, domain.Expired().Kind)

	reason := domain.DataChanged(domain.DomainVDOT)
	assert.Equal(t, domain.InvalidateDataChanged, reason.Kind)
	assert.Equal(t, domain.DomainVDOT, reason.Domain)
}

func TestInvalidationKind_String(t *testing.T) {
	assert.Equal(t, "user_logout", domain.InvalidateUserLogout.String())
	assert.Equal(t, "data_changed", domain.InvalidateDataChanged.String())
	assert.Equal(t, "manual_clear", domain.InvalidateManualClear.String())
	assert.Equal(t, "expired", domain.InvalidateExpired.String())
}

func TestDataDomain_StringIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range domain.AllDataDomains() {
		name := d.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate domain name %q", name)
		seen[name] = true
	}
}

func TestPlanID(t *testing.T) {
	assert.Equal(t, "athlete-1-week-3", domain.PlanID("athlete-1", 3))
}

func TestPlanSyncState_Constructors(t *testing.T) {
	plan := &domain.WeeklyPlan{WeekNumber: 2}

	assert.Equal(t, domain.PhaseLoading, domain.Loading().Phase)
	assert.Equal(t, domain.PhaseNoPlan, domain.NoPlan().Phase)
	assert.Equal(t, domain.PhaseCompleted, domain.Completed().Phase)

	ready := domain.Ready(plan)
	assert.Equal(t, domain.PhaseReady, ready.Phase)
	assert.Same(t, plan, ready.Plan)

	errState := domain.SyncError("fetch_plan", assert.AnError)
	assert.Equal(t, domain.PhaseError, errState.Phase)
	require.NotNil(t, errState.ErrorInfo)
	assert.Equal(t, "fetch_plan", errState.ErrorInfo.Step)
	assert.Equal(t, assert.AnError, errState.ErrorInfo.Err)
}
