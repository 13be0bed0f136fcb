// Package domain contains the core value types for plan synchronization
// and cache coordination.
package domain

// CacheIdentity identifies one logical cache within the registry.
type CacheIdentity string

// Well-known cache identities. Every identity referenced by the
// domain dependency table must be listed here.
const (
	CacheTrainingPlan  CacheIdentity = "training_plan"
	CacheWeeklySummary CacheIdentity = "weekly_summary"
	CacheWorkouts      CacheIdentity = "workouts_v2"
	CacheTargets       CacheIdentity = "training_targets"
)

// AllCacheIdentities returns every well-known cache identity.
func AllCacheIdentities() []CacheIdentity {
	return []CacheIdentity{CacheTrainingPlan, CacheWeeklySummary, CacheWorkouts, CacheTargets}
}

// DataDomain is a semantic category of data. A change in a domain implies
// that a fixed set of caches must be considered stale.
type DataDomain uint8

const (
	// DomainWorkouts covers completed and planned workout records.
	DomainWorkouts DataDomain = iota
	// DomainTrainingPlan covers the weekly training plan.
	DomainTrainingPlan
	// DomainWeeklySummary covers aggregated weekly load summaries.
	DomainWeeklySummary
	// DomainTargets covers training targets and paces.
	DomainTargets
	// DomainUser covers the athlete profile.
	DomainUser
	// DomainHealthData covers imported health platform samples.
	DomainHealthData
	// DomainHRV covers heart rate variability samples.
	DomainHRV
	// DomainVDOT covers fitness estimate values.
	DomainVDOT

	domainCount
)

// String returns the domain name used in logs and diagnostics.
func (d DataDomain) String() string {
	switch d {
	case DomainWorkouts:
		return "workouts"
	case DomainTrainingPlan:
		return "training_plan"
	case DomainWeeklySummary:
		return "weekly_summary"
	case DomainTargets:
		return "targets"
	case DomainUser:
		return "user"
	case DomainHealthData:
		return "health_data"
	case DomainHRV:
		return "hrv"
	case DomainVDOT:
		return "vdot"
	default:
		return "unknown"
	}
}

// AllDataDomains returns every defined data domain.
func AllDataDomains() []DataDomain {
	domains := make([]DataDomain, 0, domainCount)
	for d := DataDomain(0); d < domainCount; d++ {
		domains = append(domains, d)
	}
	return domains
}

// dependentCaches is the static domain -> affected caches table. It is the
// single source of truth for invalidation fan-out: caches not listed for a
// domain are untouched even if they transitively reference the same backend
// data. The table must stay total over all DataDomain values; totality is
// enforced by a test. Adding a cache means updating this table by hand.
// A domain's set lists the caches made stale by a change in that domain.
// The cache a producing flow has just written is not in its own domain's
// set: the fetch path writes through and then fires dataChanged, which must
// not wipe the fresh entry.
var dependentCaches = map[DataDomain][]CacheIdentity{
	DomainWorkouts:      {CacheWorkouts, CacheWeeklySummary},
	DomainTrainingPlan:  {CacheWeeklySummary, CacheTargets},
	DomainWeeklySummary: {CacheWeeklySummary},
	DomainTargets:       {CacheTargets},
	DomainUser:          {CacheTrainingPlan, CacheWeeklySummary, CacheWorkouts, CacheTargets},
	DomainHealthData:    {CacheWorkouts, CacheWeeklySummary},
	DomainHRV:           {},
	DomainVDOT:          {CacheTargets},
}

// DependentCaches returns the identities whose contents must be considered
// stale when the given domain changes. The returned slice is a copy.
func DependentCaches(d DataDomain) []CacheIdentity {
	ids, ok := dependentCaches[d]
	if !ok {
		return nil
	}
	out := make([]CacheIdentity, len(ids))
	copy(out, ids)
	return out
}

// InvalidationKind discriminates invalidation reasons.
type InvalidationKind uint8

const (
	// InvalidateUserLogout clears every registered cache on logout.
	InvalidateUserLogout InvalidationKind = iota
	// InvalidateDataChanged clears the caches dependent on a data domain.
	InvalidateDataChanged
	// InvalidateManualClear clears every registered cache on user request.
	InvalidateManualClear
	// InvalidateExpired clears only caches whose TTL has elapsed.
	InvalidateExpired
)

// String returns the reason kind name used in logs.
func (k InvalidationKind) String() string {
	switch k {
	case InvalidateUserLogout:
		return "user_logout"
	case InvalidateDataChanged:
		return "data_changed"
	case InvalidateManualClear:
		return "manual_clear"
	case InvalidateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// InvalidationReason describes why caches are being invalidated.
// Domain is only meaningful when Kind is InvalidateDataChanged.
type InvalidationReason struct {
	Kind   InvalidationKind
	Domain DataDomain
}

// UserLogout returns the logout invalidation reason.
func UserLogout() InvalidationReason {
	return InvalidationReason{Kind: InvalidateUserLogout}
}

// DataChanged returns the invalidation reason for a changed data domain.
func DataChanged(d DataDomain) InvalidationReason {
	return InvalidationReason{Kind: InvalidateDataChanged, Domain: d}
}

// ManualClear returns the manual clear invalidation reason.
func ManualClear() InvalidationReason {
	return InvalidationReason{Kind: InvalidateManualClear}
}

// Expired returns the TTL sweep invalidation reason.
func Expired() InvalidationReason {
	return InvalidationReason{Kind: InvalidateExpired}
}

// CacheStatus is a read-only aggregate over the registered caches,
// exposed for diagnostics only.
type CacheStatus struct {
	TotalCaches    int
	TotalSizeBytes int64
	ExpiredCount   int
	Identities     []CacheIdentity
}
