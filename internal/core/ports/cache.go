package ports

import "go.trai.ch/plansync/internal/core/domain"

// ClearableCache is the handle every cache registers with the event bus.
// Implementations answer expiry and size questions without side effects.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ClearableCache interface {
	// Identity returns the cache's registry identity.
	Identity() domain.CacheIdentity

	// Clear removes the cache's persisted entries.
	Clear() error

	// IsExpired reports whether the cache's content has outlived its TTL.
	// An empty cache counts as expired.
	IsExpired() bool

	// SizeBytes returns the persisted size of the cache's entries.
	SizeBytes() int64
}

// InvalidationListener is notified after the event bus has cleared caches
// for a reason. Notification is fire-and-forget: a panicking listener is
// isolated and never blocks other listeners or the invalidation caller.
type InvalidationListener func(reason domain.InvalidationReason)

// CacheRegistry is the process-wide coordination point caches register with.
type CacheRegistry interface {
	// Register adds a cache under its identity. Registration is idempotent:
	// the first registration wins and later calls with the same identity
	// are ignored.
	Register(cache ClearableCache)

	// Invalidate clears caches according to the reason and then notifies
	// all listeners.
	Invalidate(reason domain.InvalidationReason)

	// Subscribe adds a listener for invalidation notifications.
	Subscribe(listener InvalidationListener)

	// Status returns a read-only aggregate for diagnostics. It has no side
	// effects: querying status never evicts.
	Status() domain.CacheStatus
}
