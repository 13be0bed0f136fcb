package cache

import (
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports"
)

// EventBus is the process-wide cache registry. It is the only component with
// global knowledge of which caches exist and which caches depend on which
// data domains. All access to the registry table is serialized.
//
// The bus is an explicitly constructed, injected value. There is no shared
// package-level instance.
type EventBus struct {
	log ports.Logger

	mu        sync.RWMutex
	caches    map[domain.CacheIdentity]ports.ClearableCache
	order     []domain.CacheIdentity
	listeners []ports.InvalidationListener
}

// NewEventBus creates an empty cache registry.
func NewEventBus(log ports.Logger) *EventBus {
	return &EventBus{
		log:    log,
		caches: make(map[domain.CacheIdentity]ports.ClearableCache),
	}
}

// Register adds a cache under its identity. Registration is idempotent by
// identity: the first registration wins and later calls are ignored, so a
// cache can never silently replace another's clear and expiry behavior.
func (b *EventBus) Register(cache ports.ClearableCache) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := cache.Identity()
	if _, exists := b.caches[id]; exists {
		b.log.Warn(fmt.Sprintf("cache %q already registered, ignoring", id))
		return
	}
	b.caches[id] = cache
	b.order = append(b.order, id)
}

// Subscribe adds a listener notified after each invalidation.
func (b *EventBus) Subscribe(listener ports.InvalidationListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, listener)
}

// Invalidate clears caches according to the reason, then notifies all
// listeners. Listener notification is fire-and-forget: a panicking listener
// is isolated and never blocks the others or the caller.
func (b *EventBus) Invalidate(reason domain.InvalidationReason) {
	switch reason.Kind {
	case domain.InvalidateUserLogout, domain.InvalidateManualClear:
		b.clearAll()
	case domain.InvalidateDataChanged:
		b.ClearCaches(domain.DependentCaches(reason.Domain))
	case domain.InvalidateExpired:
		b.clearExpired()
	}

	b.notify(reason)
}

// ClearCaches clears exactly the given identities. Unregistered identities
// are skipped. The static domain table, not data inspection, decides what is
// related; this method is also the path the store watcher uses when backing
// files change externally.
func (b *EventBus) ClearCaches(ids []domain.CacheIdentity) {
	for _, cache := range b.snapshot() {
		if slices.Contains(ids, cache.Identity()) {
			b.clearOne(cache)
		}
	}
}

func (b *EventBus) clearAll() {
	for _, cache := range b.snapshot() {
		b.clearOne(cache)
	}
}

func (b *EventBus) clearExpired() {
	for _, cache := range b.snapshot() {
		if cache.IsExpired() {
			b.clearOne(cache)
		}
	}
}

func (b *EventBus) clearOne(cache ports.ClearableCache) {
	if err := cache.Clear(); err != nil {
		b.log.Error(err)
	}
}

// snapshot returns the registered caches in registration order. Clearing
// happens outside the registry lock so a slow cache cannot block Register.
func (b *EventBus) snapshot() []ports.ClearableCache {
	b.mu.RLock()
	defer b.mu.RUnlock()

	caches := make([]ports.ClearableCache, 0, len(b.order))
	for _, id := range b.order {
		caches = append(caches, b.caches[id])
	}
	return caches
}

func (b *EventBus) notify(reason domain.InvalidationReason) {
	b.mu.RLock()
	listeners := slices.Clone(b.listeners)
	b.mu.RUnlock()

	for _, listener := range listeners {
		b.notifyOne(listener, reason)
	}
}

func (b *EventBus) notifyOne(listener ports.InvalidationListener, reason domain.InvalidationReason) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Warn(fmt.Sprintf("invalidation listener panicked for reason %s: %v", reason.Kind, r))
		}
	}()
	listener(reason)
}

// Status returns the diagnostics aggregate over all registered caches.
// It is read-only: no eviction happens as a side effect of querying.
func (b *EventBus) Status() domain.CacheStatus {
	caches := b.snapshot()

	status := domain.CacheStatus{
		TotalCaches: len(caches),
		Identities:  make([]domain.CacheIdentity, 0, len(caches)),
	}
	for _, cache := range caches {
		status.Identities = append(status.Identities, cache.Identity())
		status.TotalSizeBytes += cache.SizeBytes()
		if cache.IsExpired() {
			status.ExpiredCount++
		}
	}
	return status
}
