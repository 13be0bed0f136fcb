// Package cache implements the cache entry abstraction and the event bus
// that coordinates invalidation across registered caches.
package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports"
	"go.trai.ch/zerr"
)

// schemaVersion is bumped when the envelope layout changes. Entries with an
// unknown version are treated as corrupt and cleared on read.
const schemaVersion = 1

// envelope is the persisted form of a cache entry. CapturedAt is integral
// Unix epoch seconds; time-indexed data is never keyed by wall-clock date
// values.
type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	CapturedAt    int64           `json:"captured_at_unix"`
	Payload       json.RawMessage `json:"payload"`
}

// Clock returns the current time. Injected so TTL behavior is testable.
type Clock func() time.Time

// StoreOption configures a Store.
type StoreOption func(*storeConfig)

type storeConfig struct {
	now Clock
}

// WithClock overrides the store's clock.
func WithClock(now Clock) StoreOption {
	return func(c *storeConfig) {
		c.now = now
	}
}

// Store pairs one typed payload with its capture time under a single logical
// key on the KeyValueStore. It owns (de)serialization; callers never see the
// storage format. A Store is safe for concurrent use.
type Store[T any] struct {
	identity domain.CacheIdentity
	key      string
	ttl      time.Duration
	kv       ports.KeyValueStore
	log      ports.Logger
	now      Clock

	mu sync.Mutex
}

// NewStore creates a typed entry store for the given identity and key.
func NewStore[T any](
	identity domain.CacheIdentity,
	key string,
	ttl time.Duration,
	kv ports.KeyValueStore,
	log ports.Logger,
	opts ...StoreOption,
) *Store[T] {
	cfg := storeConfig{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store[T]{
		identity: identity,
		key:      key,
		ttl:      ttl,
		kv:       kv,
		log:      log,
		now:      cfg.now,
	}
}

// Identity returns the cache identity the store belongs to.
func (s *Store[T]) Identity() domain.CacheIdentity {
	return s.identity
}

// Key returns the logical key the store writes under.
func (s *Store[T]) Key() string {
	return s.key
}

// TTL returns the store's time-to-live.
func (s *Store[T]) TTL() time.Duration {
	return s.ttl
}

// Write serializes the payload with the current capture time and persists
// it, replacing any previous entry wholesale. On failure the error is logged
// and the previous entry, if any, is left intact.
func (s *Store[T]) Write(payload T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(payload)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrEntryEncodeFailed.Error()), "key", s.key)
		s.log.Error(wrapped)
		return wrapped
	}

	data, err := json.Marshal(envelope{
		SchemaVersion: schemaVersion,
		CapturedAt:    s.now().Unix(),
		Payload:       raw,
	})
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrEntryEncodeFailed.Error()), "key", s.key)
		s.log.Error(wrapped)
		return wrapped
	}

	if err := s.kv.Set(s.key, data); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", s.key)
		s.log.Error(wrapped)
		return wrapped
	}

	return nil
}

// Read deserializes the entry and returns its payload. A missing entry
// returns ok=false. A corrupt entry is cleared immediately and reported as
// missing: a partially decodable payload is never handed to a caller.
func (s *Store[T]) Read() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	env, ok := s.readEnvelopeLocked(true)
	if !ok {
		return zero, false
	}

	var payload T
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		s.clearCorruptLocked(err)
		return zero, false
	}

	return payload, true
}

// Age returns the time since the entry was captured, or ok=false if absent.
func (s *Store[T]) Age() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	env, ok := s.readEnvelopeLocked(false)
	if !ok {
		return 0, false
	}
	return s.now().Sub(time.Unix(env.CapturedAt, 0)), true
}

// IsExpired reports whether the entry's age exceeds the TTL.
// Absence counts as expired. This is a pure query: a corrupt entry reports
// expired but is only cleared by Read or the registry's expired sweep.
func (s *Store[T]) IsExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	env, ok := s.readEnvelopeLocked(false)
	if !ok {
		return true
	}
	return s.now().Sub(time.Unix(env.CapturedAt, 0)) > s.ttl
}

// SizeBytes returns the persisted size of the entry, zero if absent.
func (s *Store[T]) SizeBytes() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(s.key)
	if err != nil || data == nil {
		return 0
	}
	return int64(len(data))
}

// Clear removes the entry.
func (s *Store[T]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

func (s *Store[T]) clearLocked() error {
	if err := s.kv.Remove(s.key); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "key", s.key)
	}
	return nil
}

// readEnvelopeLocked loads and decodes the envelope. When clearCorrupt is
// set, an undecodable entry is removed before reporting absence.
func (s *Store[T]) readEnvelopeLocked(clearCorrupt bool) (envelope, bool) {
	data, err := s.kv.Get(s.key)
	if err != nil {
		s.log.Error(zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", s.key))
		return envelope{}, false
	}
	if data == nil {
		return envelope{}, false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if clearCorrupt {
			s.clearCorruptLocked(err)
		}
		return envelope{}, false
	}
	if env.SchemaVersion != schemaVersion {
		if clearCorrupt {
			s.clearCorruptLocked(fmt.Errorf("unsupported schema version %d", env.SchemaVersion))
		}
		return envelope{}, false
	}

	return env, true
}

func (s *Store[T]) clearCorruptLocked(cause error) {
	s.log.Warn(fmt.Sprintf("clearing corrupt cache entry %q: %v", s.key, cause))
	if err := s.clearLocked(); err != nil {
		s.log.Error(err)
	}
}
