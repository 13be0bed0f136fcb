// Package kvstore implements the key-value store over one file per key.
package kvstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/zerr"
)

// localWriteWindow is how long a path counts as locally written. The store
// watcher uses this to tell our own writes apart from external changes.
const localWriteWindow = 2 * time.Second

// Store implements ports.KeyValueStore using a file-per-key strategy.
//
// A key's first path segment (up to the first '/') selects a bucket
// directory; the remainder is hashed into the filename. The bucket keeps the
// on-disk layout inspectable per cache and lets the store watcher attribute
// external file changes to a cache identity.
type Store struct {
	root string

	mu     sync.Mutex
	recent map[string]time.Time
}

// NewStore creates a store rooted at the given directory. The directory is
// created on first write.
func NewStore(root string) *Store {
	return &Store{
		root:   root,
		recent: make(map[string]time.Time),
	}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Get retrieves the bytes stored under key. Returns nil, nil if absent.
func (s *Store) Get(key string) ([]byte, error) {
	//nolint:gosec // Path is constructed from the store root and a hashed filename
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}
	return data, nil
}

// Set stores the bytes under key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "key", key)
	}

	s.markLocalWrite(path)

	//nolint:gosec // Path is constructed from the store root and a hashed filename
	if err := os.WriteFile(path, value, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	return nil
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	path := s.path(key)
	s.markLocalWrite(path)

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreRemoveFailed.Error()), "key", key)
	}
	return nil
}

// WrittenLocally reports whether the path was modified through this store
// within the local-write window. The watcher uses it to suppress
// self-triggered invalidations.
func (s *Store) WrittenLocally(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	at, exists := s.recent[path]
	if !exists {
		return false
	}
	if time.Since(at) > localWriteWindow {
		delete(s.recent, path)
		return false
	}
	return true
}

// markLocalWrite records a mutation and prunes stale entries.
func (s *Store) markLocalWrite(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for p, at := range s.recent {
		if now.Sub(at) > localWriteWindow {
			delete(s.recent, p)
		}
	}
	s.recent[path] = now
}

// path maps a key to its file. Keys like "training_plan/week/3" land in
// <root>/training_plan/<xxhash of "week/3">.dat; keys without a separator
// land directly in the root.
func (s *Store) path(key string) string {
	bucket, rest, found := strings.Cut(key, "/")
	if !found {
		rest = bucket
		bucket = ""
	}

	name := fmt.Sprintf("%016x.dat", xxhash.Sum64String(rest))
	if bucket == "" {
		return filepath.Join(s.root, name)
	}
	return filepath.Join(s.root, sanitizeBucket(bucket), name)
}

// BucketFor returns the bucket directory a key is stored under, relative to
// the root. Used by the watcher to map file events back to cache buckets.
func BucketFor(key string) string {
	bucket, _, found := strings.Cut(key, "/")
	if !found {
		return ""
	}
	return sanitizeBucket(bucket)
}

// sanitizeBucket keeps bucket directory names to a safe character set.
func sanitizeBucket(bucket string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, bucket)
}
