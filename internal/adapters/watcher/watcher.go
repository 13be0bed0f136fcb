package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports"
	"go.trai.ch/zerr"
)

// debounceWindow coalesces bursts of store file events. External tools tend
// to rewrite several entries in quick succession.
const debounceWindow = 250 * time.Millisecond

// CacheClearer clears a specific set of caches. Satisfied by the cache
// event bus.
type CacheClearer interface {
	ClearCaches(identities []domain.CacheIdentity)
}

// LocalWriteTracker answers whether a store path was recently written by
// this process. Satisfied by the kvstore adapter.
type LocalWriteTracker interface {
	Root() string
	WrittenLocally(path string) bool
}

// StoreWatcher watches the key-value store directory and clears the caches
// whose buckets were changed by another process. Changes performed through
// this process's own store are suppressed.
type StoreWatcher struct {
	fsWatcher *fsnotify.Watcher
	store     LocalWriteTracker
	clearer   CacheClearer
	log       ports.Logger
	debouncer *Debouncer
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewStoreWatcher creates a watcher over the given store.
func NewStoreWatcher(store LocalWriteTracker, clearer CacheClearer, log ports.Logger) (*StoreWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	w := &StoreWatcher{
		fsWatcher: fsWatcher,
		store:     store,
		clearer:   clearer,
		log:       log,
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(debounceWindow, w.clearChanged)
	return w, nil
}

// Start begins watching the store root and its bucket directories.
func (w *StoreWatcher) Start(ctx context.Context) error {
	root := w.store.Root()
	if err := w.fsWatcher.Add(root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "root", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "root", root)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			if err := w.fsWatcher.Add(filepath.Join(root, entry.Name())); err != nil {
				return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
			}
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	go w.processEvents(runCtx)

	return nil
}

// Stop halts event processing, flushes pending invalidations and releases
// the underlying watcher.
func (w *StoreWatcher) Stop() error {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
	err := w.fsWatcher.Close()
	w.debouncer.Flush()
	return err
}

// processEvents filters raw fsnotify events down to external store changes.
func (w *StoreWatcher) processEvents(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn(fmt.Sprintf("store watcher: %v", err))
		}
	}
}

func (w *StoreWatcher) handleEvent(event fsnotify.Event) {
	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	if event.Op&relevant == 0 {
		return
	}

	// New bucket directory: watch it, it belongs to a cache we may not
	// have written yet.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.fsWatcher.Add(event.Name)
			return
		}
	}

	if filepath.Ext(event.Name) != ".dat" {
		return
	}
	if w.store.WrittenLocally(event.Name) {
		return
	}

	w.debouncer.Add(event.Name)
}

// clearChanged maps debounced paths back to cache identities and clears
// them through the event bus.
func (w *StoreWatcher) clearChanged(paths []string) {
	seen := make(map[domain.CacheIdentity]struct{})
	var identities []domain.CacheIdentity

	for _, path := range paths {
		identity, ok := w.identityFor(path)
		if !ok {
			continue
		}
		if _, dup := seen[identity]; dup {
			continue
		}
		seen[identity] = struct{}{}
		identities = append(identities, identity)
	}

	if len(identities) == 0 {
		return
	}

	names := make([]string, len(identities))
	for i, id := range identities {
		names[i] = string(id)
	}
	w.log.Info(fmt.Sprintf("store changed externally, clearing caches: %s", strings.Join(names, ", ")))
	w.clearer.ClearCaches(identities)
}

// identityFor resolves a store file path to the cache identity owning its
// bucket directory.
func (w *StoreWatcher) identityFor(path string) (domain.CacheIdentity, bool) {
	rel, err := filepath.Rel(w.store.Root(), path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}

	bucket := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, identity := range domain.AllCacheIdentities() {
		if bucket == string(identity) {
			return identity, true
		}
	}
	return "", false
}
