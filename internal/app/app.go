// Package app implements the application layer for plansync.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/plansync/internal/adapters/watcher"
	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports"
	"go.trai.ch/plansync/internal/engine/plansync"
	"go.trai.ch/zerr"
)

// App represents the main application logic. Every command renders its
// result to the configured output writer; errors carry the failing step.
type App struct {
	config     *domain.Config
	controller *plansync.Controller
	registry   ports.CacheRegistry
	watcher    *watcher.StoreWatcher
	work       ports.WorkSession
	logger     ports.Logger
	out        io.Writer
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	controller *plansync.Controller,
	registry ports.CacheRegistry,
	storeWatcher *watcher.StoreWatcher,
	session ports.WorkSession,
	log ports.Logger,
) *App {
	return &App{
		config:     cfg,
		controller: controller,
		registry:   registry,
		watcher:    storeWatcher,
		work:       session,
		logger:     log,
		out:        os.Stdout,
	}
}

// WithOutput redirects rendered output.
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// StatusOptions configuration for the Status method.
type StatusOptions struct {
	// Watch keeps the process running and re-renders when the backing store
	// changes underneath the caches.
	Watch bool
}

// Status performs the offline-first cold start and renders the sync state
// together with the cache diagnostics aggregate. With Watch enabled it keeps
// watching the store until the context is canceled, re-rendering after every
// invalidation.
func (a *App) Status(ctx context.Context, opts StatusOptions) error {
	a.controller.Start(ctx)
	a.renderStatus()

	if !opts.Watch {
		return nil
	}
	if !a.config.WatchStore {
		a.logger.Warn("store watching is disabled in the configuration")
		return nil
	}

	a.registry.Subscribe(func(reason domain.InvalidationReason) {
		a.logger.Info(fmt.Sprintf("caches invalidated (%s)", reason.Kind))
		a.renderStatus()
	})
	if err := a.watcher.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return a.watcher.Stop()
}

// Refresh forces a revalidating fetch of the selected week.
func (a *App) Refresh(ctx context.Context) error {
	a.controller.Refresh(ctx)
	return a.renderOutcome(ctx)
}

// Select switches to the given training week. Past weeks answer from the
// cache or report that no plan exists; the current and future weeks fetch.
func (a *App) Select(ctx context.Context, week int) error {
	if week < 1 {
		return zerr.With(domain.ErrInvalidWeek, "week", fmt.Sprintf("%d", week))
	}
	a.controller.SelectWeek(ctx, week)
	return a.renderOutcome(ctx)
}

// Generate runs the next-week creation flow and adopts the created plan.
func (a *App) Generate(ctx context.Context) error {
	a.controller.GenerateNextWeek(ctx)
	a.awaitWork()
	return a.renderOutcome(ctx)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Purge removes the store directory itself after clearing the caches.
	Purge bool
}

// Clean clears all registered caches through the registry and optionally
// removes the backing store directory.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	before := a.registry.Status()
	a.registry.Invalidate(domain.ManualClear())
	a.logger.Info(fmt.Sprintf("cleared %d caches", before.TotalCaches))

	if opts.Purge {
		if err := os.RemoveAll(a.config.StorePath); err != nil {
			return zerr.Wrap(err, domain.ErrStoreRemoveFailed.Error())
		}
		a.logger.Info("removed store directory")
	}
	return nil
}

// Close tears down the controller and waits for in-flight work to release.
func (a *App) Close() {
	a.controller.Close()
	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Error(err)
		}
	}
	a.awaitWork()
}

// awaitWork blocks until every issued work token has been released, when the
// session supports waiting.
func (a *App) awaitWork() {
	if waiter, ok := a.work.(interface{ Wait() }); ok {
		waiter.Wait()
	}
}

// renderOutcome renders the current state and maps the error phase to a
// returned error so the CLI exits non-zero. Context cancellation is not a
// failure.
func (a *App) renderOutcome(ctx context.Context) error {
	state := a.controller.State()
	a.renderState(state)

	if state.Phase != domain.PhaseError {
		return nil
	}
	if ctx.Err() != nil {
		return nil
	}
	return errors.Join(domain.ErrSyncFailed, state.ErrorInfo.Err)
}
