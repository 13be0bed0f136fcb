// Package task implements deduplication and cooperative cancellation for
// named asynchronous operations.
package task

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/plansync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Coordinator tracks the in-flight operations of a single owner, keyed by a
// caller-chosen operation id. For any id at most one body runs at a time:
// issuing an operation while one with the same id is running cancels the old
// one and waits for its teardown before the new body starts.
//
// Each owner (typically a controller) constructs its own Coordinator and
// must call CancelAll before becoming unreachable; an in-flight closure
// otherwise keeps the owner alive.
type Coordinator struct {
	log ports.Logger

	mu      sync.Mutex
	handles map[string]*handle
}

// handle is the live record of one running operation.
type handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewCoordinator creates a Coordinator for one owner.
func NewCoordinator(log ports.Logger) *Coordinator {
	return &Coordinator{
		log:     log,
		handles: make(map[string]*handle),
	}
}

// Run executes op under the deduplication contract and reports whether it
// completed normally. The three outcomes are disjoint:
//
//   - completed: op returned nil, Run returns true.
//   - canceled: a newer Run preempted this one, Cancel was called, or the
//     caller's context ended. Run returns false and nothing is logged;
//     cancellation is not an error and must never surface as one. The body
//     is responsible for checking its context before any state mutation.
//   - failed: op returned an error. Run logs it with the operation id and
//     returns false; the error is not re-thrown across this boundary.
//     Callers needing error detail must capture it inside op.
func (c *Coordinator) Run(ctx context.Context, id string, op func(context.Context) error) bool {
	h, runCtx, ok := c.acquire(ctx, id)
	if !ok {
		return false
	}
	defer c.release(id, h)

	err := op(runCtx)

	switch {
	case runCtx.Err() != nil || errors.Is(err, context.Canceled):
		return false
	case err != nil:
		c.log.Error(zerr.With(zerr.Wrap(err, "operation failed"), "operation", id))
		return false
	default:
		return true
	}
}

// acquire cancels any live handle for id, waits for its teardown, and
// registers a fresh handle. The loop guards against a concurrent Run for the
// same id registering between our wait and our registration: the new body
// may only start once it has observed the prior one's teardown.
func (c *Coordinator) acquire(ctx context.Context, id string) (*handle, context.Context, bool) {
	for {
		c.mu.Lock()
		if existing, exists := c.handles[id]; exists {
			existing.cancel()
			c.mu.Unlock()

			select {
			case <-existing.done:
			case <-ctx.Done():
				return nil, nil, false
			}
			continue
		}

		runCtx, cancel := context.WithCancel(ctx)
		h := &handle{cancel: cancel, done: make(chan struct{})}
		c.handles[id] = h
		c.mu.Unlock()
		return h, runCtx, true
	}
}

// release deregisters the handle and signals teardown. Only the handle that
// currently owns the id is removed; a successor registered after our
// cancellation is left alone.
func (c *Coordinator) release(id string, h *handle) {
	c.mu.Lock()
	if current, exists := c.handles[id]; exists && current == h {
		delete(c.handles, id)
	}
	c.mu.Unlock()

	h.cancel()
	close(h.done)
}

// Cancel cancels the operation with the given id, if any, and waits for its
// teardown. Canceling an unknown id is a no-op.
func (c *Coordinator) Cancel(id string) {
	c.mu.Lock()
	h, exists := c.handles[id]
	c.mu.Unlock()
	if !exists {
		return
	}

	h.cancel()
	<-h.done
}

// CancelAll cancels every in-flight operation and waits for all teardowns.
// Owners call this synchronously before they are torn down.
func (c *Coordinator) CancelAll() {
	c.mu.Lock()
	handles := make([]*handle, 0, len(c.handles))
	for _, h := range c.handles {
		handles = append(handles, h)
	}
	c.mu.Unlock()

	for _, h := range handles {
		h.cancel()
	}
	for _, h := range handles {
		<-h.done
	}
}

// Active reports whether an operation with the given id is in flight.
func (c *Coordinator) Active(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, exists := c.handles[id]
	return exists
}

// ActiveCount returns the number of in-flight operations.
func (c *Coordinator) ActiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}

// Execute runs op under the coordinator's deduplication contract and returns
// its value. ok is false when the operation was canceled, preempted, or
// failed; the zero value is returned in that case.
func Execute[T any](ctx context.Context, c *Coordinator, id string, op func(context.Context) (T, error)) (T, bool) {
	var result T
	completed := c.Run(ctx, id, func(runCtx context.Context) error {
		v, err := op(runCtx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	if !completed {
		var zero T
		return zero, false
	}
	return result, true
}
