package task_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plansync/internal/core/ports"
	"go.trai.ch/plansync/internal/core/ports/mocks"
	"go.trai.ch/plansync/internal/engine/task"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) ports.Logger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func TestCoordinator_Run_Completes(t *testing.T) {
	c := task.NewCoordinator(quietLogger(t))

	var ran bool
	completed := c.Run(context.Background(), "op", func(context.Context) error {
		ran = true
		return nil
	})

	assert.True(t, completed)
	assert.True(t, ran)
	assert.Equal(t, 0, c.ActiveCount())
}

func TestCoordinator_Run_FailureLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(1)

	c := task.NewCoordinator(log)
	completed := c.Run(context.Background(), "op", func(context.Context) error {
		return errors.New("boom")
	})

	assert.False(t, completed)
}

func TestCoordinator_Run_CancellationIsSilent(t *testing.T) {
	// The logger mock has no Error expectation: cancellation must never be
	// logged as a failure.
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	c := task.NewCoordinator(log)

	synctest.Test(t, func(t *testing.T) {
		started := make(chan struct{})
		done := make(chan bool, 1)

		go func() {
			done <- c.Run(context.Background(), "op", func(ctx context.Context) error {
				close(started)
				<-ctx.Done()
				return ctx.Err()
			})
		}()

		<-started
		c.Cancel("op")

		assert.False(t, <-done)
		assert.Equal(t, 0, c.ActiveCount())
	})
}

func TestCoordinator_Run_NewerPreemptsOlder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := task.NewCoordinator(quietLogger(t))

		firstStarted := make(chan struct{})
		firstResult := make(chan bool, 1)
		secondResult := make(chan bool, 1)

		go func() {
			firstResult <- c.Run(context.Background(), "op", func(ctx context.Context) error {
				close(firstStarted)
				<-ctx.Done()
				return ctx.Err()
			})
		}()

		<-firstStarted
		go func() {
			secondResult <- c.Run(context.Background(), "op", func(context.Context) error {
				return nil
			})
		}()

		assert.False(t, <-firstResult, "preempted run reports canceled")
		assert.True(t, <-secondResult, "replacement run completes")
		assert.Equal(t, 0, c.ActiveCount())
	})
}

func TestCoordinator_Run_BackToBackDeduplication(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := task.NewCoordinator(quietLogger(t))

		const n = 8
		var completedCount atomic.Int32
		var canceledCount atomic.Int32
		var wg sync.WaitGroup

		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok := c.Run(context.Background(), "op", func(ctx context.Context) error {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
						return nil
					}
				})
				if ok {
					completedCount.Add(1)
				} else {
					canceledCount.Add(1)
				}
			}()
		}

		wg.Wait()
		assert.Equal(t, 0, c.ActiveCount())
		// At most one body runs at a time; every issue either completed or
		// was preempted, never both.
		assert.EqualValues(t, n, completedCount.Load()+canceledCount.Load())
		assert.Positive(t, completedCount.Load())
	})
}

func TestCoordinator_Run_DistinctIDsRunConcurrently(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := task.NewCoordinator(quietLogger(t))

		bothRunning := make(chan struct{})
		release := make(chan struct{})
		var running atomic.Int32

		for _, id := range []string{"load_week_1", "load_week_2"} {
			go func() {
				c.Run(context.Background(), id, func(context.Context) error {
					if running.Add(1) == 2 {
						close(bothRunning)
					}
					<-release
					return nil
				})
			}()
		}

		<-bothRunning
		assert.Equal(t, 2, c.ActiveCount())
		assert.True(t, c.Active("load_week_1"))
		assert.True(t, c.Active("load_week_2"))

		close(release)
		synctest.Wait()
		assert.Equal(t, 0, c.ActiveCount())
	})
}

func TestCoordinator_Run_CallerContextCanceled(t *testing.T) {
	c := task.NewCoordinator(quietLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	completed := c.Run(ctx, "op", func(runCtx context.Context) error {
		return runCtx.Err()
	})
	assert.False(t, completed)
}

func TestCoordinator_Cancel_UnknownIsNoOp(t *testing.T) {
	c := task.NewCoordinator(quietLogger(t))
	c.Cancel("never_started")
}

func TestCoordinator_CancelAll(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := task.NewCoordinator(quietLogger(t))

		const n = 3
		started := make(chan struct{}, n)
		results := make(chan bool, n)

		for i := range n {
			id := []string{"a", "b", "c"}[i]
			go func() {
				results <- c.Run(context.Background(), id, func(ctx context.Context) error {
					started <- struct{}{}
					<-ctx.Done()
					return ctx.Err()
				})
			}()
		}

		for range n {
			<-started
		}

		c.CancelAll()

		for range n {
			assert.False(t, <-results)
		}
		assert.Equal(t, 0, c.ActiveCount())
	})
}

func TestExecute_ReturnsValue(t *testing.T) {
	c := task.NewCoordinator(quietLogger(t))

	got, ok := task.Execute(context.Background(), c, "op", func(context.Context) (int, error) {
		return 42, nil
	})
	require.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestExecute_FailureReturnsZero(t *testing.T) {
	c := task.NewCoordinator(quietLogger(t))

	got, ok := task.Execute(context.Background(), c, "op", func(context.Context) (string, error) {
		return "partial", errors.New("boom")
	})
	assert.False(t, ok)
	assert.Empty(t, got)
}
