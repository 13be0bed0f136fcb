package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/plansync/internal/adapters/telemetry"
	"go.trai.ch/plansync/internal/app"
	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports/mocks"
	"go.trai.ch/plansync/internal/engine/cache"
	"go.trai.ch/plansync/internal/engine/plansync"
	"go.uber.org/mock/gomock"
)

// testComponents builds application components over mocks. No plan service
// or store expectations are set: the commands under test must not touch them.
func testComponents(t *testing.T) (*app.Components, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	kv := mocks.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()

	cfg := &domain.Config{
		AthleteID:           "athlete-1",
		CurrentTrainingWeek: 1,
		StorePath:           t.TempDir(),
	}

	bus := cache.NewEventBus(mockLogger)
	plans := cache.NewPlanCache(kv, domain.DefaultPlanTTL, mockLogger)
	controller := plansync.NewController(
		plansync.Options{AthleteID: cfg.AthleteID, CurrentTrainingWeek: cfg.CurrentTrainingWeek},
		mocks.NewMockPlanService(ctrl),
		plans,
		bus,
		mocks.NewMockWorkSession(ctrl),
		telemetry.NewNoOpTracer(),
		mockLogger,
	)

	application := app.New(cfg, controller, bus, nil, mocks.NewMockWorkSession(ctrl), mockLogger)

	return &app.Components{
		App:    application,
		Config: cfg,
		Logger: mockLogger,
	}, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _ := testComponents(t)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	components, mockLogger := testComponents(t)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"select", "soon"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
