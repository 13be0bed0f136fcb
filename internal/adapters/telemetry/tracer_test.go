package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/plansync/internal/adapters/telemetry"
	"go.trai.ch/plansync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_StartEnd(t *testing.T) {
	tracer := telemetry.NewOTelTracer("test")

	ctx, span := tracer.Start(context.Background(), "load_weekly_plan")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttribute("week", 3)
	span.SetAttribute("athlete", "runner-1")
	span.SetAttribute("fresh", true)
	span.RecordError(errors.New("transient"))
	span.End()
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "anything")
	assert.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestLogBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(log)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "fetch_plan")
	span.End()
}

func TestLogBridge_OnEnd_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(log)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewTracerFor(tp, "test")
	_, span := tracer.Start(context.Background(), "fetch_plan")
	span.RecordError(errors.New("service unavailable"))
	span.End()
}
