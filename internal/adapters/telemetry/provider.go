package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/plansync/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor and forwards completed spans
// to the application logger. It gives sync operations a lightweight timing
// trail without requiring an external collector.
type LogBridge struct {
	log ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(log ports.Logger) *LogBridge {
	return &LogBridge{log: log}
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the completed span with its duration.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	duration := s.EndTime().Sub(s.StartTime())
	msg := fmt.Sprintf("%s took %s", s.Name(), duration.Round(time.Millisecond))

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "failed"
		}
		b.log.Warn(fmt.Sprintf("%s (%s)", msg, desc))
		return
	}
	b.log.Info(msg)
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// InstallProvider registers a global tracer provider that forwards span
// timings to the logger. The returned function shuts the provider down.
func InstallProvider(log ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogBridge(log)))
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
