package telemetry

import (
	"context"
	"time"

	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Phase describes a finished pipeline span.
type Phase struct {
	Name     string
	Case     string
	Duration time.Duration
	// Err is the span status description of a failed phase.
	Err string
}

// Failed reports whether the phase ended with an error status.
func (p Phase) Failed() bool {
	return p.Err != ""
}

// PhaseFunc receives every finished phase.
type PhaseFunc func(Phase)

// Bridge implements sdktrace.SpanProcessor and forwards ended spans as phases.
type Bridge struct {
	onEnd PhaseFunc
}

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// NewBridge returns a Bridge calling fn for every ended span.
func NewBridge(fn PhaseFunc) *Bridge {
	return &Bridge{onEnd: fn}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.onEnd == nil || !s.SpanContext().IsValid() {
		return
	}

	phase := Phase{
		Name:     s.Name(),
		Duration: s.EndTime().Sub(s.StartTime()),
	}
	for _, kv := range s.Attributes() {
		if kv.Key == attribute.Key(ports.CaseAttribute) {
			phase.Case = kv.Value.Emit()
		}
	}
	if s.Status().Code == codes.Error {
		phase.Err = s.Status().Description
		if phase.Err == "" {
			phase.Err = "phase failed"
		}
	}

	b.onEnd(phase)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// Install registers a tracer provider exporting to the given processors as
// the global provider. The returned function shuts the provider down.
func Install(processors ...sdktrace.SpanProcessor) func(context.Context) error {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
