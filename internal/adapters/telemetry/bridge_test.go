package telemetry_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/a-nickol/maven-it-extension/internal/adapters/telemetry"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type phaseSink struct {
	mu     sync.Mutex
	phases []telemetry.Phase
}

func (s *phaseSink) record(p telemetry.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phases = append(s.phases, p)
}

func TestBridge_OnEnd(t *testing.T) {
	sink := &phaseSink{}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(sink.record)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := tp.Tracer("test")
	_, prepared := tracer.Start(t.Context(), "prepare")
	prepared.End()

	_, failed := tracer.Start(t.Context(), "run")
	failed.SetStatus(codes.Error, "")
	failed.End()

	require.Len(t, sink.phases, 2)
	assert.Equal(t, "prepare", sink.phases[0].Name)
	assert.False(t, sink.phases[0].Failed())
	assert.GreaterOrEqual(t, int64(sink.phases[0].Duration), int64(0))
	assert.Equal(t, "run", sink.phases[1].Name)
	assert.Equal(t, "phase failed", sink.phases[1].Err)
}

func TestBridge_NilFunc(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(t.Context(), "prepare")
	span.End()
}

func TestInstall(t *testing.T) {
	sink := &phaseSink{}
	shutdown := telemetry.Install(telemetry.NewBridge(sink.record))
	defer func() { require.NoError(t, shutdown(context.Background())) }()

	tracer := telemetry.NewOTelTracer("test")
	_, span := tracer.Start(t.Context(), "publish",
		ports.WithAttribute(ports.CaseAttribute, "com.example.BasicIT#build"))
	span.RecordError(errors.New("disk full"))
	span.End()

	require.Len(t, sink.phases, 1)
	assert.Equal(t, "publish", sink.phases[0].Name)
	assert.Equal(t, "com.example.BasicIT#build", sink.phases[0].Case)
	assert.Equal(t, "disk full", sink.phases[0].Err)
	assert.True(t, sink.phases[0].Failed())
}
