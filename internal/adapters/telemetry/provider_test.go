package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/a-nickol/maven-it-extension/internal/adapters/telemetry"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func attrMap(kvs []attribute.KeyValue) map[string]string {
	m := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value.Emit()
	}
	return m
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "prepare",
		ports.WithAttribute(ports.CaseAttribute, "com.example.BasicIT#build"),
		ports.WithAttribute("shared", true),
	)
	span.SetAttribute("exit_code", 1)
	span.SetAttribute("duration", 1500*time.Millisecond)
	span.SetAttribute("args", []string{"clean", "verify"})
	span.SetAttribute("other", struct{ A int }{A: 3})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "prepare", ended[0].Name())

	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "com.example.BasicIT#build", attrs[ports.CaseAttribute])
	assert.Equal(t, "true", attrs["shared"])
	assert.Equal(t, "1", attrs["exit_code"])
	assert.Equal(t, "1500", attrs["duration"])
	assert.Equal(t, `["clean","verify"]`, attrs["args"])
	assert.Equal(t, "{3}", attrs["other"])
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	// Without a span in the context the plan is dropped.
	tracer.EmitPlan(t.Context(), []string{"verify"})
	assert.Empty(t, sr.Ended())

	ctx, span := tracer.Start(t.Context(), "build")
	tracer.EmitPlan(ctx, []string{"-Dmaven.repo.local=/c", "verify"})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	events := ended[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)
	assert.Equal(t, `["-Dmaven.repo.local=/c","verify"]`, attrMap(events[0].Attributes)["args"])
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "run")
	span.RecordError(nil)
	span.RecordError(errors.New("boom"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestOTelSpan_Write(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "run")
	n, err := span.Write([]byte("[INFO] BUILD SUCCESS"))
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	span.End()

	events := sr.Ended()[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "log", events[0].Name)
	assert.Equal(t, "[INFO] BUILD SUCCESS", attrMap(events[0].Attributes)["message"])
}

func TestOTelTracer_ChildSpans(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	ctx, parent := tracer.Start(t.Context(), "execute")
	_, child := tracer.Start(ctx, "prepare")
	child.End()
	parent.End()

	ended := sr.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "prepare", ended[0].Name())
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}
