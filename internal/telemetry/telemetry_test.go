package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func TestNewTracerProvider_ExportsToWriter(t *testing.T) {
	var buf bytes.Buffer
	tp, err := NewTracerProvider("shop-test", &buf)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "checkout")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"Name":"checkout"`)
	assert.Contains(t, buf.String(), "shop-test")
}

func TestNewTracerProvider_WithoutExporter(t *testing.T) {
	tp, err := NewTracerProvider("shop-test", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "checkout")
	defer span.End()

	assert.True(t, span.SpanContext().HasTraceID())
}

func TestSetup_InstallsGlobals(t *testing.T) {
	tp, err := Setup("shop-test", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	assert.Same(t, tp, otel.GetTracerProvider())

	ctx, span := otel.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	assert.Contains(t, carrier.Get("traceparent"), span.SpanContext().TraceID().String())
}
