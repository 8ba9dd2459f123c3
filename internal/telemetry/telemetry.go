// Package telemetry installs the OpenTelemetry tracer provider and
// propagators used by the HTTP layer.
package telemetry

import (
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Propagator reads and writes W3C traceparent and baggage headers.
func Propagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
}

// NewTracerProvider builds an SDK provider. With a non-nil w, finished spans
// are written to it as JSON; otherwise spans are sampled but not exported,
// which still gives every request a trace id for the logs.
func NewTracerProvider(serviceName string, w io.Writer) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	}
	if w != nil {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}
	return sdktrace.NewTracerProvider(opts...), nil
}

// Setup builds the provider and installs it and the propagator globally.
// Callers shut the provider down on exit to flush spans.
func Setup(serviceName string, w io.Writer) (*sdktrace.TracerProvider, error) {
	tp, err := NewTracerProvider(serviceName, w)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(Propagator())
	return tp, nil
}
