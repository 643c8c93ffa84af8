package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer for the application.
var tracer = otel.Tracer("pressdesk")

// Setup installs a tracer provider that samples every request and a W3C
// propagator. No exporter is attached here; deployments add one through the
// standard OTEL environment variables or a collector sidecar. The returned
// shutdown function flushes pending spans.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	res, err := sdkresource.New(ctx,
		sdkresource.WithAttributes(attribute.String("service.name", serviceName)),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown, nil
}

// GetTracer returns the application tracer for creating spans.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "save-article")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
