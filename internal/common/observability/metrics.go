package observability

import (
	"context"
	"errors"
	"fmt"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

type Options struct {
	ServiceName    string
	ServiceVersion string
	TracingEnabled bool
	JaegerEndpoint string
	SampleRatio    float64
	// Registerer defaults to the global prometheus registry.
	Registerer promclient.Registerer
}

// Observability owns the OTel meter and tracer providers for the process.
type Observability struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	tracer         trace.Tracer

	recommendations otelmetric.Int64Counter
	stageDuration   otelmetric.Float64Histogram
}

func New(opts Options) (*Observability, error) {
	res := resource.NewSchemaless(
		attribute.String("service.name", opts.ServiceName),
		attribute.String("service.version", opts.ServiceVersion),
	)

	exporterOpts := []prometheus.Option{}
	if opts.Registerer != nil {
		exporterOpts = append(exporterOpts, prometheus.WithRegisterer(opts.Registerer))
	}
	exporter, err := prometheus.New(exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	o := &Observability{
		meterProvider: metric.NewMeterProvider(metric.WithReader(exporter), metric.WithResource(res)),
	}
	otel.SetMeterProvider(o.meterProvider)
	meter := o.meterProvider.Meter(opts.ServiceName)

	if o.recommendations, err = meter.Int64Counter(
		"recommendations.generated",
		otelmetric.WithDescription("Recommendation pipeline runs"),
	); err != nil {
		return nil, err
	}
	if o.stageDuration, err = meter.Float64Histogram(
		"recommendations.stage.duration",
		otelmetric.WithDescription("Duration of one pipeline stage"),
		otelmetric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}

	if opts.TracingEnabled {
		traceExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(opts.JaegerEndpoint)))
		if err != nil {
			return nil, fmt.Errorf("create jaeger exporter: %w", err)
		}
		o.tracerProvider = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(traceExporter),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))),
		)
		otel.SetTracerProvider(o.tracerProvider)
		o.tracer = o.tracerProvider.Tracer(opts.ServiceName)
	} else {
		o.tracer = otel.Tracer(opts.ServiceName)
	}

	return o, nil
}

// StartSpan starts a span on the configured tracer. Without tracing enabled
// the global no-op tracer is used.
func (o *Observability) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return o.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (o *Observability) RecordRecommendation(ctx context.Context, algorithm, strategy string, results int) {
	o.recommendations.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("algorithm", algorithm),
		attribute.String("strategy", strategy),
		attribute.Bool("empty", results == 0),
	))
}

func (o *Observability) RecordStageDuration(ctx context.Context, stage string, d time.Duration) {
	o.stageDuration.Record(ctx, float64(d.Microseconds())/1000, otelmetric.WithAttributes(
		attribute.String("stage", stage),
	))
}

func (o *Observability) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracerProvider != nil {
		errs = append(errs, o.tracerProvider.Shutdown(ctx))
	}
	if o.meterProvider != nil {
		errs = append(errs, o.meterProvider.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
