package telemetry

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/testsel/testsel/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	noneTraceExporterType    traceExporterType = "none"
	consoleTraceExporterType traceExporterType = "console"

	traceParentParts = 4
)

type traceExporterType string

// Tracer wraps an OpenTelemetry tracer together with its provider.
type Tracer struct {
	trace.Tracer
	provider          *sdktrace.TracerProvider
	spanExporter      sdktrace.SpanExporter
	parentSpanContext *trace.SpanContext
}

// NewTracer creates and configures the traces collection. A nil Tracer is returned when tracing is disabled.
func NewTracer(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Tracer, error) {
	spanExporter, err := NewTraceExporter(ctx, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	if spanExporter == nil { // no exporter
		return nil, nil
	}

	provider, err := newTraceProvider(spanExporter, appName, appVersion)
	if err != nil {
		return nil, errors.New(err)
	}

	otel.SetTracerProvider(provider)

	tracer := &Tracer{
		Tracer:       provider.Tracer(appName),
		provider:     provider,
		spanExporter: spanExporter,
	}

	if opts.TraceParent != "" {
		spanContext, err := parseTraceParent(opts.TraceParent)
		if err != nil {
			return nil, err
		}

		tracer.parentSpanContext = &spanContext
	}

	return tracer, nil
}

// NewTraceExporter creates a new exporter based on the telemetry options.
func NewTraceExporter(_ context.Context, writer io.Writer, opts *Options) (sdktrace.SpanExporter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	switch traceExporterType(opts.TraceExporter) {
	case consoleTraceExporterType:
		return stdouttrace.New(stdouttrace.WithWriter(writer))
	case noneTraceExporterType:
	}

	return nil, nil
}

// Trace collects traces for method execution.
func (tracer *Tracer) Trace(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if tracer == nil || tracer.spanExporter == nil || tracer.provider == nil { // invoke function without tracing
		return fn(ctx)
	}

	if tracer.parentSpanContext != nil && !trace.SpanContextFromContext(ctx).IsValid() {
		ctx = trace.ContextWithRemoteSpanContext(ctx, *tracer.parentSpanContext)
	}

	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(mapToAttributes(attrs)...))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	return nil
}

// newTraceProvider creates a new trace provider with the application name and version.
func newTraceProvider(exp sdktrace.SpanExporter, appName, appVersion string) (*sdktrace.TracerProvider, error) {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(appName),
			semconv.ServiceVersion(appVersion),
		),
	)
	if err != nil {
		return nil, errors.New(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	), nil
}

func parseTraceParent(value string) (trace.SpanContext, error) {
	parts := strings.Split(value, "-")
	if len(parts) != traceParentParts {
		return trace.SpanContext{}, errors.New(&InvalidTraceParentError{Value: value})
	}

	_, traceIDHex, spanIDHex, traceFlagsStr := parts[0], parts[1], parts[2], parts[3]

	parsedFlag, err := strconv.Atoi(traceFlagsStr)
	if err != nil {
		return trace.SpanContext{}, errors.Errorf("invalid trace flags: %w", err)
	}

	traceFlags := trace.FlagsSampled
	if parsedFlag == 0 {
		traceFlags = 0
	}

	traceID, err := trace.TraceIDFromHex(traceIDHex)
	if err != nil {
		return trace.SpanContext{}, errors.New(err)
	}

	spanID, err := trace.SpanIDFromHex(spanIDHex)
	if err != nil {
		return trace.SpanContext{}, errors.New(err)
	}

	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: traceFlags,
		Remote:     true,
	}), nil
}
