package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

// hotPathTracers and hotPathSpans name the per-node instrumentation that
// would otherwise dominate a trace: parsing emits one span per source
// file and the metric aggregator one per syntax node visited.
var (
	hotPathTracers = map[string]struct{}{
		"complexityscope.jswalker": {},
	}

	hotPathSpans = map[string]struct{}{
		"complexityscope.metrics.process_node": {},
	}
)

// NewFilteringTracerProvider wraps delegate so hot-path spans come from a
// no-op tracer while structural spans (one per module analysed, one per
// project stage) are recorded normally.
func NewFilteringTracerProvider(delegate trace.TracerProvider) trace.TracerProvider {
	return &spanFilterProvider{
		delegate: delegate,
		noop:     nooptrace.NewTracerProvider(),
	}
}

type spanFilterProvider struct {
	embedded.TracerProvider

	delegate trace.TracerProvider
	noop     trace.TracerProvider
}

// Tracer returns a no-op tracer for suppressed tracer names; every other
// tracer still filters individual hot-path span names.
func (p *spanFilterProvider) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	if _, hot := hotPathTracers[name]; hot {
		return p.noop.Tracer(name, opts...)
	}

	return &spanFilterTracer{
		delegate: p.delegate.Tracer(name, opts...),
		noop:     p.noop.Tracer(name, opts...),
	}
}

type spanFilterTracer struct {
	embedded.Tracer

	delegate trace.Tracer
	noop     trace.Tracer
}

func (t *spanFilterTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if _, hot := hotPathSpans[name]; hot {
		return t.noop.Start(ctx, name, opts...)
	}

	return t.delegate.Start(ctx, name, opts...)
}
