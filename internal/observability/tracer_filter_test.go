package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/complexityscope/complexityscope/internal/observability"
)

func recordingProvider() (*tracetest.InMemoryExporter, trace.TracerProvider) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	return exporter, observability.NewFilteringTracerProvider(tp)
}

func TestFilteringProvider_HotPathTracerIsSilent(t *testing.T) {
	t.Parallel()

	exporter, fp := recordingProvider()

	// the whole jswalker tracer is hot-path: parse spans fire once per
	// source file.
	_, span := fp.Tracer("complexityscope.jswalker").Start(context.Background(), "complexityscope.jswalker.parse")
	span.End()

	assert.Empty(t, exporter.GetSpans())
}

func TestFilteringProvider_HotPathSpanNameIsSilent(t *testing.T) {
	t.Parallel()

	exporter, fp := recordingProvider()
	tracer := fp.Tracer("complexityscope.metrics")

	_, structural := tracer.Start(context.Background(), "complexityscope.metrics.analyse_module")
	structural.End()

	_, perNode := tracer.Start(context.Background(), "complexityscope.metrics.process_node")
	perNode.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "complexityscope.metrics.analyse_module", spans[0].Name)
}

func TestFilteringProvider_StructuralSpansPassThrough(t *testing.T) {
	t.Parallel()

	exporter, fp := recordingProvider()

	_, span := fp.Tracer("complexityscope.project").Start(context.Background(), "complexityscope.project.floyd_warshall")
	span.End()

	require.Len(t, exporter.GetSpans(), 1)
}

func TestFilteringProvider_SuppressedSpanStillUsable(t *testing.T) {
	t.Parallel()

	fp := observability.NewFilteringTracerProvider(nooptrace.NewTracerProvider())

	ctx, span := fp.Tracer("complexityscope.jswalker").Start(context.Background(), "complexityscope.jswalker.parse")
	span.SetName("renamed")
	span.End()

	assert.NotNil(t, ctx)
}
