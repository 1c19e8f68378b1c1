package observability

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

const (
	attrTraceID = "trace_id"
	attrSpanID  = "span_id"
	attrService = "service"
	attrEnv     = "env"
)

// TracingHandler is an [slog.Handler] that stamps every record with the
// active OpenTelemetry trace context (trace_id, span_id). Service
// identity (service, env) is attached once at construction, directly on
// the wrapped handler, so it stays at the top level even after
// WithGroup.
type TracingHandler struct {
	inner slog.Handler
}

// NewTracingHandler wraps inner with trace-context injection and the
// given service identity. An empty env is omitted entirely.
func NewTracingHandler(inner slog.Handler, service, env string) *TracingHandler {
	identity := []slog.Attr{slog.String(attrService, service)}

	if env != "" {
		identity = append(identity, slog.String(attrEnv, env))
	}

	return &TracingHandler{inner: inner.WithAttrs(identity)}
}

// Enabled delegates to the wrapped handler.
func (h *TracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle stamps the record with the span context carried by ctx, if any,
// then delegates. Records logged outside a span pass through untouched.
func (h *TracingHandler) Handle(ctx context.Context, record slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		record.AddAttrs(
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	if err := h.inner.Handle(ctx, record); err != nil {
		return fmt.Errorf("tracing handler: %w", err)
	}

	return nil
}

// WithAttrs wraps the result of the inner handler's WithAttrs.
func (h *TracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TracingHandler{inner: h.inner.WithAttrs(attrs)}
}

// WithGroup wraps the result of the inner handler's WithGroup.
func (h *TracingHandler) WithGroup(name string) slog.Handler {
	return &TracingHandler{inner: h.inner.WithGroup(name)}
}
