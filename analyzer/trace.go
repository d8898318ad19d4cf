package analyzer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Tracer opens the analyzer's OpenTelemetry spans: the root driver opens
// one "analyze-form" span, tagged with a form-index attribute, around each
// read of a form from its source, and the fn* analyzer opens one
// "analyze-arity" span per arity.
type Tracer struct {
	name string
}

// NewTracer returns a Tracer that looks up its span tracer by name from the
// globally configured TracerProvider each time it opens a span.
func NewTracer(name string) Tracer {
	return Tracer{name: name}
}

func (t Tracer) tracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(t.name)
}

// StartForm opens a span named "analyze-form" tagged with the form's index
// within the root driver's input stream, returning a context carrying the
// span and a func to end it.
func (t Tracer) StartForm(ctx context.Context, index int) (context.Context, func()) {
	spanCtx, span := t.tracer().Start(ctx, "analyze-form",
		trace.WithAttributes(attribute.Int("jank.form_index", index)))
	return spanCtx, func() { span.End() }
}

// StartArity opens a span named "analyze-arity" tagged with the arity's
// parameter count and variadic flag, returning a context carrying the span
// and a func to end it.
func (t Tracer) StartArity(ctx context.Context, paramCount int, variadic bool) (context.Context, func()) {
	spanCtx, span := t.tracer().Start(ctx, "analyze-arity",
		trace.WithAttributes(
			attribute.Int("jank.param_count", paramCount),
			attribute.Bool("jank.variadic", variadic),
		))
	return spanCtx, func() { span.End() }
}
