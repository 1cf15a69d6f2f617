package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var apiTracer = otel.Tracer("fut-draft/internal/interfaces/httpapi")

// startHandlerSpan opens a child of the otelhttp server span tagged with the matched route.
// Requests the tracing middleware filtered out carry no parent and get it back unchanged.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx := r.Context()
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, parent
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attribute.String("http.route", routePattern(r))))
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}
