package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("assetid/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens a child span for handler methods only. Middleware and
// response helpers share the request span opened by otelhttp.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

// startHandlerSpan is startSpan for a routed request. It also names the
// otelhttp span after the matched pattern, which is only known once the mux
// has routed the request.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx := r.Context()
	if r.Pattern != "" {
		parent := trace.SpanFromContext(ctx)
		parent.SetName(r.Pattern)
		parent.SetAttributes(attribute.String("http.route", routeOf(r.Pattern)))
	}
	return startSpan(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// routeOf drops the method prefix from a ServeMux pattern.
func routeOf(pattern string) string {
	if _, route, found := strings.Cut(pattern, " "); found {
		return route
	}
	return pattern
}
