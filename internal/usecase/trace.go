package usecase

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/assetid/internal/platform/id"
)

var usecaseTracer = otel.Tracer("assetid/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only starts a child span when the caller is already traced.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name)
}

func assetIDAttr(v id.U64ID) attribute.KeyValue {
	return attribute.String("asset.id", v.Encode())
}

// endWithError marks the span failed for errors the caller cannot fix by
// changing the request. Client errors are recorded as events only.
func endWithError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	if isClientError(err) {
		return
	}
	span.SetStatus(codes.Error, err.Error())
}

func isClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, id.ErrInvalidEncoding)
}
