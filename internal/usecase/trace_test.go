package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/assetid/internal/platform/id"
)

func TestIsClientError(t *testing.T) {
	_, decodeErr := id.Parse("xyz")

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "invalid input", err: fmt.Errorf("%w: name", ErrInvalidInput), want: true},
		{name: "not found", err: fmt.Errorf("%w: asset=*1", ErrNotFound), want: true},
		{name: "conflict", err: ErrConflict, want: true},
		{name: "bad encoding", err: decodeErr, want: true},
		{name: "storage down", err: fmt.Errorf("%w: postgres", ErrDependencyUnavailable), want: false},
		{name: "unknown", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isClientError(tt.err); got != tt.want {
				t.Fatalf("isClientError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestStartUsecaseSpan_UntracedContext(t *testing.T) {
	ctx := context.Background()
	got, span := startUsecaseSpan(ctx, "usecase.AssetService.Get")
	if got != ctx || span != usecaseNoopSpan {
		t.Fatalf("expected no span for an untraced context")
	}
	endWithError(span, errors.New("ignored"))
	span.End()
}
