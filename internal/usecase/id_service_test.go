package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/assetid/internal/platform/id"
)

func TestIDService_Mint(t *testing.T) {
	t.Parallel()

	svc := NewIDService(nil, 8)

	got, err := svc.Mint(context.Background(), 0)
	if err != nil {
		t.Fatalf("mint default: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one id for zero count, got %d", len(got))
	}

	got, err = svc.Mint(context.Background(), 8)
	if err != nil {
		t.Fatalf("mint batch: %v", err)
	}
	for _, v := range got {
		if v.IsNull() {
			t.Fatalf("mint produced the null id")
		}
	}

	for _, count := range []int{-1, 9} {
		if _, err := svc.Mint(context.Background(), count); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("count=%d: expected ErrInvalidInput, got %v", count, err)
		}
	}
}

func TestIDService_Normalize_LegacyTokens(t *testing.T) {
	t.Parallel()

	svc := NewIDService(nil, 100)
	got, err := svc.Normalize(context.Background(), []id.Token{
		id.StringToken("a12b345"),
		id.UnsignedToken(12345),
		id.SignedToken(75300),
		id.StringToken("0"),
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	want := []NormalizedID{
		{Input: "a12b345", ID: id.FromRaw(0xa12b345)},
		{Input: "12345", ID: id.FromRaw(0x12345)},
		{Input: "75300", ID: id.FromRaw(0x75300)},
		{Input: "0", ID: id.Null},
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected count: %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestIDService_Normalize_ReportsFirstInvalid(t *testing.T) {
	t.Parallel()

	svc := NewIDService(nil, 100)
	_, err := svc.Normalize(context.Background(), []id.Token{
		id.StringToken("ff"),
		id.SignedToken(-42),
		id.StringToken("zzz"),
	})
	if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, id.ErrInvalidEncoding) {
		t.Fatalf("expected invalid encoding, got %v", err)
	}

	var encErr *id.InvalidEncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected InvalidEncodingError in chain, got %T", err)
	}
	if encErr.Token != "-42" || encErr.Shape != id.ShapeSigned {
		t.Fatalf("expected first failing token -42, got %+v", encErr)
	}
}

func TestIDService_Normalize_Empty(t *testing.T) {
	t.Parallel()

	got, err := NewIDService(nil, 1).Normalize(context.Background(), nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v, %v", got, err)
	}
}
