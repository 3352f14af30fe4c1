package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/assetid/internal/platform/id"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches wrapped unique violation", func(t *testing.T) {
		err := fmt.Errorf("insert asset: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for 23505")
		}
	})

	t.Run("ignores other pq errors", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "42P01"}) {
			t.Fatalf("expected false for undefined table")
		}
	})

	t.Run("ignores non pq errors", func(t *testing.T) {
		if isUniqueViolation(fmt.Errorf("boom")) {
			t.Fatalf("expected false for plain error")
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("select: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(sql.ErrConnDone) {
		t.Fatalf("expected false for ErrConnDone")
	}
}

func TestEncodeIDs(t *testing.T) {
	got := encodeIDs([]id.U64ID{id.FromRaw(0x12345), id.FromRaw(123454321)})
	if len(got) != 2 || got[0] != "12345" || got[1] != "75bc371" {
		t.Fatalf("unexpected encoded ids: %v", got)
	}
}

func TestOrderByIDs(t *testing.T) {
	now := time.Now()
	rows := []assetTableModel{
		{ID: id.FromRaw(1), Name: "a", Kind: "k", CreatedAt: now},
		{ID: id.FromRaw(2), Name: "b", Kind: "k", CreatedAt: now},
	}

	got := orderByIDs(rows, []id.U64ID{id.FromRaw(2), id.FromRaw(3), id.FromRaw(1)})
	if len(got) != 2 {
		t.Fatalf("unexpected count: %d", len(got))
	}
	if got[0].ID != id.FromRaw(2) || got[1].ID != id.FromRaw(1) {
		t.Fatalf("unexpected order: %v", got)
	}
}
