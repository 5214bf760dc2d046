package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches no rows", func(t *testing.T) {
		if !isNotFound(sql.ErrNoRows) {
			t.Fatalf("expected true for sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(fmt.Errorf("pq: relation fixtures does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestNullInt64ToInt64(t *testing.T) {
	t.Run("returns value", func(t *testing.T) {
		got := nullInt64ToInt64(sql.NullInt64{Int64: 123, Valid: true})
		if got != 123 {
			t.Fatalf("expected 123, got %d", got)
		}
	})

	t.Run("returns zero for null", func(t *testing.T) {
		got := nullInt64ToInt64(sql.NullInt64{})
		if got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})
}

func TestNullInt64ToIntPtr(t *testing.T) {
	t.Run("returns pointer", func(t *testing.T) {
		got := nullInt64ToIntPtr(sql.NullInt64{Int64: 2, Valid: true})
		if got == nil || *got != 2 {
			t.Fatalf("expected pointer to 2, got %v", got)
		}
	})

	t.Run("returns nil for null", func(t *testing.T) {
		if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}

func TestInt64Args(t *testing.T) {
	got := int64Args([]int64{7, 9})
	if len(got) != 2 {
		t.Fatalf("expected 2 args, got %d", len(got))
	}
	if got[0] != int64(7) || got[1] != int64(9) {
		t.Fatalf("unexpected args: %v", got)
	}
}
