package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get phase: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("pq: relation phases does not exist")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := fmt.Errorf("insert phase: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "23503"}) {
			t.Fatalf("expected false for foreign key violation")
		}
		if isUniqueViolation(fakeErr("duplicate key")) {
			t.Fatalf("expected false for non pq error")
		}
	})
}

func TestNullHelpers(t *testing.T) {
	if got := nullTimeToTimePtr(sql.NullTime{}); got != nil {
		t.Fatalf("expected nil time, got %v", got)
	}
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if got := nullTimeToTimePtr(sql.NullTime{Time: at, Valid: true}); got == nil || !got.Equal(at) {
		t.Fatalf("unexpected time: %v", got)
	}

	if got := nullStringValue(sql.NullString{String: " t01 ", Valid: true}); got != "t01" {
		t.Fatalf("unexpected string: %q", got)
	}
	if got := nullStringValue(sql.NullString{}); got != "" {
		t.Fatalf("expected empty string for null, got %q", got)
	}

	if got := optionalString("  "); got != nil {
		t.Fatalf("expected nil for blank value, got %q", *got)
	}
	if got := optionalString("m-1"); got == nil || *got != "m-1" {
		t.Fatalf("unexpected optional string: %v", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
