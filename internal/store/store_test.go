package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Astreocclu/arc-citadel-sub001/internal/battle"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestSaveAndGetReport ensures a report round-trips through the store.
func TestSaveAndGetReport(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	report := battle.Report{
		Winner:  "soldier",
		Outcome: "incapacitated",
		Ticks:   42,
		Logs:    []string{"t0: soldier strikes civilian, no counter"},
	}
	id, err := s.SaveReport(ctx, report)
	if err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	row, err := s.GetReport(ctx, id)
	if err != nil {
		t.Fatalf("GetReport returned error: %v", err)
	}
	if row.Report.Winner != "soldier" || row.Report.Ticks != 42 {
		t.Fatalf("unexpected report: %+v", row.Report)
	}
	if len(row.Report.Logs) != 1 {
		t.Fatalf("logs lost in round trip: %v", row.Report.Logs)
	}
	if row.CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}
}

// TestGetMissingReport ensures a missing id maps to ErrNotFound.
func TestGetMissingReport(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetReport(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetReport error = %v, want ErrNotFound", err)
	}
}

// TestListReportsNewestFirst ensures listing order and limit.
func TestListReportsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := s.SaveReport(ctx, battle.Report{Winner: "a", Ticks: i}); err != nil {
			t.Fatalf("SaveReport returned error: %v", err)
		}
	}

	rows, err := s.ListReports(ctx, 2)
	if err != nil {
		t.Fatalf("ListReports returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].ID <= rows[1].ID {
		t.Fatalf("expected newest first, got ids %d, %d", rows[0].ID, rows[1].ID)
	}
}

// TestOpenRejectsEmptyPath ensures a blank path is refused.
func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
