package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"svw.info/keypad/internal/domain"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleReport() *domain.Report {
	codes := []string{"029A", "980A"}
	return &domain.Report{
		ID:         domain.ReportID(codes, 2),
		Depth:      2,
		Codes:      codes,
		Presses:    []int{68, 60},
		Complexity: 60772,
		DurationMs: 1,
		CreatedAt:  1735000000,
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()
	in := sampleReport()
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := s.Load(ctx, in.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Complexity != in.Complexity || out.Depth != in.Depth {
		t.Fatalf("roundtrip mismatch: got %+v, want %+v", out, in)
	}
	if len(out.Codes) != 2 || out.Codes[0] != "029A" {
		t.Fatalf("codes not preserved: %v", out.Codes)
	}
	if len(out.Presses) != 2 || out.Presses[1] != 60 {
		t.Fatalf("presses not preserved: %v", out.Presses)
	}
}

func TestLoadMissing(t *testing.T) {
	s := openTestDB(t)
	if _, err := s.Load(context.Background(), "deadbeefdeadbeef"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load of missing ID: err = %v, want ErrNotFound", err)
	}
}

func TestSaveOverwritesSameID(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()
	r := sampleReport()
	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("Save: %v", err)
	}
	r.Complexity = 999
	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	out, err := s.Load(ctx, r.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Complexity != 999 {
		t.Fatalf("overwrite lost: complexity = %d", out.Complexity)
	}
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("duplicate rows after overwrite: %d", len(list))
	}
	if list[0].CodeCount != 2 {
		t.Fatalf("CodeCount = %d, want 2", list[0].CodeCount)
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := openTestDB(t)
	if err := s.Save(context.Background(), &domain.Report{}); err == nil {
		t.Fatalf("Save without ID should fail")
	}
}
