package score

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "scores.dat"))
}

func TestMissingFileIsEmptyLeaderboard(t *testing.T) {
	s := newTestStore(t)
	entries, err := s.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty leaderboard, got %d entries", len(entries))
	}
}

func TestAppendAndSortDescending(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Append("ALPHA", 1200); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := s.Append("BRAVO", 4400); err != nil {
		t.Fatalf("Append: %v", err)
	}
	entries, err := s.Append("CHARLIE", 300)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []Entry{{"BRAVO", 4400}, {"ALPHA", 1200}, {"CHARLIE", 300}}
	for i, e := range want {
		if entries[i] != e {
			t.Errorf("entry %d: got %+v, want %+v", i, entries[i], e)
		}
	}
}

func TestMalformedScoreAbortsParse(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.path, []byte("GOOD 100 BAD oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); err == nil {
		t.Error("expected parse error for non-numeric score")
	}
}

func TestDanglingFieldAbortsParse(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.path, []byte("GOOD 100 DANGLING"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); err == nil {
		t.Error("expected parse error for dangling field")
	}
}

func TestTopCapsLength(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 15; i++ {
		if _, err := s.Append("P", i*100); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	entries, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	top := Top(entries, 10)
	if len(top) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(top))
	}
	if top[0].Score != 1400 {
		t.Errorf("expected best score first, got %d", top[0].Score)
	}
	for i := 1; i < len(top); i++ {
		if top[i].Score > top[i-1].Score {
			t.Errorf("entries not descending at %d", i)
		}
	}
}
