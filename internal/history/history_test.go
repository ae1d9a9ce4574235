package history

import (
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecentOrdersByLastOpened(t *testing.T) {
	s := openStore(t)

	for _, p := range []string{"/a/1.8.json", "/a/1.12.json", "/a/1.8.json"} {
		if err := s.RecordIndex(p); err != nil {
			t.Fatalf("RecordIndex(%s): %v", p, err)
		}
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("reopening must not duplicate: %v", got)
	}
}

func TestRecentLimit(t *testing.T) {
	s := openStore(t)
	for _, p := range []string{"/a", "/b", "/c"} {
		if err := s.RecordIndex(p); err != nil {
			t.Fatal(err)
		}
	}
	got, err := s.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("limit ignored: %v", got)
	}
}

func TestRecordExtraction(t *testing.T) {
	s := openStore(t)
	if err := s.RecordExtraction("lang", "/out/1.8", 12); err != nil {
		t.Fatalf("RecordExtraction: %v", err)
	}

	var files int
	err := s.db.QueryRow(
		`SELECT files FROM extractions WHERE virtual_path = ?`, "lang").Scan(&files)
	if err != nil {
		t.Fatalf("query extraction: %v", err)
	}
	if files != 12 {
		t.Errorf("files: %d", files)
	}
}

func TestNilStoreIsNoOp(t *testing.T) {
	var s *Store
	if err := s.RecordIndex("/x"); err != nil {
		t.Error(err)
	}
	if err := s.RecordExtraction("a", "b", 1); err != nil {
		t.Error(err)
	}
	if got, err := s.Recent(5); err != nil || got != nil {
		t.Errorf("Recent on nil store: %v, %v", got, err)
	}
	if err := s.Close(); err != nil {
		t.Error(err)
	}
}
