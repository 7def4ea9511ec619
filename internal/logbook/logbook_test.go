package logbook

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/yourusername/phonafind/internal/phoneme"
)

func TestTailReturnsRecentLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines := book.Tail(3)
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestLookupRecordsOutcomes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	results, err := phoneme.CommonFeatures(phoneme.Consonant, []phoneme.Code{1, 2})
	if err != nil {
		t.Fatalf("common features: %v", err)
	}
	book.Lookup(phoneme.Consonant, []phoneme.Code{1, 2}, results)
	lines := book.Tail(1)
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	for _, want := range []string{"lookup consonant", "Place of Articulation=Labial", "Voicing=(no common feature)"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("log line %q missing %q", lines[0], want)
		}
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Info("ignored")
	book.Lookup(phoneme.Vowel, nil, nil)
	if lines := book.Tail(5); lines != nil {
		t.Fatalf("nil logbook Tail = %v, want nil", lines)
	}
}
