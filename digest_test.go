package carton

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDigestStable(t *testing.T) {
	s := openTestStore(t)

	s.Insert("users", map[string]any{"name": "John"})

	first, err := s.Digest()
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	second, _ := s.Digest()
	if first != second {
		t.Errorf("Digest not stable: %q then %q", first, second)
	}
	if len(first) != 16 {
		t.Errorf("Digest length = %d, want 16", len(first))
	}
}

func TestDigestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.json")

	s1, _ := Open(path, Config{})
	s1.Insert("users", map[string]any{"name": "John"})
	before, _ := s1.Digest()
	s1.Close()

	s2, _ := Open(path, Config{})
	defer s2.Close()

	after, _ := s2.Digest()
	if before != after {
		t.Errorf("Digest changed across reopen: %q then %q", before, after)
	}
}

func TestDigestChangesOnMutation(t *testing.T) {
	s := openTestStore(t)

	empty, _ := s.Digest()

	rec, _ := s.Insert("users", map[string]any{"name": "John"})
	inserted, _ := s.Digest()
	if inserted == empty {
		t.Error("Digest unchanged by insert")
	}

	s.RemoveByID("users", rec.ID())
	removed, _ := s.Digest()
	if removed == inserted {
		t.Error("Digest unchanged by remove")
	}
}

func TestDigestAlgorithms(t *testing.T) {
	for _, alg := range []int{AlgXXHash3, AlgFNV1a, AlgBlake2b} {
		dir := t.TempDir()
		s, err := Open(filepath.Join(dir, "test.json"), Config{DigestAlgorithm: alg})
		if err != nil {
			t.Fatalf("Open alg %d: %v", alg, err)
		}

		s.Insert("users", map[string]any{"name": "John"})

		d, err := s.Digest()
		if err != nil {
			t.Fatalf("Digest alg %d: %v", alg, err)
		}
		if len(d) != 16 {
			t.Errorf("alg %d: digest length = %d, want 16", alg, len(d))
		}
		s.Close()
	}
}

func TestDigestUnknownAlgorithm(t *testing.T) {
	_, err := digest([]byte("{}"), 99)
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("digest alg 99: got %v, want ErrUnknownAlgorithm", err)
	}
}
