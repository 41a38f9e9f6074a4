package carton

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestInsertAssignsID(t *testing.T) {
	s := openTestStore(t)

	rec, err := s.Insert("users", map[string]any{"name": "John"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	id := rec.ID()
	if id == "" {
		t.Fatal("Insert returned record with empty id")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("id %q is not a canonical UUID: %v", id, err)
	}
}

func TestInsertReturnsPayload(t *testing.T) {
	s := openTestStore(t)

	rec, err := s.Insert("users", map[string]any{"name": "John", "age": 30})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if rec["name"] != "John" {
		t.Errorf("name = %v, want John", rec["name"])
	}
	if rec["age"] != 30 {
		t.Errorf("age = %v, want 30", rec["age"])
	}
}

func TestInsertAutoCreatesCollection(t *testing.T) {
	s := openTestStore(t)

	// No CreateCollection call — first insert vivifies the collection.
	if _, err := s.Insert("users", map[string]any{"name": "John"}); err != nil {
		t.Fatalf("Insert into missing collection: %v", err)
	}

	names, _ := s.Collections()
	if len(names) != 1 || names[0] != "users" {
		t.Errorf("Collections = %v, want [users]", names)
	}
}

func TestInsertOverridesCallerID(t *testing.T) {
	s := openTestStore(t)

	rec, err := s.Insert("users", map[string]any{"name": "John", "id": "mine"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if rec.ID() == "mine" {
		t.Error("caller-supplied id was kept; ids are store-assigned")
	}
}

func TestInsertPreservesOrder(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := s.Insert("seq", map[string]any{"n": i}); err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}

	records, err := s.GetAll("seq")
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 20 {
		t.Fatalf("GetAll = %d records, want 20", len(records))
	}
	for i, rec := range records {
		// JSON round-trips numbers as float64.
		if rec["n"] != float64(i) {
			t.Fatalf("records[%d][n] = %v, want %d", i, rec["n"], i)
		}
	}
}

func TestInsertEmptyCollectionName(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Insert("", map[string]any{"name": "John"}); err != ErrInvalidName {
		t.Errorf("Insert empty collection: got %v, want ErrInvalidName", err)
	}
}

func TestInsertNilPayload(t *testing.T) {
	s := openTestStore(t)

	rec, err := s.Insert("users", nil)
	if err != nil {
		t.Fatalf("Insert nil payload: %v", err)
	}
	if len(rec) != 1 || rec.ID() == "" {
		t.Errorf("nil payload record = %v, want id-only record", rec)
	}
}

// TestInsertIDsUnique inserts enough records that any weakness in id
// assignment (reuse, truncation, bad seeding) would show up as a
// duplicate.
func TestInsertIDsUnique(t *testing.T) {
	s := openTestStore(t)

	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		rec, err := s.Insert("bulk", map[string]any{"n": i})
		if err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
		id := rec.ID()
		if seen[id] {
			t.Fatalf("duplicate id %q at insert %d", id, i)
		}
		seen[id] = true
	}

	count, err := s.Count("bulk")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1000 {
		t.Errorf("Count = %d, want 1000", count)
	}
}

func TestInsertLengthMatchesInserts(t *testing.T) {
	s := openTestStore(t)

	for n := 1; n <= 5; n++ {
		if _, err := s.Insert("users", map[string]any{"name": fmt.Sprintf("u%d", n)}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		records, err := s.GetAll("users")
		if err != nil {
			t.Fatalf("GetAll: %v", err)
		}
		if len(records) != n {
			t.Errorf("after %d inserts GetAll = %d records", n, len(records))
		}
	}
}
