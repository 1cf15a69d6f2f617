package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	gen := NewUUIDGenerator()

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected uuid, got %q: %v", first, err)
	}
	if first == second {
		t.Fatalf("expected unique ids, got %q twice", first)
	}
}

func TestSequence_NewID(t *testing.T) {
	seq := NewSequence("a", "b")

	for _, want := range []string{"a", "b", "b"} {
		got, err := seq.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if got != want {
			t.Fatalf("unexpected id: got=%s want=%s", got, want)
		}
	}

	if _, err := NewSequence().NewID(); err == nil {
		t.Fatalf("expected error for empty sequence")
	}
}
