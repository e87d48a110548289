package main

import (
	"fmt"
	"testing"
)

func TestHistoryInitialize(t *testing.T) {
	var h History
	h.Initialize("s0")
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("fresh history must have nothing to undo or redo")
	}
	if _, ok := h.Undo(); ok {
		t.Fatal("undo at index 0 must be a no-op")
	}
	if _, ok := h.Redo(); ok {
		t.Fatal("redo at last index must be a no-op")
	}
}

func TestHistoryCheckpointAndNavigate(t *testing.T) {
	var h History
	h.Initialize("s0")
	h.Checkpoint("s1")
	h.Checkpoint("s2")

	if !h.CanUndo() || h.CanRedo() {
		t.Fatalf("canUndo=%v canRedo=%v", h.CanUndo(), h.CanRedo())
	}

	s, ok := h.Undo()
	if !ok || s != "s1" {
		t.Fatalf("undo = %q,%v", s, ok)
	}
	s, ok = h.Undo()
	if !ok || s != "s0" {
		t.Fatalf("undo = %q,%v", s, ok)
	}
	if _, ok := h.Undo(); ok {
		t.Fatal("undo past the beginning must fail")
	}

	s, ok = h.Redo()
	if !ok || s != "s1" {
		t.Fatalf("redo = %q,%v", s, ok)
	}
}

func TestHistoryCheckpointIdempotent(t *testing.T) {
	var h History
	h.Initialize("s0")
	h.Checkpoint("s1")
	h.Checkpoint("s1")
	h.Checkpoint("s1")
	if len(h.snapshots) != 2 {
		t.Fatalf("duplicate checkpoints piled up: %d entries", len(h.snapshots))
	}
}

func TestHistoryCheckpointDiscardsRedoTail(t *testing.T) {
	var h History
	h.Initialize("s0")
	h.Checkpoint("s1")
	h.Checkpoint("s2")
	h.Undo()
	h.Undo()
	h.Checkpoint("s3")

	if h.CanRedo() {
		t.Fatal("checkpoint after undo must discard the redo branch")
	}
	s, _ := h.Undo()
	if s != "s0" {
		t.Fatalf("undo after branch discard = %q, want s0", s)
	}
}

func TestHistoryBound(t *testing.T) {
	var h History
	h.Initialize("s0")
	for i := 1; i <= 105; i++ {
		h.Checkpoint(fmt.Sprintf("s%d", i))
	}

	if len(h.snapshots) != maxHistory {
		t.Fatalf("stack length %d, want %d", len(h.snapshots), maxHistory)
	}

	// 99 undos reach the oldest retained snapshot: the 6th pushed state
	// (s0 and s1..s5 were evicted).
	var last string
	for i := 0; i < maxHistory-1; i++ {
		s, ok := h.Undo()
		if !ok {
			t.Fatalf("undo %d failed", i)
		}
		last = s
	}
	if last != "s6" {
		t.Fatalf("deepest snapshot = %q, want s6", last)
	}
	if h.CanUndo() {
		t.Fatal("nothing older must remain")
	}
}

func TestHistoryNotifiesAvailability(t *testing.T) {
	var h History
	var calls []string
	h.onChange = func(canUndo, canRedo bool) {
		calls = append(calls, fmt.Sprintf("%v/%v", canUndo, canRedo))
	}

	h.Initialize("s0")
	h.Checkpoint("s1")
	h.Undo()
	h.Redo()
	h.Redo() // no-op still notifies

	want := []string{"false/false", "true/false", "false/true", "true/false", "true/false"}
	if len(calls) != len(want) {
		t.Fatalf("got %d notifications %v, want %d", len(calls), calls, len(want))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("notification %d = %s, want %s", i, calls[i], want[i])
		}
	}
}
