package main

// History keeps a bounded linear list of encoded board snapshots with an
// index pointer. Snapshots are opaque strings owned by the history, never
// live references. There is no branching: a checkpoint after undo
// discards the redoable tail.
type History struct {
	snapshots []string
	index     int
	onChange  func(canUndo, canRedo bool)
}

func (h *History) CanUndo() bool { return h.index > 0 }
func (h *History) CanRedo() bool { return len(h.snapshots) > 0 && h.index < len(h.snapshots)-1 }

func (h *History) notify() {
	if h.onChange != nil {
		h.onChange(h.CanUndo(), h.CanRedo())
	}
}

// Initialize resets the history to a single snapshot of the given state.
func (h *History) Initialize(state string) {
	h.snapshots = []string{state}
	h.index = 0
	h.notify()
}

// Checkpoint appends a snapshot. A state identical to the current
// snapshot is a no-op so repeated no-op edits don't pile up entries.
// When the bound is exceeded the oldest entries are dropped; losing the
// deepest undo step is the accepted trade-off.
func (h *History) Checkpoint(state string) {
	if len(h.snapshots) == 0 {
		h.Initialize(state)
		return
	}
	if h.snapshots[h.index] == state {
		h.notify()
		return
	}
	h.snapshots = append(h.snapshots[:h.index+1], state)
	h.index = len(h.snapshots) - 1
	if excess := len(h.snapshots) - maxHistory; excess > 0 {
		h.snapshots = h.snapshots[excess:]
		h.index -= excess
	}
	h.notify()
}

// Undo steps back one snapshot. Returns the snapshot to re-apply; ok is
// false at the beginning of history (silent no-op).
func (h *History) Undo() (string, bool) {
	if !h.CanUndo() {
		h.notify()
		return "", false
	}
	h.index--
	h.notify()
	return h.snapshots[h.index], true
}

// Redo steps forward one snapshot; ok is false at the end of history.
func (h *History) Redo() (string, bool) {
	if !h.CanRedo() {
		h.notify()
		return "", false
	}
	h.index++
	h.notify()
	return h.snapshots[h.index], true
}
