package main

import "time"

const persistDelay = 400 * time.Millisecond

// Board owns the live object list, the user paint set, and the derived
// territory set. It is the single owner of all placed objects; the
// history only ever holds encoded copies.
//
// Every mutation follows the same order: mutate, recompute derived state,
// checkpoint, schedule persistence. The restoring guard suppresses all of
// that during a bulk rebuild so an N-object restore costs one recompute
// and one persist instead of N.
type Board struct {
	grid      *Grid
	objects   []*Object
	userPaint map[Cell]bool
	painted   map[Cell]struct{}
	history   History
	restoring bool

	// persist receives the encoded state; the TUI wires it to the
	// autosave file (the stand-in for the browser URL bar).
	persist  func(string)
	debounce *time.Timer
}

func NewBoard(g *Grid) *Board {
	return &Board{
		grid:      g,
		userPaint: make(map[Cell]bool),
		painted:   make(map[Cell]struct{}),
	}
}

func (b *Board) AddObject(kind Kind, w, h int, px, py float64, label string) *Object {
	w = clampInt(w, minObjectCells, maxObjectCells)
	h = clampInt(h, minObjectCells, maxObjectCells)
	if kind != KindCustom {
		h = w
	}
	px, py = b.grid.SnapToGrid(px, py, w, h)

	o := &Object{
		Kind:   kind,
		PX:     px,
		PY:     py,
		Width:  w,
		Height: h,
	}
	if label != "" && label != defaultLabel(kind, w, h) {
		o.Label = label
		o.CustomLabel = true
	} else {
		o.Label = defaultLabel(kind, w, h)
	}
	b.objects = append(b.objects, o)
	b.commit()
	return o
}

// AddImmutable places structural scenery. Immutable objects are excluded
// from serialization and survive Reset, so adding them never dirties the
// encoded state.
func (b *Board) AddImmutable(kind Kind, w, h int, px, py float64) *Object {
	w = clampInt(w, minObjectCells, maxObjectCells)
	h = clampInt(h, minObjectCells, maxObjectCells)
	px, py = b.grid.SnapToGrid(px, py, w, h)
	o := &Object{
		Kind:      kind,
		PX:        px,
		PY:        py,
		Width:     w,
		Height:    h,
		Label:     defaultLabel(kind, w, h),
		Immutable: true,
	}
	b.objects = append(b.objects, o)
	b.recompute()
	return o
}

func (b *Board) MoveObject(o *Object, px, py float64) {
	o.PX, o.PY = b.grid.SnapToGrid(px, py, o.Width, o.Height)
	b.commit()
}

func (b *Board) MoveObjectToCell(o *Object, c Cell) {
	px, py := b.grid.CellOrigin(c)
	b.MoveObject(o, px, py)
}

func (b *Board) ResizeObject(o *Object, w, h int) {
	w = clampInt(w, minObjectCells, maxObjectCells)
	h = clampInt(h, minObjectCells, maxObjectCells)
	if o.Kind != KindCustom {
		h = w
	}
	o.Width, o.Height = w, h
	if !o.CustomLabel {
		o.Label = defaultLabel(o.Kind, w, h)
	}
	// Re-snap so the grown footprint stays inside the world.
	o.PX, o.PY = b.grid.SnapToGrid(o.PX, o.PY, w, h)
	b.commit()
}

func (b *Board) SetLabel(o *Object, label string) {
	if label == "" || label == defaultLabel(o.Kind, o.Width, o.Height) {
		o.Label = defaultLabel(o.Kind, o.Width, o.Height)
		o.CustomLabel = false
	} else {
		o.Label = label
		o.CustomLabel = true
	}
	b.commit()
}

func (b *Board) DeleteObject(o *Object) {
	if o.Immutable {
		return
	}
	for i, other := range b.objects {
		if other == o {
			b.objects = append(b.objects[:i], b.objects[i+1:]...)
			break
		}
	}
	b.commit()
}

// PaintCell paints unconditionally. Used by paint mode, where moving
// over an already painted cell must not erase it.
func (b *Board) PaintCell(c Cell) {
	if !b.grid.contains(c) || b.userPaint[c] {
		return
	}
	b.userPaint[c] = true
	b.commit()
}

func (b *Board) TogglePaint(c Cell) {
	if !b.grid.contains(c) {
		return
	}
	if b.userPaint[c] {
		delete(b.userPaint, c)
	} else {
		b.userPaint[c] = true
	}
	b.commit()
}

// Reset removes everything the user placed. Immutable scenery stays.
func (b *Board) Reset() {
	kept := b.objects[:0]
	for _, o := range b.objects {
		if o.Immutable {
			kept = append(kept, o)
		}
	}
	b.objects = kept
	b.userPaint = make(map[Cell]bool)
	b.commit()
}

// ObjectAt returns the topmost object whose footprint contains the cell.
func (b *Board) ObjectAt(c Cell) *Object {
	for i := len(b.objects) - 1; i >= 0; i-- {
		o := b.objects[i]
		origin := b.grid.PixelToCell(o.PX, o.PY)
		if c.X >= origin.X && c.X < origin.X+o.Width &&
			c.Y >= origin.Y && c.Y < origin.Y+o.Height {
			return o
		}
	}
	return nil
}

func (b *Board) Encode() string {
	return encodeState(b.grid, b.objects, b.userPaint)
}

func (b *Board) recompute() {
	b.painted = b.grid.rebuildPainted(b.objects)
	for _, o := range b.objects {
		o.Invalid = b.grid.isInvalid(o, b.painted)
	}
}

func (b *Board) commit() {
	if b.restoring {
		return
	}
	b.recompute()
	b.history.Checkpoint(b.Encode())
	b.PersistDebounced()
}

// InitHistory seeds the undo history with the current state. Call once
// after startup placement.
func (b *Board) InitHistory() {
	b.recompute()
	b.history.Initialize(b.Encode())
}

func (b *Board) Undo() bool {
	s, ok := b.history.Undo()
	if ok {
		b.Restore(s)
	}
	return ok
}

func (b *Board) Redo() bool {
	s, ok := b.history.Redo()
	if ok {
		b.Restore(s)
	}
	return ok
}

// Restore rebuilds the live state from an encoded snapshot: clear all
// mutable objects and user paint, recreate objects from the decoded
// list, then run exactly one recompute/persist pass.
func (b *Board) Restore(snapshot string) {
	decoded, paint := decodeState(snapshot)

	b.restoring = true
	kept := b.objects[:0]
	for _, o := range b.objects {
		if o.Immutable {
			kept = append(kept, o)
		}
	}
	b.objects = kept
	for _, d := range decoded {
		px, py := b.grid.CellOrigin(d.Cell)
		label := ""
		if d.HasLabel {
			label = d.Label
		}
		b.AddObject(d.Kind, d.Width, d.Height, px, py, label)
	}
	b.userPaint = paint
	b.restoring = false

	b.recompute()
	b.PersistNow()
}

// PersistNow writes the current state immediately, cancelling any pending
// debounced write. Needed when the caller is about to read the persisted
// form, e.g. copying the share URL.
func (b *Board) PersistNow() {
	if b.debounce != nil {
		b.debounce.Stop()
		b.debounce = nil
	}
	if b.persist != nil {
		b.persist(b.Encode())
	}
}

// PersistDebounced coalesces rapid successive edits into a single write
// on the trailing edge; the last state always wins.
func (b *Board) PersistDebounced() {
	if b.persist == nil {
		return
	}
	s := b.Encode()
	if b.debounce != nil {
		b.debounce.Stop()
	}
	b.debounce = time.AfterFunc(persistDelay, func() {
		b.persist(s)
	})
}
