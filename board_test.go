package main

import "testing"

func newTestBoard() *Board {
	return NewBoard(NewGrid(40, 64, 64))
}

func TestBoardAddObjectSnapsAndPaints(t *testing.T) {
	b := newTestBoard()
	o := b.AddObject(KindFlag, 1, 1, 410, 395, "")

	if o.PX != 400 || o.PY != 400 {
		t.Fatalf("snapped to (%v,%v), want (400,400)", o.PX, o.PY)
	}
	if o.Label != "Flag" || o.CustomLabel {
		t.Fatalf("label %q custom=%v", o.Label, o.CustomLabel)
	}
	want := (2*kindRadius[KindFlag] + 1) * (2*kindRadius[KindFlag] + 1)
	if len(b.painted) != want {
		t.Fatalf("painted %d cells, want %d", len(b.painted), want)
	}
}

func TestBoardSizeClamp(t *testing.T) {
	b := newTestBoard()
	o := b.AddObject(KindCustom, 500, 0, 0, 0, "")
	if o.Width != maxObjectCells || o.Height != minObjectCells {
		t.Fatalf("size %dx%d, want %dx%d", o.Width, o.Height, maxObjectCells, minObjectCells)
	}
}

func TestBoardValidation(t *testing.T) {
	b := newTestBoard()
	g := b.grid

	px, py := g.CellOrigin(Cell{30, 30})
	city := b.AddObject(KindCity, 2, 2, px, py, "")
	if !city.Invalid {
		t.Fatal("city without territory must be invalid")
	}

	// A flag centered nearby covers the city's full footprint.
	b.AddObject(KindFlag, 1, 1, px, py, "")
	if city.Invalid {
		t.Fatal("city inside flag territory must be valid")
	}

	b.DeleteObject(b.objects[len(b.objects)-1])
	if !city.Invalid {
		t.Fatal("validity must follow territory removal")
	}
}

func TestBoardTogglePaint(t *testing.T) {
	b := newTestBoard()
	c := Cell{3, 7}
	b.TogglePaint(c)
	if !b.userPaint[c] {
		t.Fatal("cell not painted")
	}
	b.TogglePaint(c)
	if b.userPaint[c] {
		t.Fatal("cell not unpainted")
	}
	b.TogglePaint(Cell{-1, 5})
	if len(b.userPaint) != 0 {
		t.Fatal("out-of-world paint accepted")
	}
}

func TestBoardUndoRedo(t *testing.T) {
	b := newTestBoard()
	b.InitHistory()

	px, py := b.grid.CellOrigin(Cell{10, 10})
	b.AddObject(KindFlag, 1, 1, px, py, "")
	px, py = b.grid.CellOrigin(Cell{12, 12})
	b.AddObject(KindTrap, 3, 3, px, py, "")

	if len(b.objects) != 2 {
		t.Fatalf("%d objects placed", len(b.objects))
	}

	if !b.Undo() {
		t.Fatal("undo failed")
	}
	if len(b.objects) != 1 || b.objects[0].Kind != KindFlag {
		t.Fatalf("after undo: %d objects", len(b.objects))
	}

	if !b.Undo() {
		t.Fatal("second undo failed")
	}
	if len(b.objects) != 0 {
		t.Fatalf("after second undo: %d objects", len(b.objects))
	}
	if b.Undo() {
		t.Fatal("undo past initial state must fail")
	}

	if !b.Redo() {
		t.Fatal("redo failed")
	}
	if len(b.objects) != 1 || b.objects[0].Kind != KindFlag {
		t.Fatalf("after redo: %d objects", len(b.objects))
	}
}

func TestBoardUndoRestoresPaintAndLabels(t *testing.T) {
	b := newTestBoard()
	b.InitHistory()

	o := b.AddObject(KindCustom, 4, 7, 80, 120, "")
	b.SetLabel(o, "Outpost")
	b.TogglePaint(Cell{1, 1})
	b.TogglePaint(Cell{2, 1})
	b.Undo() // un-paint (2,1)

	if b.userPaint[Cell{2, 1}] || !b.userPaint[Cell{1, 1}] {
		t.Fatalf("paint after undo: %v", b.userPaint)
	}
	restored := b.objects[0]
	if restored.Label != "Outpost" || !restored.CustomLabel {
		t.Fatalf("label lost in restore: %+v", restored)
	}
}

// A bulk restore must run exactly one persist pass, not one per object.
func TestBoardRestoreBatchesSideEffects(t *testing.T) {
	source := newTestBoard()
	for i := 0; i < 10; i++ {
		px, py := source.grid.CellOrigin(Cell{i * 2, i * 2})
		source.AddObject(KindFlag, 1, 1, px, py, "")
	}
	source.TogglePaint(Cell{0, 1})
	snapshot := source.Encode()

	b := newTestBoard()
	persists := 0
	b.persist = func(string) { persists++ }

	b.Restore(snapshot)
	if persists != 1 {
		t.Fatalf("restore persisted %d times, want 1", persists)
	}
	if len(b.objects) != 10 || !b.userPaint[Cell{0, 1}] {
		t.Fatalf("restore rebuilt %d objects, paint %v", len(b.objects), b.userPaint)
	}
	if len(b.painted) == 0 {
		t.Fatal("derived territory not recomputed after restore")
	}
}

func TestBoardRoundTripEquivalence(t *testing.T) {
	b := newTestBoard()
	px, py := b.grid.CellOrigin(Cell{5, 10})
	b.AddObject(KindTrap, 3, 3, px, py, "")
	px, py = b.grid.CellOrigin(Cell{2, 3})
	o := b.AddObject(KindCustom, 4, 7, px, py, "")
	b.SetLabel(o, "Outpost")
	px, py = b.grid.CellOrigin(Cell{20, 20})
	b.AddObject(KindHQ, 3, 3, px, py, "")
	b.TogglePaint(Cell{0, 0})
	b.TogglePaint(Cell{1, 0})
	b.TogglePaint(Cell{2, 0})
	b.TogglePaint(Cell{5, 1})

	other := newTestBoard()
	other.Restore(b.Encode())
	if got, want := other.Encode(), b.Encode(); got != want {
		t.Fatalf("round trip changed state:\n got %q\nwant %q", got, want)
	}
}

func TestBoardResetKeepsImmutable(t *testing.T) {
	b := newTestBoard()
	rock := b.AddImmutable(KindRock, 2, 2, 400, 400)
	px, py := b.grid.CellOrigin(Cell{5, 5})
	b.AddObject(KindFlag, 1, 1, px, py, "")
	b.TogglePaint(Cell{4, 4})

	b.Reset()
	if len(b.objects) != 1 || b.objects[0] != rock {
		t.Fatalf("reset kept %d objects", len(b.objects))
	}
	if len(b.userPaint) != 0 {
		t.Fatal("reset kept user paint")
	}

	b.DeleteObject(rock)
	if len(b.objects) != 1 {
		t.Fatal("immutable object must not be deletable")
	}
}

func TestBoardCustomLabelHeuristic(t *testing.T) {
	b := newTestBoard()
	o := b.AddObject(KindCustom, 4, 7, 0, 0, "")
	if o.Label != "4x7" || o.CustomLabel {
		t.Fatalf("default custom label %q custom=%v", o.Label, o.CustomLabel)
	}

	b.SetLabel(o, "Depot")
	if !o.CustomLabel {
		t.Fatal("edited label not marked custom")
	}

	// Setting the label back to the computed default demotes it. This is
	// the documented best-effort comparison heuristic.
	b.SetLabel(o, "4x7")
	if o.CustomLabel {
		t.Fatal("dimension-string label must read as default")
	}
}

func TestBoardResizeUpdatesDefaultLabel(t *testing.T) {
	b := newTestBoard()
	o := b.AddObject(KindCustom, 2, 2, 0, 0, "")
	b.ResizeObject(o, 4, 7)
	if o.Label != "4x7" {
		t.Fatalf("label %q after resize, want 4x7", o.Label)
	}

	b.SetLabel(o, "Depot")
	b.ResizeObject(o, 5, 5)
	if o.Label != "Depot" {
		t.Fatal("custom label must survive resize")
	}
}

func TestBoardObjectAt(t *testing.T) {
	b := newTestBoard()
	px, py := b.grid.CellOrigin(Cell{10, 10})
	o := b.AddObject(KindTrap, 3, 3, px, py, "")

	if got := b.ObjectAt(Cell{11, 12}); got != o {
		t.Fatal("footprint cell did not hit the object")
	}
	if got := b.ObjectAt(Cell{13, 10}); got != nil {
		t.Fatal("cell past the footprint hit the object")
	}
}
