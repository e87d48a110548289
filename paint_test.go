package main

import "testing"

func TestCoverageFor(t *testing.T) {
	g := NewGrid(40, 64, 64)

	t.Run("contains center", func(t *testing.T) {
		center := Cell{20, 20}
		cov := g.CoverageFor(KindFlag, center)
		if _, ok := cov[center]; !ok {
			t.Fatal("coverage must contain its own center")
		}
	})

	t.Run("full square away from edges", func(t *testing.T) {
		cov := g.CoverageFor(KindFlag, Cell{20, 20})
		want := (2*kindRadius[KindFlag] + 1) * (2*kindRadius[KindFlag] + 1)
		if len(cov) != want {
			t.Fatalf("got %d cells, want %d", len(cov), want)
		}
	})

	t.Run("clipped at world corner", func(t *testing.T) {
		cov := g.CoverageFor(KindFlag, Cell{0, 0})
		want := (kindRadius[KindFlag] + 1) * (kindRadius[KindFlag] + 1)
		if len(cov) != want {
			t.Fatalf("got %d cells, want %d", len(cov), want)
		}
		if _, ok := cov[Cell{-1, 0}]; ok {
			t.Fatal("coverage leaked outside the world")
		}
	})

	t.Run("kind without radius paints nothing", func(t *testing.T) {
		if cov := g.CoverageFor(KindTrap, Cell{20, 20}); len(cov) != 0 {
			t.Fatalf("trap painted %d cells", len(cov))
		}
	})
}

func TestBoundingBoxFor(t *testing.T) {
	g := NewGrid(40, 64, 64)

	min, max, ok := g.BoundingBoxFor(KindFlag, Cell{5, 5})
	if !ok {
		t.Fatal("flag must have a bounding box")
	}
	if (min != Cell{2, 2}) || (max != Cell{8, 8}) {
		t.Fatalf("box = %v..%v, want (2,2)..(8,8)", min, max)
	}

	// The box ignores world clipping so an outline can hang over edges.
	min, max, ok = g.BoundingBoxFor(KindHQ, Cell{0, 0})
	if !ok || (min != Cell{-7, -7}) || (max != Cell{7, 7}) {
		t.Fatalf("box = %v..%v ok=%v, want (-7,-7)..(7,7)", min, max, ok)
	}

	if _, _, ok := g.BoundingBoxFor(KindCity, Cell{5, 5}); ok {
		t.Fatal("city must not have a coverage box")
	}
}

func TestBoundingBoxBoundsCoverage(t *testing.T) {
	g := NewGrid(40, 64, 64)
	center := Cell{30, 30}
	min, max, _ := g.BoundingBoxFor(KindHQ, center)
	for c := range g.CoverageFor(KindHQ, center) {
		if c.X < min.X || c.X > max.X || c.Y < min.Y || c.Y > max.Y {
			t.Fatalf("cell %v outside box %v..%v", c, min, max)
		}
	}
	want := (max.X - min.X + 1) * (max.Y - min.Y + 1)
	if got := len(g.CoverageFor(KindHQ, center)); got != want {
		t.Fatalf("unclipped coverage %d != box area %d", got, want)
	}
}

func TestObjectCenter(t *testing.T) {
	g := NewGrid(40, 64, 64)
	tests := []struct {
		name string
		o    Object
		want Cell
	}{
		{name: "1x1", o: Object{PX: 400, PY: 400, Width: 1, Height: 1}, want: Cell{10, 10}},
		{name: "3x3", o: Object{PX: 400, PY: 400, Width: 3, Height: 3}, want: Cell{11, 11}},
		{name: "4x7 uses floor of halves", o: Object{PX: 0, PY: 0, Width: 4, Height: 7}, want: Cell{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.objectCenter(&tt.o); got != tt.want {
				t.Fatalf("center = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	g := NewGrid(40, 64, 64)

	city := &Object{Kind: KindCity, PX: 0, PY: 0, Width: 2, Height: 2}

	t.Run("partial coverage is invalid", func(t *testing.T) {
		painted := map[Cell]struct{}{{0, 0}: {}}
		if !g.isInvalid(city, painted) {
			t.Fatal("object with 1 of 4 cells covered must be invalid")
		}
	})

	t.Run("full coverage is valid", func(t *testing.T) {
		painted := map[Cell]struct{}{
			{0, 0}: {}, {1, 0}: {}, {0, 1}: {}, {1, 1}: {},
		}
		if g.isInvalid(city, painted) {
			t.Fatal("fully covered object must be valid")
		}
	})

	t.Run("kind without requirement always valid", func(t *testing.T) {
		flag := &Object{Kind: KindFlag, PX: 0, PY: 0, Width: 1, Height: 1}
		if g.isInvalid(flag, map[Cell]struct{}{}) {
			t.Fatal("flag must not require territory")
		}
	})
}

// Validity is monotone in painted-set membership: growing the set can
// only fix objects, shrinking it can only break them.
func TestIsInvalidMonotone(t *testing.T) {
	g := NewGrid(40, 64, 64)
	o := &Object{Kind: KindTrap, PX: 80, PY: 80, Width: 3, Height: 3}

	painted := make(map[Cell]struct{})
	if !g.isInvalid(o, painted) {
		t.Fatal("empty painted set must be invalid")
	}
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			wasInvalid := g.isInvalid(o, painted)
			painted[Cell{x, y}] = struct{}{}
			if !wasInvalid && g.isInvalid(o, painted) {
				t.Fatal("adding a cell turned a valid object invalid")
			}
		}
	}
	if g.isInvalid(o, painted) {
		t.Fatal("complete footprint must be valid")
	}
}

func TestRebuildPainted(t *testing.T) {
	g := NewGrid(40, 64, 64)
	objects := []*Object{
		{Kind: KindFlag, PX: 800, PY: 800, Width: 1, Height: 1}, // center (20,20)
		{Kind: KindTrap, PX: 0, PY: 0, Width: 3, Height: 3},     // no coverage
	}
	painted := g.rebuildPainted(objects)
	want := (2*kindRadius[KindFlag] + 1) * (2*kindRadius[KindFlag] + 1)
	if len(painted) != want {
		t.Fatalf("painted %d cells, want %d", len(painted), want)
	}
	if _, ok := painted[Cell{20, 20}]; !ok {
		t.Fatal("flag center not painted")
	}
}
