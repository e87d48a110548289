package main

// CoverageFor returns every cell inside the axis-aligned square of
// half-width kindRadius[kind] centered on center, clipped to the world.
// Kinds without a registered radius paint nothing.
func (g *Grid) CoverageFor(kind Kind, center Cell) map[Cell]struct{} {
	cells := make(map[Cell]struct{})
	r, ok := kindRadius[kind]
	if !ok {
		return cells
	}
	for y := center.Y - r; y <= center.Y+r; y++ {
		for x := center.X - r; x <= center.X+r; x++ {
			c := Cell{X: x, Y: y}
			if g.contains(c) {
				cells[c] = struct{}{}
			}
		}
	}
	return cells
}

// BoundingBoxFor returns the coverage square's corners without world
// clipping, so an outline can be drawn even when the square hangs over a
// world edge. ok is false for kinds with no coverage.
func (g *Grid) BoundingBoxFor(kind Kind, center Cell) (min, max Cell, ok bool) {
	r, found := kindRadius[kind]
	if !found {
		return Cell{}, Cell{}, false
	}
	min = Cell{X: center.X - r, Y: center.Y - r}
	max = Cell{X: center.X + r, Y: center.Y + r}
	return min, max, true
}

// objectCenter is the cell the painter treats as an object's center:
// its own footprint center, not its top-left.
func (g *Grid) objectCenter(o *Object) Cell {
	origin := g.PixelToCell(o.PX, o.PY)
	return Cell{
		X: origin.X + o.Width/2,
		Y: origin.Y + o.Height/2,
	}
}

// rebuildPainted recomputes the full territory set from scratch. The set
// is never patched incrementally, so it is consistent after any object
// add, move or delete.
func (g *Grid) rebuildPainted(objects []*Object) map[Cell]struct{} {
	painted := make(map[Cell]struct{})
	for _, o := range objects {
		if _, ok := kindRadius[o.Kind]; !ok {
			continue
		}
		for c := range g.CoverageFor(o.Kind, g.objectCenter(o)) {
			painted[c] = struct{}{}
		}
	}
	return painted
}

// isInvalid reports whether an object that requires territory has any
// footprint cell outside the painted set. Full coverage is required, not
// majority. Kinds without the requirement are always valid.
func (g *Grid) isInvalid(o *Object, painted map[Cell]struct{}) bool {
	if !needsTerritory[o.Kind] {
		return false
	}
	origin := g.PixelToCell(o.PX, o.PY)
	for y := origin.Y; y < origin.Y+o.Height; y++ {
		for x := origin.X; x < origin.X+o.Width; x++ {
			if _, ok := painted[Cell{X: x, Y: y}]; !ok {
				return true
			}
		}
	}
	return false
}
