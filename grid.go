package main

import "math"

// Grid holds the shared cell geometry: cell pixel size, world dimensions
// in cells, and the live view transform mapping local (unrotated) world
// space to the screen. Zoom is never baked into View.
type Grid struct {
	CellPx float64
	Cols   int
	Rows   int
	View   Matrix
}

func NewGrid(cellPx float64, cols, rows int) *Grid {
	if !(cellPx > 0) || math.IsInf(cellPx, 0) {
		cellPx = defaultCellPx
	}
	if cols < 1 {
		cols = defaultWorldCols
	}
	if rows < 1 {
		rows = defaultWorldRows
	}
	return &Grid{
		CellPx: cellPx,
		Cols:   cols,
		Rows:   rows,
		View:   Identity(),
	}
}

// World extent in pixels. Cell dimensions are authoritative; pixel extent
// follows the current cell size so a resize never shifts stored cells.
func (g *Grid) WorldWidth() float64  { return float64(g.Cols) * g.CellPx }
func (g *Grid) WorldHeight() float64 { return float64(g.Rows) * g.CellPx }

// ScreenToLocal maps a screen-space point into local world space by
// inverting the live view transform. The inverse is recomputed on every
// call since pan or zoom may have changed the transform in between.
func (g *Grid) ScreenToLocal(sx, sy float64) (float64, float64) {
	inv, ok := g.View.Invert()
	if !ok {
		return sx, sy
	}
	return inv.Apply(sx, sy)
}

// SnapToGrid rounds a local-space top-left position to the nearest cell
// boundary, then clamps so the full w x h cell footprint stays inside the
// world. Rounding is nearest, not floor: this is where a dragged object
// jumps to.
func (g *Grid) SnapToGrid(x, y float64, wCells, hCells int) (float64, float64) {
	sx := math.Round(x/g.CellPx) * g.CellPx
	sy := math.Round(y/g.CellPx) * g.CellPx

	maxX := g.WorldWidth() - float64(wCells)*g.CellPx
	maxY := g.WorldHeight() - float64(hCells)*g.CellPx
	sx = clampFloat(sx, 0, math.Max(0, maxX))
	sy = clampFloat(sy, 0, math.Max(0, maxY))
	return sx, sy
}

// PixelToCell converts a stored (snapped) pixel position to its cell
// coordinate with nearest rounding.
func (g *Grid) PixelToCell(px, py float64) Cell {
	return Cell{
		X: int(math.Round(px / g.CellPx)),
		Y: int(math.Round(py / g.CellPx)),
	}
}

// PointToCell converts an arbitrary local-space point (cursor position)
// to the cell containing it, floor-based and clamped to the world.
func (g *Grid) PointToCell(x, y float64) Cell {
	return Cell{
		X: clampInt(int(math.Floor(x/g.CellPx)), 0, g.Cols-1),
		Y: clampInt(int(math.Floor(y/g.CellPx)), 0, g.Rows-1),
	}
}

// CellOrigin is the local-space pixel position of a cell's top-left corner.
func (g *Grid) CellOrigin(c Cell) (float64, float64) {
	return float64(c.X) * g.CellPx, float64(c.Y) * g.CellPx
}

func (g *Grid) contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}
