package main

import "strconv"

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// displayCell converts a stored cell coordinate to the coordinate shown
// to the user. Display axes are swapped relative to storage axes to
// compensate for the 45° world rotation convention; every badge and
// prompt goes through here so the swap lives in exactly one place.
func displayCell(c Cell) Cell {
	return Cell{X: c.Y, Y: c.X}
}

// storageCell is the inverse of displayCell (the swap is its own
// inverse, but call sites read better this way).
func storageCell(c Cell) Cell {
	return Cell{X: c.Y, Y: c.X}
}

func formatCell(c Cell) string {
	d := displayCell(c)
	return strconv.Itoa(d.X) + ":" + strconv.Itoa(d.Y)
}

// parseDisplayCell parses "x:y" or "x,y" as typed in the jump prompt.
func parseDisplayCell(s string) (Cell, bool) {
	sep := -1
	for i := 0; i < len(s); i++ {
		if s[i] == ':' || s[i] == ',' {
			sep = i
			break
		}
	}
	if sep <= 0 || sep == len(s)-1 {
		return Cell{}, false
	}
	x, err1 := strconv.Atoi(s[:sep])
	y, err2 := strconv.Atoi(s[sep+1:])
	if err1 != nil || err2 != nil {
		return Cell{}, false
	}
	return storageCell(Cell{X: x, Y: y}), true
}
