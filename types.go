package main

// Cell identifies one grid unit in the unrotated logical world.
type Cell struct {
	X, Y int
}

type point struct {
	X, Y float64
}

// Object is one placed entity. PX/PY are the authoritative position in
// local-space pixels; they are always integral multiples of the cell
// pixel size after snapping. Width/Height are in cells.
type Object struct {
	Kind        Kind
	PX, PY      float64
	Width       int
	Height      int
	Label       string
	CustomLabel bool // user-edited label, persisted; false means locale default
	Immutable   bool // placed by the app, excluded from serialization and reset
	Invalid     bool // derived by the placement validator
}

// decodedObject is the codec's normalized view of one token. Both format
// versions converge on this before the board rebuilds live objects.
type decodedObject struct {
	Kind     Kind
	Width    int
	Height   int
	Cell     Cell
	Label    string
	HasLabel bool
}
