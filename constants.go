package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModePaint
	ModeMove
	ModeResize
	ModeLabelInput
	ModeCustomSize
	ModeJump
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveBoard
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmReset ConfirmAction = iota
	ConfirmDeleteObject
	ConfirmQuit
)

type Kind int

const (
	KindFlag Kind = iota
	KindHQ
	KindCity
	KindResource
	KindTrap
	KindCustom
	KindRock // structural scenery, never serialized
)

// One uppercase letter per serializable kind. 'B' is reserved for the
// retired "block" kind, which loads as KindCustom.
var kindCodes = map[Kind]byte{
	KindFlag:     'F',
	KindHQ:       'H',
	KindCity:     'C',
	KindResource: 'R',
	KindTrap:     'T',
	KindCustom:   'X',
}

var kindNames = map[Kind]string{
	KindFlag:     "Flag",
	KindHQ:       "HQ",
	KindCity:     "City",
	KindResource: "Resource",
	KindTrap:     "Trap",
	KindCustom:   "Custom",
	KindRock:     "Rock",
}

// Territory radius in cells for area-effect kinds. Kinds missing from
// this table paint nothing.
var kindRadius = map[Kind]int{
	KindFlag: 3,
	KindHQ:   7,
}

// Kinds that must sit entirely on painted territory to count as valid.
var needsTerritory = map[Kind]bool{
	KindCity:     true,
	KindResource: true,
	KindTrap:     true,
}

// Default footprint (cells, square) per kind when placed.
var kindDefaultSize = map[Kind]int{
	KindFlag:     1,
	KindHQ:       3,
	KindCity:     2,
	KindResource: 2,
	KindTrap:     3,
	KindCustom:   2,
	KindRock:     2,
}

const (
	minObjectCells = 1
	maxObjectCells = 30

	defaultCellPx    = 40.0
	defaultWorldCols = 64
	defaultWorldRows = 64

	maxHistory = 100

	codecVersion = 2
)
