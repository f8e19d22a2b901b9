package chroma

import "fmt"

// MaxFret is the highest fret with a defined pitch
const MaxFret = 24

// GuitarString identifies one of the six strings in standard tuning, low to high.
type GuitarString int

const (
	LowE GuitarString = iota
	AString
	DString
	GString
	BString
	HighE
)

// NumStrings is the number of strings on the fretboard
const NumStrings = 6

// FretTable maps fret number (index) to the sounded pitch class
type FretTable [MaxFret + 1]PitchClass

type stringInfo struct {
	name string     // scientific pitch of the open string
	open PitchClass // open-string pitch class
}

var standardTuning = [NumStrings]stringInfo{
	LowE:    {name: "E2", open: E},
	AString: {name: "A2", open: A},
	DString: {name: "D3", open: D},
	GString: {name: "G3", open: G},
	BString: {name: "B3", open: B},
	HighE:   {name: "E4", open: E},
}

// built once; never mutated afterwards
var fretTables = buildFretTables()

func buildFretTables() [NumStrings]FretTable {
	var tables [NumStrings]FretTable
	for s, info := range standardTuning {
		tables[s] = buildFretTable(info.open)
	}
	return tables
}

// buildFretTable walks the pitch-class cycle from the open pitch until every
// fret is filled, so fret 12 and fret 24 land back on the open pitch.
func buildFretTable(open PitchClass) FretTable {
	var table FretTable
	pc := open
	for fret := range table {
		table[fret] = pc
		pc = pc.Transpose(1)
	}
	return table
}

// Strings returns the six strings, low to high
func Strings() []GuitarString {
	return []GuitarString{LowE, AString, DString, GString, BString, HighE}
}

// Valid reports whether s is one of the six standard strings
func (s GuitarString) Valid() bool {
	return s >= LowE && s <= HighE
}

func (s GuitarString) String() string {
	if !s.Valid() {
		return fmt.Sprintf("GuitarString(%d)", int(s))
	}
	return standardTuning[s].name
}

// OpenPitch returns the pitch class of the unfretted string
func (s GuitarString) OpenPitch() PitchClass {
	if !s.Valid() {
		return 0
	}
	return standardTuning[s].open
}

// FretTable returns a copy of the string's fret table
func (s GuitarString) FretTable() (FretTable, error) {
	if !s.Valid() {
		return FretTable{}, fmt.Errorf("%w: %d", ErrUnknownString, int(s))
	}
	return fretTables[s], nil
}

// NoteAt returns the pitch class sounded on string s at fret.
// Frets outside 0..MaxFret return ErrFretOutOfRange.
func NoteAt(s GuitarString, fret int) (PitchClass, error) {
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownString, int(s))
	}
	if fret < 0 || fret > MaxFret {
		return 0, fmt.Errorf("%w: %d on %s", ErrFretOutOfRange, fret, s)
	}
	return fretTables[s][fret], nil
}
