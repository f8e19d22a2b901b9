package chroma

import "errors"

var (
	// ErrFretOutOfRange is returned for fret numbers outside 0..MaxFret.
	ErrFretOutOfRange = errors.New("fret out of range")

	// ErrUnknownString is returned for a GuitarString outside the six standard strings.
	ErrUnknownString = errors.New("unknown guitar string")

	// ErrUnknownPitchClass is returned when a token does not start with a pitch-class name.
	ErrUnknownPitchClass = errors.New("unknown pitch class")
)
