package chroma

import (
	"fmt"
)

// PitchClass is one of the twelve semitone classes, numbered in the fixed
// circular order A, A#, B, C, C#, D, D#, E, F, F#, G, G#. The numbering is
// both the feature-vector column order and the rotation arithmetic.
type PitchClass int

const (
	A PitchClass = iota
	ASharp
	B
	C
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
)

// NumPitchClasses is the length of the pitch-class cycle
const NumPitchClasses = 12

var pitchClassNames = [NumPitchClasses]string{
	"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#",
}

var nameIndex = func() map[string]PitchClass {
	m := make(map[string]PitchClass, NumPitchClasses)
	for i, name := range pitchClassNames {
		m[name] = PitchClass(i)
	}
	return m
}()

// PitchClasses returns all pitch classes in canonical order
func PitchClasses() []PitchClass {
	out := make([]PitchClass, NumPitchClasses)
	for i := range out {
		out[i] = PitchClass(i)
	}
	return out
}

// PitchClassNames returns the canonical names, A through G#
func PitchClassNames() []string {
	out := make([]string, NumPitchClasses)
	copy(out, pitchClassNames[:])
	return out
}

func (p PitchClass) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PitchClass(%d)", int(p))
	}
	return pitchClassNames[p]
}

// Valid reports whether p is one of the twelve classes
func (p PitchClass) Valid() bool {
	return p >= 0 && p < NumPitchClasses
}

// Transpose moves p by semitones around the cycle. Negative values move down.
func (p PitchClass) Transpose(semitones int) PitchClass {
	return PitchClass(wrap(int(p) + semitones))
}

func wrap(i int) int {
	return ((i % NumPitchClasses) + NumPitchClasses) % NumPitchClasses
}

// ParsePitchClass parses a complete pitch-class name such as "C" or "C#".
func ParsePitchClass(name string) (PitchClass, error) {
	pc, rest, err := ParseLeadingPitchClass(name)
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPitchClass, name)
	}
	return pc, nil
}

// ParseLeadingPitchClass reads the pitch-class token at the start of s and
// returns it with the unconsumed suffix, so "F#m7" yields (F#, "m7").
// Only the twelve cycle names are accepted: an uppercase letter, optionally
// followed by '#'. Flat spellings ("Bb"), lowercase roots and E#/B# are
// rejected so that every transposable label has exactly one spelling.
func ParseLeadingPitchClass(s string) (PitchClass, string, error) {
	if s == "" {
		return 0, "", fmt.Errorf("%w: empty token", ErrUnknownPitchClass)
	}

	if len(s) >= 2 && s[1] == '#' {
		if pc, ok := nameIndex[s[:2]]; ok {
			return pc, s[2:], nil
		}
		return 0, "", fmt.Errorf("%w: %q", ErrUnknownPitchClass, s)
	}

	pc, ok := nameIndex[s[:1]]
	if !ok {
		return 0, "", fmt.Errorf("%w: %q", ErrUnknownPitchClass, s)
	}
	if len(s) >= 2 && s[1] == 'b' {
		return 0, "", fmt.Errorf("%w: flat spelling %q", ErrUnknownPitchClass, s)
	}
	return pc, s[1:], nil
}

// TransposeLabel rotates the leading pitch-class token of label by shift
// semitones and keeps the suffix, e.g. ("Am", 3) -> "Cm". Rotating by s
// and then by 12-s gives back label.
func TransposeLabel(label string, shift int) (string, error) {
	root, suffix, err := ParseLeadingPitchClass(label)
	if err != nil {
		return "", err
	}
	return root.Transpose(shift).String() + suffix, nil
}
