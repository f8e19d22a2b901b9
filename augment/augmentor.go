package augment

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/sonido-tabs/algorithms/chroma"
)

// Shift bounds. 0 and 12 map the cycle onto itself and are never used.
const (
	MinShift = 1
	MaxShift = chroma.NumPitchClasses - 1
)

// DefaultPerSample is the number of transposed copies made per observation
const DefaultPerSample = 2

// ErrInvalidShift is returned for shifts outside [MinShift, MaxShift]
var ErrInvalidShift = errors.New("invalid shift amount")

// Variant is a transposed copy of an observation
type Variant struct {
	Vector chroma.Vector
	Label  string
	Shift  int
}

// Transpose rotates v by shift semitones and rotates the pitch-class token
// at the start of label by the same amount.
func Transpose(v chroma.Vector, label string, shift int) (Variant, error) {
	if shift < MinShift || shift > MaxShift {
		return Variant{}, fmt.Errorf("%w: %d", ErrInvalidShift, shift)
	}

	shifted, err := chroma.TransposeLabel(label, shift)
	if err != nil {
		return Variant{}, fmt.Errorf("transpose label %q: %w", label, err)
	}

	return Variant{
		Vector: v.Rotate(shift),
		Label:  shifted,
		Shift:  shift,
	}, nil
}

// Augmentor derives transposed variants using an injected ShiftSource
type Augmentor struct {
	source    ShiftSource
	perSample int
}

// NewAugmentor creates an augmentor producing perSample variants per call.
// Negative perSample is treated as zero.
func NewAugmentor(source ShiftSource, perSample int) *Augmentor {
	if perSample < 0 {
		perSample = 0
	}
	return &Augmentor{source: source, perSample: perSample}
}

// PerSample reports how many variants Augment produces
func (a *Augmentor) PerSample() int {
	return a.perSample
}

// Augment draws perSample independent shifts and returns one variant per
// draw. Draws are not required to differ. On error no variants are returned.
func (a *Augmentor) Augment(v chroma.Vector, label string) ([]Variant, error) {
	if a.perSample == 0 {
		return nil, nil
	}
	if _, _, err := chroma.ParseLeadingPitchClass(label); err != nil {
		return nil, fmt.Errorf("transpose label %q: %w", label, err)
	}

	variants := make([]Variant, 0, a.perSample)
	for i := 0; i < a.perSample; i++ {
		variant, err := Transpose(v, label, a.source.NextShift())
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)
	}
	return variants, nil
}
