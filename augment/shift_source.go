package augment

import (
	"fmt"
	"math/rand/v2"
)

// ShiftSource supplies transposition amounts for augmentation
type ShiftSource interface {
	NextShift() int
}

// RandomShiftSource draws shifts uniformly from [min, max]
type RandomShiftSource struct {
	rng      *rand.Rand
	min, max int
}

// NewRandomShiftSource creates a uniform source over [min, max], which must
// lie within [MinShift, MaxShift]. A zero seed draws a fresh seed, so
// output differs between runs; any other seed is reproducible.
func NewRandomShiftSource(seed uint64, min, max int) (*RandomShiftSource, error) {
	if err := ValidateRange(min, max); err != nil {
		return nil, err
	}

	var src *rand.PCG
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}

	return &RandomShiftSource{
		rng: rand.New(src),
		min: min,
		max: max,
	}, nil
}

// NextShift returns the next random shift
func (r *RandomShiftSource) NextShift() int {
	return r.min + r.rng.IntN(r.max-r.min+1)
}

// SequenceShiftSource replays a fixed list of shifts, cycling when exhausted
type SequenceShiftSource struct {
	shifts []int
	pos    int
}

// NewSequenceShiftSource returns a source yielding shifts in order
func NewSequenceShiftSource(shifts ...int) *SequenceShiftSource {
	return &SequenceShiftSource{shifts: shifts}
}

// NextShift returns the next shift in the sequence, or 0 when empty
func (s *SequenceShiftSource) NextShift() int {
	if len(s.shifts) == 0 {
		return 0
	}
	shift := s.shifts[s.pos%len(s.shifts)]
	s.pos++
	return shift
}

// ValidateRange checks a shift range against [MinShift, MaxShift]
func ValidateRange(min, max int) error {
	if min < MinShift || max > MaxShift || min > max {
		return fmt.Errorf("%w: range [%d, %d] must lie within [%d, %d]",
			ErrInvalidShift, min, max, MinShift, MaxShift)
	}
	return nil
}
