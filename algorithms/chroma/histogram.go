package chroma

// Vector is a histogram materialized in canonical A..G# order
type Vector [NumPitchClasses]int

// Histogram counts note occurrences per pitch class. The zero value holds a
// zero count for every class and is ready to use.
type Histogram struct {
	counts Vector
}

// NewHistogram returns an empty histogram
func NewHistogram() *Histogram {
	return &Histogram{}
}

// Add increments the count for pc. Invalid classes are ignored.
func (h *Histogram) Add(pc PitchClass) {
	if !pc.Valid() {
		return
	}
	h.counts[pc]++
}

// Count returns the count for pc
func (h *Histogram) Count(pc PitchClass) int {
	if !pc.Valid() {
		return 0
	}
	return h.counts[pc]
}

// Total returns the number of notes counted
func (h *Histogram) Total() int {
	return h.counts.Total()
}

// Counts returns the histogram as a map holding all twelve classes
func (h *Histogram) Counts() map[PitchClass]int {
	out := make(map[PitchClass]int, NumPitchClasses)
	for i, c := range h.counts {
		out[PitchClass(i)] = c
	}
	return out
}

// Vector returns the counts in canonical order
func (h *Histogram) Vector() Vector {
	return h.counts
}

// Total sums the vector
func (v Vector) Total() int {
	total := 0
	for _, c := range v {
		total += c
	}
	return total
}

// Rotate returns a new vector where the count at position i moves to
// position (i + shift) mod 12. Negative shifts rotate downwards.
func (v Vector) Rotate(shift int) Vector {
	var out Vector
	for i, c := range v {
		out[wrap(i+shift)] = c
	}
	return out
}

// Floats converts the counts to float64 for numeric routines
func (v Vector) Floats() []float64 {
	out := make([]float64, NumPitchClasses)
	for i, c := range v {
		out[i] = float64(c)
	}
	return out
}

// Slice returns the counts as a slice
func (v Vector) Slice() []int {
	out := make([]int, NumPitchClasses)
	copy(out, v[:])
	return out
}
