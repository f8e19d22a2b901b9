package tablature

import (
	"errors"

	"github.com/RyanBlaney/sonido-tabs/algorithms/chroma"
)

// NoteCounter accumulates the pitch classes of classified lines for a
// single file. It is not shared between files.
type NoteCounter struct {
	histogram  *chroma.Histogram
	notes      int
	outOfRange int
}

// NewNoteCounter returns a counter seeded at zero for every pitch class
func NewNoteCounter() *NoteCounter {
	return &NoteCounter{histogram: chroma.NewHistogram()}
}

// AddLine maps each fret of line through its string's fret table.
// Out-of-range frets are dropped without touching the histogram.
func (c *NoteCounter) AddLine(line Line) {
	for _, fret := range line.Frets {
		pc, err := chroma.NoteAt(line.String, fret)
		if err != nil {
			if errors.Is(err, chroma.ErrFretOutOfRange) {
				c.outOfRange++
			}
			continue
		}
		c.histogram.Add(pc)
		c.notes++
	}
}

// Histogram returns the accumulated histogram
func (c *NoteCounter) Histogram() *chroma.Histogram {
	return c.histogram
}

// Notes is the number of frets that were counted
func (c *NoteCounter) Notes() int {
	return c.notes
}

// OutOfRange is the number of frets dropped for being outside 0..24
func (c *NoteCounter) OutOfRange() int {
	return c.outOfRange
}
