package corpus

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RyanBlaney/sonido-tabs/algorithms/chroma"
)

// RowWidth is the number of elements in a serialized row: 12 counts and a label
const RowWidth = chroma.NumPitchClasses + 1

// ErrInvalidRow is returned when a serialized row is not 12 non-negative
// integers followed by a string.
var ErrInvalidRow = errors.New("invalid corpus row")

// Row is one labeled observation. Serialized it is a flat JSON array
// [c_A, c_A#, ..., c_G#, label]; Source and Shift are not serialized.
type Row struct {
	Counts chroma.Vector
	Label  string
	Source string // file the row was derived from
	Shift  int    // 0 for an original observation
}

// Augmented reports whether the row is a transposed copy
func (r Row) Augmented() bool {
	return r.Shift != 0
}

// Values returns the row as a flat slice, counts then label
func (r Row) Values() []any {
	out := make([]any, 0, RowWidth)
	for _, c := range r.Counts {
		out = append(out, c)
	}
	return append(out, r.Label)
}

// MarshalJSON encodes the row as a 13-element array
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Values())
}

// UnmarshalJSON decodes a 13-element array, rejecting anything else with ErrInvalidRow
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var values []any
	if err := dec.Decode(&values); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRow, err)
	}
	if len(values) != RowWidth {
		return fmt.Errorf("%w: want %d elements, got %d", ErrInvalidRow, RowWidth, len(values))
	}

	var counts chroma.Vector
	for i := 0; i < chroma.NumPitchClasses; i++ {
		num, ok := values[i].(json.Number)
		if !ok {
			return fmt.Errorf("%w: element %d is not a number", ErrInvalidRow, i)
		}
		n, err := num.Int64()
		if err != nil || n < 0 {
			return fmt.Errorf("%w: element %d is not a non-negative integer: %s", ErrInvalidRow, i, num)
		}
		counts[i] = int(n)
	}

	label, ok := values[chroma.NumPitchClasses].(string)
	if !ok {
		return fmt.Errorf("%w: last element is not a string", ErrInvalidRow)
	}

	*r = Row{Counts: counts, Label: label}
	return nil
}
