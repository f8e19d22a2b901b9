package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadJSON parses a serialized corpus. Every element must be a valid row.
func ReadJSON(r io.Reader) ([]Row, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	rows := make([]Row, len(raw))
	for i, msg := range raw {
		if err := rows[i].UnmarshalJSON(msg); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return rows, nil
}

// LoadJSON reads a serialized corpus from path
func LoadJSON(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	return ReadJSON(f)
}
