package corpus

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-tabs/algorithms/chroma"
	"github.com/RyanBlaney/sonido-tabs/logging"
)

// Format selects the corpus serialization
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat parses a case-insensitive format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", name)
	}
}

// CSVHeader is the header row of CSV output
func CSVHeader() []string {
	return append(chroma.PitchClassNames(), "label")
}

// WriteJSON writes rows as a JSON array with one element per line:
//
//	[
//	[2,0,0,1,0,0,0,1,0,0,0,0,"Am"],
//	[...]
//	]
func WriteJSON(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("[\n"); err != nil {
		return err
	}
	for i, row := range rows {
		if i > 0 {
			if _, err := bw.WriteString(",\n"); err != nil {
				return err
			}
		}
		data, err := row.MarshalJSON()
		if err != nil {
			return fmt.Errorf("encode row %d: %w", i, err)
		}
		if _, err := bw.Write(data); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\n]"); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCSV writes a header followed by one record per row
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader()); err != nil {
		return err
	}

	record := make([]string, RowWidth)
	for _, row := range rows {
		for i, c := range row.Counts {
			record[i] = strconv.Itoa(c)
		}
		record[chroma.NumPitchClasses] = row.Label
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Serializer writes a corpus to a file
type Serializer struct {
	logger logging.Logger
}

// NewSerializer creates a serializer. A nil logger uses the global logger.
func NewSerializer(logger logging.Logger) *Serializer {
	return &Serializer{
		logger: logging.OrGlobal(logger).WithFields(logging.Fields{"component": "serializer"}),
	}
}

// Save writes rows to path in the given format. Failures are logged and
// returned; a partially written file may be left behind.
func (s *Serializer) Save(path string, rows []Row, format Format) (err error) {
	s.logger.Info("Saving results", logging.Fields{"file": path, "rows": len(rows), "format": string(format)})

	defer func() {
		if err != nil {
			s.logger.Error(err, "Failed to save corpus", logging.Fields{"file": path})
		}
	}()

	var write func(io.Writer, []Row) error
	switch format {
	case FormatJSON, "":
		write = WriteJSON
	case FormatCSV:
		write = WriteCSV
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := write(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
