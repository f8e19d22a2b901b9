package tablature

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RyanBlaney/sonido-tabs/algorithms/chroma"
	"github.com/RyanBlaney/sonido-tabs/logging"
)

// FileResult is the outcome of parsing one tablature file
type FileResult struct {
	Histogram  *chroma.Histogram
	TabLines   int      // lines classified to a string
	Notes      int      // frets counted into the histogram
	OutOfRange int      // frets dropped for being outside 0..24
	Malformed  []string // fret tokens that failed to parse
}

// Parser reads tablature files into pitch-class histograms
type Parser struct {
	logger logging.Logger
}

// NewParser creates a parser. A nil logger uses the global logger.
func NewParser(logger logging.Logger) *Parser {
	return &Parser{
		logger: logging.OrGlobal(logger).WithFields(logging.Fields{
			"component": "tab_parser",
		}),
	}
}

// ParseFile opens path and parses it. The file is closed before returning.
func (p *Parser) ParseFile(path string) (*FileResult, error) {
	p.logger.Info("Processing file", logging.Fields{"file": path})

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tab file: %w", err)
	}
	defer f.Close()

	return p.ParseReader(f, path)
}

// ParseReader parses tablature from r. source only labels log entries.
// Malformed fret tokens are logged as warnings and skipped. Lines may be
// of any length.
func (p *Parser) ParseReader(r io.Reader, source string) (*FileResult, error) {
	counter := NewNoteCounter()
	result := &FileResult{}

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read tab file %s: %w", source, err)
		}
		if text == "" && err == io.EOF {
			break
		}
		lineNo++

		line, ok := ParseLine(strings.TrimRight(text, "\r\n"))
		if ok {
			result.TabLines++
			for _, token := range line.Malformed {
				p.logger.Warn("Error parsing fret number", logging.Fields{
					"file":  source,
					"line":  lineNo,
					"token": token,
				})
			}
			result.Malformed = append(result.Malformed, line.Malformed...)
			counter.AddLine(line)
		}

		if err == io.EOF {
			break
		}
	}

	result.Histogram = counter.Histogram()
	result.Notes = counter.Notes()
	result.OutOfRange = counter.OutOfRange()

	p.logger.Debug("Parsed tab file", logging.Fields{
		"file":         source,
		"tab_lines":    result.TabLines,
		"notes":        result.Notes,
		"out_of_range": result.OutOfRange,
	})

	return result, nil
}
