package tablature

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/RyanBlaney/sonido-tabs/algorithms/chroma"
)

type marker struct {
	prefix string
	str    chroma.GuitarString
}

// markers are tried in order; the first matching prefix wins.
// A bare "E|" is the high E string. The low E string is only reachable
// through its octave-qualified marker "E2|".
var markers = []marker{
	{"E2|", chroma.LowE},
	{"A2|", chroma.AString},
	{"D3|", chroma.DString},
	{"G3|", chroma.GString},
	{"B3|", chroma.BString},
	{"E4|", chroma.HighE},
	{"e|", chroma.HighE},
	{"E|", chroma.HighE},
	{"B|", chroma.BString},
	{"G|", chroma.GString},
	{"D|", chroma.DString},
	{"A|", chroma.AString},
}

// Line is a tablature line classified to a string, with its fret numbers in
// left-to-right order.
type Line struct {
	String    chroma.GuitarString
	Frets     []int
	Malformed []string // digit runs that did not parse as an int
}

// ClassifyLine returns the string a line belongs to and the text following
// its marker. ok is false for lines that are not tablature.
func ClassifyLine(line string) (str chroma.GuitarString, body string, ok bool) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	for _, m := range markers {
		if strings.HasPrefix(trimmed, m.prefix) {
			return m.str, trimmed[len(m.prefix):], true
		}
	}
	return 0, "", false
}

// ExtractFrets turns every non-digit rune into a separator and parses each
// remaining digit run as a fret number. Adjacent digits stay together, so
// "-12-" is a single fret 12. Runs that fail to parse are returned
// separately and do not stop the scan.
func ExtractFrets(body string) (frets []int, malformed []string) {
	spaced := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, body)

	for _, token := range strings.Fields(spaced) {
		fret, err := strconv.Atoi(token)
		if err != nil {
			malformed = append(malformed, token)
			continue
		}
		frets = append(frets, fret)
	}
	return frets, malformed
}

// ParseLine classifies a line and extracts its frets
func ParseLine(line string) (Line, bool) {
	str, body, ok := ClassifyLine(line)
	if !ok {
		return Line{}, false
	}
	frets, malformed := ExtractFrets(body)
	return Line{String: str, Frets: frets, Malformed: malformed}, true
}
