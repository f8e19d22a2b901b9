package corpus_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-tabs/algorithms/chroma"
	"github.com/RyanBlaney/sonido-tabs/corpus"
	"github.com/RyanBlaney/sonido-tabs/logging"
)

var sampleRows = []corpus.Row{
	{Counts: chroma.Vector{2, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0}, Label: "Am"},
	{Counts: chroma.Vector{0, 0, 0, 2, 0, 0, 1, 0, 0, 0, 1, 0}, Label: "Cm", Shift: 3},
}

func TestWriteJSON_OneElementPerLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, corpus.WriteJSON(&buf, sampleRows))

	want := "[\n" +
		`[2,0,0,1,0,0,0,1,0,0,0,0,"Am"]` + ",\n" +
		`[0,0,0,2,0,0,1,0,0,0,1,0,"Cm"]` +
		"\n]"
	assert.Equal(t, want, buf.String())

	var parsed [][]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed, 2)
	for _, row := range parsed {
		require.Len(t, row, corpus.RowWidth)
		for _, v := range row[:12] {
			assert.IsType(t, float64(0), v)
		}
		assert.IsType(t, "", row[12])
	}
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, corpus.WriteJSON(&buf, nil))
	assert.Equal(t, "[\n\n]", buf.String())

	rows, err := corpus.ReadJSON(&buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWriteJSON_EscapesLabel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, corpus.WriteJSON(&buf, []corpus.Row{{Label: `C "live"`}}))

	rows, err := corpus.ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, `C "live"`, rows[0].Label)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, corpus.WriteCSV(&buf, sampleRows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "A,A#,B,C,C#,D,D#,E,F,F#,G,G#,label", lines[0])
	assert.Equal(t, "2,0,0,1,0,0,0,1,0,0,0,0,Am", lines[1])
	assert.Equal(t, "0,0,0,2,0,0,1,0,0,0,1,0,Cm", lines[2])
}

func TestReadJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, corpus.WriteJSON(&buf, sampleRows))

	rows, err := corpus.ReadJSON(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, sampleRows[0].Counts, rows[0].Counts)
	assert.Equal(t, "Cm", rows[1].Label)
}

func TestReadJSON_RejectsBadRows(t *testing.T) {
	cases := map[string]string{
		"too short":    `[[1,2,3,"Am"]]`,
		"negative":     `[[-1,0,0,0,0,0,0,0,0,0,0,0,"Am"]]`,
		"fraction":     `[[1.5,0,0,0,0,0,0,0,0,0,0,0,"Am"]]`,
		"label number": `[[0,0,0,0,0,0,0,0,0,0,0,0,7]]`,
		"count string": `[["1",0,0,0,0,0,0,0,0,0,0,0,"Am"]]`,
		"not an array": `[{"label":"Am"}]`,
	}
	for name, doc := range cases {
		_, err := corpus.ReadJSON(strings.NewReader(doc))
		assert.ErrorIs(t, err, corpus.ErrInvalidRow, name)
	}

	_, err := corpus.ReadJSON(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestValidateJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, corpus.WriteJSON(&buf, sampleRows))

	violations, err := corpus.ValidateJSON(&buf)
	require.NoError(t, err)
	assert.Empty(t, violations)

	violations, err = corpus.ValidateJSON(strings.NewReader(`[[1,2,3,"Am"], [0,0,0,0,0,0,0,0,0,0,0,-4,"G"]]`))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(violations), 2)

	_, err = corpus.ValidateJSON(strings.NewReader(`not json`))
	assert.Error(t, err)

	assert.True(t, json.Valid(corpus.Schema()))
}

func TestSerializer_SaveFormats(t *testing.T) {
	dir := t.TempDir()
	s := corpus.NewSerializer(logging.NewRecorder())

	jsonPath := filepath.Join(dir, "out.json")
	require.NoError(t, s.Save(jsonPath, sampleRows, corpus.FormatJSON))
	rows, err := corpus.LoadJSON(jsonPath)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	csvPath := filepath.Join(dir, "out.csv")
	require.NoError(t, s.Save(csvPath, sampleRows, corpus.FormatCSV))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "A,A#,"))
}

func TestSerializer_UnwritableDestination(t *testing.T) {
	rec := logging.NewRecorder()
	s := corpus.NewSerializer(rec)

	err := s.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "out.json"), sampleRows, corpus.FormatJSON)
	assert.ErrorIs(t, err, os.ErrNotExist)

	errs := rec.AtLevel(logging.ErrorLevel)
	require.Len(t, errs, 1)
	assert.Equal(t, "serializer", errs[0].Fields["component"])
}

type failAfter struct {
	n int
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, errors.New("device full")
	}
	f.n--
	return len(p), nil
}

func TestWriteJSON_PropagatesWriteError(t *testing.T) {
	err := corpus.WriteJSON(&failAfter{}, sampleRows)
	assert.ErrorContains(t, err, "device full")

	err = corpus.WriteCSV(&failAfter{}, sampleRows)
	assert.ErrorContains(t, err, "device full")
}

func TestParseFormat(t *testing.T) {
	f, err := corpus.ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, corpus.FormatCSV, f)

	_, err = corpus.ParseFormat("parquet")
	assert.Error(t, err)
}
