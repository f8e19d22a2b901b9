package corpus

import (
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed corpus.schema.json
var schemaData []byte

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaData))
})

// Schema returns the embedded JSON schema of a serialized corpus
func Schema() []byte {
	out := make([]byte, len(schemaData))
	copy(out, schemaData)
	return out
}

// ValidateJSON checks a serialized corpus against the embedded schema.
// It returns one description per violation; an empty slice means valid.
// The error is non-nil only when the document cannot be read or is not JSON.
func ValidateJSON(r io.Reader) ([]string, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("compile corpus schema: %w", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("validate corpus: %w", err)
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return violations, nil
}
