// internal/metrics/schema.go
package metrics

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/xeipuuv/gojsonschema"
)

// documentSchema pins down the nesting of a benchmark document: an array of
// single-key objects, file -> algorithm -> level -> record, where a record's
// compression and decompression members are objects. Leaf fields are checked
// by the normalizer so failures carry level coordinates.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "compression benchmark results",
  "type": "array",
  "items": {
    "type": "object",
    "minProperties": 1,
    "maxProperties": 1,
    "additionalProperties": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": {
          "type": "object",
          "properties": {
            "compression": { "type": "object" },
            "decompression": { "type": "object" }
          }
        }
      }
    }
  }
}`

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
})

// ValidateShape checks raw against the benchmark document schema. Every
// violation is listed in the error detail.
func ValidateShape(raw []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return errors.Wrap(err, "compile benchmark document schema")
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return shapeError("document is not valid JSON: %v", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	err = shapeError("document does not match the benchmark results layout (%d violation(s))", len(violations))
	return errors.WithDetail(err, strings.Join(violations, "\n"))
}
