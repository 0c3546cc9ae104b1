// internal/metrics/decode_test.go
package metrics

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocumentKeepsOrder(t *testing.T) {
	doc, err := DecodeDocument([]byte(`[
		{"zeta.txt": {"lz4": {"9": {}, "1": {}}, "bz2": {"5": {}}}},
		{"alpha.bin": {}}
	]`))
	require.NoError(t, err)
	require.Len(t, doc, 2)
	require.Equal(t, "zeta.txt", doc[0].Name)
	require.Equal(t, "alpha.bin", doc[1].Name)
	require.Equal(t, "lz4", doc[0].Algorithms[0].Name)
	require.Equal(t, "bz2", doc[0].Algorithms[1].Name)
	require.Equal(t, "9", doc[0].Algorithms[0].Levels[0].ID)
	require.Equal(t, "1", doc[0].Algorithms[0].Levels[1].ID)
	require.Empty(t, doc[1].Algorithms)
}

func TestDecodeObjectDuplicateKey(t *testing.T) {
	obj, err := decodeObject([]byte(`{"x": 1, "y": 2, "x": 3}`))
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, obj.Keys())
	v, ok := obj.Get("x")
	require.True(t, ok)
	require.Equal(t, "3", string(v))
}

func TestDecodeDocumentShapeErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"not an array":       `{"a": {}}`,
		"two keys per entry": `[{"a": {}, "b": {}}]`,
		"empty entry":        `[{}]`,
		"scalar entry":       `[1]`,
		"algorithm scalar":   `[{"a": {"gz": 3}}]`,
		"level array":        `[{"a": {"gz": {"1": []}}}]`,
		"trailing data":      `[] []`,
		"truncated":          `[{"a": {}}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(doc))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrMalformedJSONShape), "got %v", err)
		})
	}
}

func TestValidateShape(t *testing.T) {
	require.NoError(t, ValidateShape([]byte(scenarioDocument)))
	require.NoError(t, ValidateShape([]byte(`[]`)))

	for name, doc := range map[string]string{
		"invalid json":       `[{`,
		"object root":        `{"a": {}}`,
		"two keys per entry": `[{"a": {}, "b": {}}]`,
		"level not object":   `[{"a": {"gz": {"1": 5}}}]`,
		"compression string": `[{"a": {"gz": {"1": {"compression": "x", "decompression": {}}}}}]`,
	} {
		t.Run(name, func(t *testing.T) {
			err := ValidateShape([]byte(doc))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrMalformedJSONShape), "got %v", err)
		})
	}
}
