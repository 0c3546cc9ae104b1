// internal/metrics/errors.go
package metrics

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Error classes reported by the normalization pipeline. Match them with
// errors.Is; the concrete *FieldError carries the coordinates.
var (
	ErrMalformedJSONShape     = errors.New("malformed benchmark JSON shape")
	ErrMissingField           = errors.New("missing required field")
	ErrInvalidField           = errors.New("invalid field value")
	ErrInvalidLevelIdentifier = errors.New("invalid level identifier")
	ErrMalformedDuration      = errors.New("malformed duration")
	ErrOriginalSizeMismatch   = errors.New("original size mismatch")
)

// FieldError locates a normalization failure inside the input document.
// Empty coordinates are omitted from the message.
type FieldError struct {
	Kind      error
	File      string
	Algorithm string
	Level     string
	Field     string
	Detail    string
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if coords := e.Coordinates(); coords != "" {
		b.WriteString(" at ")
		b.WriteString(coords)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap exposes the error class so errors.Is matches it.
func (e *FieldError) Unwrap() error { return e.Kind }

// Coordinates renders file/algorithm/level/field as a compact path.
func (e *FieldError) Coordinates() string {
	var parts []string
	if e.File != "" {
		parts = append(parts, fmt.Sprintf("file=%q", e.File))
	}
	if e.Algorithm != "" {
		parts = append(parts, fmt.Sprintf("algorithm=%q", e.Algorithm))
	}
	if e.Level != "" {
		parts = append(parts, fmt.Sprintf("level=%q", e.Level))
	}
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%q", e.Field))
	}
	return strings.Join(parts, " ")
}

// at is the coordinate cursor the normalizer carries while walking the document.
type at struct {
	file      string
	algorithm string
	level     string
}

func (c at) fail(kind error, field, format string, args ...any) error {
	return errors.WithStack(&FieldError{
		Kind:      kind,
		File:      c.file,
		Algorithm: c.algorithm,
		Level:     c.level,
		Field:     field,
		Detail:    fmt.Sprintf(format, args...),
	})
}

// shapeError reports a structural problem that is not tied to a field.
func shapeError(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrMalformedJSONShape)
}
