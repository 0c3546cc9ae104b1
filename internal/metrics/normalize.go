// internal/metrics/normalize.go
package metrics

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// MismatchPolicy decides what happens when a level reports an originalSize
// that differs from the one already recorded for its series.
type MismatchPolicy int

const (
	// MismatchWarn keeps the first value and records a Warning.
	MismatchWarn MismatchPolicy = iota
	// MismatchError aborts normalization with ErrOriginalSizeMismatch.
	MismatchError
)

func (p MismatchPolicy) String() string {
	if p == MismatchError {
		return "error"
	}
	return "warn"
}

// ParseMismatchPolicy accepts "warn" (or "warning") and "error" (or "fail").
func ParseMismatchPolicy(s string) (MismatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning":
		return MismatchWarn, nil
	case "error", "fail":
		return MismatchError, nil
	default:
		return MismatchWarn, errors.Newf("unknown original size mismatch policy %q (want warn or error)", s)
	}
}

// Logger receives recoverable issues found while normalizing. *log.Logger
// satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// Options tune normalization and the analysis pipeline.
type Options struct {
	MismatchPolicy        MismatchPolicy
	AllowFractionalLevels bool
	LenientDurations      bool
	// Workers bounds the per-file derive/select fan-out in Analyze. Values
	// below 2 keep everything on the calling goroutine.
	Workers int
	Logger  Logger
}

// DefaultOptions accepts fractional levels and downgrades original size
// mismatches to warnings.
func DefaultOptions() Options {
	return Options{
		MismatchPolicy:        MismatchWarn,
		AllowFractionalLevels: true,
	}
}

// Normalizer turns a RawDocument into finalized MetricSeries.
type Normalizer struct {
	opts Options
}

// NewNormalizer returns a Normalizer using opts.
func NewNormalizer(opts Options) *Normalizer {
	return &Normalizer{opts: opts}
}

// Normalize builds one MetricSeries per (file, algorithm). Each file's series
// are sorted by level once that file's entry has been consumed. Any
// structural error aborts the whole document; no partial model is returned.
func (n *Normalizer) Normalize(doc RawDocument) (*Model, error) {
	model := &Model{}
	seen := make(map[string]struct{}, len(doc))

	for _, raw := range doc {
		if _, dup := seen[raw.Name]; dup {
			return nil, shapeError("file %q appears in more than one top-level entry", raw.Name)
		}
		seen[raw.Name] = struct{}{}

		file := &FileResult{Name: raw.Name}
		for _, alg := range raw.Algorithms {
			series := &MetricSeries{FileName: raw.Name, AlgorithmName: alg.Name}
			for _, level := range alg.Levels {
				cur := at{file: raw.Name, algorithm: alg.Name, level: level.ID}
				if err := n.addLevel(model, series, cur, level); err != nil {
					return nil, err
				}
			}
			file.Algorithms = append(file.Algorithms, series)
		}

		for _, series := range file.Algorithms {
			series.finalize()
		}
		model.Files = append(model.Files, file)
	}
	return model, nil
}

func (n *Normalizer) addLevel(model *Model, series *MetricSeries, cur at, level RawLevel) error {
	key, err := ParseLevel(level.ID, n.opts.AllowFractionalLevels)
	if err != nil {
		return cur.fail(ErrInvalidLevelIdentifier, "", "%s", errors.UnwrapAll(err).Error())
	}

	comp, err := subObject(cur, level.Record, "compression")
	if err != nil {
		return err
	}
	decomp, err := subObject(cur, level.Record, "decompression")
	if err != nil {
		return err
	}

	originalSize, err := readInt(cur, comp, "compression", "originalSize")
	if err != nil {
		return err
	}
	if err := n.recordOriginalSize(model, series, cur, originalSize); err != nil {
		return err
	}

	rec := LevelRecord{Level: key}
	if rec.CompressedSize, err = readInt(cur, comp, "compression", "compressedSize"); err != nil {
		return err
	}
	if rec.CompressionRatio, err = readFloat(cur, comp, "compression", "compressionRatio", false); err != nil {
		return err
	}
	if rec.CompressedPercentage, err = readFloat(cur, comp, "compression", "compressedPercentage", true); err != nil {
		return err
	}
	if rec.CompressionTime, err = n.readDuration(model, cur, comp, "compression", "real"); err != nil {
		return err
	}
	if rec.PeakMemoryKB, err = readInt(cur, comp, "compression", "max"); err != nil {
		return err
	}
	if rec.DecompressionTime, err = n.readDuration(model, cur, decomp, "decompression", "real"); err != nil {
		return err
	}
	if rec.DecompressionPeakMemoryKB, err = readOptionalInt(cur, decomp, "decompression", "max"); err != nil {
		return err
	}

	series.Records = append(series.Records, rec)
	return nil
}

func (n *Normalizer) recordOriginalSize(model *Model, series *MetricSeries, cur at, size int64) error {
	if !series.sizeSet {
		series.OriginalSize = size
		series.sizeSet = true
		return nil
	}
	if size == series.OriginalSize {
		return nil
	}

	msg := fmt.Sprintf("originalSize %d differs from %d recorded for the first level", size, series.OriginalSize)
	if n.opts.MismatchPolicy == MismatchError {
		return cur.fail(ErrOriginalSizeMismatch, "compression.originalSize", "%s", msg)
	}
	n.warn(model, Warning{
		Kind:      "OriginalSizeMismatch",
		File:      cur.file,
		Algorithm: cur.algorithm,
		Level:     cur.level,
		Message:   fmt.Sprintf("%s; keeping %d", msg, series.OriginalSize),
	})
	return nil
}

func (n *Normalizer) readDuration(model *Model, cur at, obj *Object, section, key string) (Duration, error) {
	field := section + "." + key
	raw, ok := obj.Get(key)
	if !ok {
		return Duration{}, cur.fail(ErrMissingField, field, "field is absent")
	}
	v, err := decodeScalar(raw)
	if err != nil {
		return Duration{}, cur.fail(ErrInvalidField, field, "%v", err)
	}
	if v == nil {
		return Duration{}, nil
	}
	s, ok := v.(string)
	if !ok {
		return Duration{}, cur.fail(ErrInvalidField, field, "expected a duration string, found %s", string(raw))
	}

	d, err := ParseDuration(s)
	if err == nil {
		return d, nil
	}
	if !n.opts.LenientDurations {
		return Duration{}, cur.fail(ErrMalformedDuration, field, "%s", errors.UnwrapAll(err).Error())
	}
	n.warn(model, Warning{
		Kind:      "MalformedDuration",
		File:      cur.file,
		Algorithm: cur.algorithm,
		Level:     cur.level,
		Message:   fmt.Sprintf("%s %q treated as unmeasured", field, s),
	})
	return Duration{}, nil
}

func (n *Normalizer) warn(model *Model, w Warning) {
	model.Warnings = append(model.Warnings, w)
	if n.opts.Logger != nil {
		n.opts.Logger.Printf("[NORMALIZE] %s file=%q algorithm=%q level=%q: %s",
			w.Kind, w.File, w.Algorithm, w.Level, w.Message)
	}
}

// finalize sorts the records by level. Equal levels keep encounter order.
func (s *MetricSeries) finalize() {
	slices.SortStableFunc(s.Records, func(a, b LevelRecord) int {
		return cmp.Compare(a.Level.Value, b.Level.Value)
	})
	s.finalized = true
}

func subObject(cur at, rec *Object, key string) (*Object, error) {
	raw, ok := rec.Get(key)
	if !ok {
		return nil, cur.fail(ErrMissingField, key, "field is absent")
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, cur.fail(ErrInvalidField, key, "expected an object, found %s", string(raw))
	}
	return obj, nil
}

func readNumber(cur at, obj *Object, section, key string, allowString bool) (json.Number, error) {
	field := section + "." + key
	raw, ok := obj.Get(key)
	if !ok {
		return "", cur.fail(ErrMissingField, field, "field is absent")
	}
	v, err := decodeScalar(raw)
	if err != nil {
		return "", cur.fail(ErrInvalidField, field, "%v", err)
	}
	switch t := v.(type) {
	case nil:
		return "", cur.fail(ErrMissingField, field, "field is null")
	case json.Number:
		return t, nil
	case string:
		if allowString {
			return json.Number(strings.TrimSpace(t)), nil
		}
	}
	return "", cur.fail(ErrInvalidField, field, "expected a number, found %s", string(raw))
}

func readFloat(cur at, obj *Object, section, key string, allowString bool) (float64, error) {
	num, err := readNumber(cur, obj, section, key, allowString)
	if err != nil {
		return 0, err
	}
	f, err := num.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, cur.fail(ErrInvalidField, section+"."+key, "%q is not a finite number", num.String())
	}
	return f, nil
}

func readInt(cur at, obj *Object, section, key string) (int64, error) {
	num, err := readNumber(cur, obj, section, key, false)
	if err != nil {
		return 0, err
	}
	if i, err := num.Int64(); err == nil {
		return i, nil
	}
	// Tolerate integral floats such as 1000.0.
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
		return 0, cur.fail(ErrInvalidField, section+"."+key, "%q is not an integer", num.String())
	}
	return int64(f), nil
}

func readOptionalInt(cur at, obj *Object, section, key string) (*int64, error) {
	raw, ok := obj.Get(key)
	if !ok {
		return nil, nil
	}
	if v, err := decodeScalar(raw); err == nil && v == nil {
		return nil, nil
	}
	i, err := readInt(cur, obj, section, key)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func decodeScalar(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
