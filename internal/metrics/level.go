// internal/metrics/level.go
package metrics

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// LevelKey is the orderable form of a compression level identifier.
type LevelKey struct {
	Raw      string  `json:"raw"`
	Value    float64 `json:"value"`
	Integral bool    `json:"integral"`
}

func (k LevelKey) String() string {
	if k.Integral {
		return strconv.FormatInt(int64(k.Value), 10)
	}
	return strconv.FormatFloat(k.Value, 'g', -1, 64)
}

// Less orders keys by numeric value only; equal values keep encounter order
// when used with a stable sort.
func (k LevelKey) Less(other LevelKey) bool {
	return k.Value < other.Value
}

// ParseLevel turns a level identifier into a LevelKey. Integers are tried
// first, then floats (only when allowFractional is set). Anything else is
// ErrInvalidLevelIdentifier; there is no zero fallback.
func ParseLevel(id string, allowFractional bool) (LevelKey, error) {
	trimmed := strings.TrimSpace(id)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return LevelKey{Raw: id, Value: float64(n), Integral: true}, nil
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return LevelKey{}, errors.Mark(
			errors.Newf("level %q is neither an integer nor a decimal number", id),
			ErrInvalidLevelIdentifier)
	}
	if !allowFractional {
		return LevelKey{}, errors.Mark(
			errors.Newf("level %q is fractional and fractional levels are disabled", id),
			ErrInvalidLevelIdentifier)
	}
	return LevelKey{Raw: id, Value: f, Integral: false}, nil
}
