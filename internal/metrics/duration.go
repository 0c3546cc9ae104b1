// internal/metrics/duration.go
package metrics

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Duration is a measured wall-clock time in seconds. An unmeasured value
// (empty or null in the source) is kept distinct from a genuine zero.
type Duration struct {
	Seconds float64
	Present bool
}

// Seconds returns a present duration of s seconds.
func Seconds(s float64) Duration {
	return Duration{Seconds: s, Present: true}
}

// Legacy returns the value used by reports: absent durations become 0.0.
func (d Duration) Legacy() float64 {
	if !d.Present {
		return 0
	}
	return d.Seconds
}

// Positive reports whether d is a usable timing sample.
func (d Duration) Positive() bool {
	return d.Present && d.Seconds > 0
}

func (d Duration) String() string {
	if !d.Present {
		return "N/A"
	}
	return fmt.Sprintf("%.3fs", d.Seconds)
}

// MarshalJSON writes absent durations as null.
func (d Duration) MarshalJSON() ([]byte, error) {
	if !d.Present {
		return []byte("null"), nil
	}
	return json.Marshal(d.Seconds)
}

// UnmarshalJSON accepts null or a number of seconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Duration{}
		return nil
	}
	var s float64
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = Seconds(s)
	return nil
}

// ParseDuration converts "SS", "MM:SS" or "HH:MM:SS" (decimal seconds
// allowed) into seconds. Blank input yields an absent Duration and no error.
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Duration{}, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Duration{}, errors.Mark(
			errors.Newf("%q has %d colon-separated parts, want at most 3", s, len(parts)),
			ErrMalformedDuration)
	}

	// Summed left to right (hours first) so results match historical reports bit for bit.
	weights := []float64{3600, 60, 1}[3-len(parts):]
	total := 0.0
	for i, part := range parts {
		part = strings.TrimSpace(part)
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Duration{}, errors.Mark(
				errors.Newf("%q: component %q is not a non-negative number", s, part),
				ErrMalformedDuration)
		}
		total += v * weights[i]
	}
	return Seconds(total), nil
}
