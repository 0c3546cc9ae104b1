// internal/metrics/level_test.go
package metrics

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	key, err := ParseLevel("3", false)
	require.NoError(t, err)
	require.Equal(t, LevelKey{Raw: "3", Value: 3, Integral: true}, key)
	require.Equal(t, "3", key.String())

	key, err = ParseLevel("01", false)
	require.NoError(t, err)
	require.Equal(t, 1.0, key.Value)
	require.Equal(t, "01", key.Raw)
	require.Equal(t, "1", key.String())

	key, err = ParseLevel("-5", false)
	require.NoError(t, err)
	require.Equal(t, -5.0, key.Value)

	key, err = ParseLevel("1.5", true)
	require.NoError(t, err)
	require.False(t, key.Integral)
	require.Equal(t, "1.5", key.String())
	require.True(t, key.Less(LevelKey{Value: 2}))
}

func TestParseLevelRejects(t *testing.T) {
	for _, tc := range []struct {
		id         string
		fractional bool
	}{
		{"fast", true},
		{"", true},
		{"Inf", true},
		{"NaN", true},
		{"1.5", false},
	} {
		_, err := ParseLevel(tc.id, tc.fractional)
		require.Error(t, err, "level %q", tc.id)
		require.True(t, errors.Is(err, ErrInvalidLevelIdentifier), "level %q: %v", tc.id, err)
	}
}
