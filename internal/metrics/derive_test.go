// internal/metrics/derive_test.go
package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEfficiency(t *testing.T) {
	require.InDelta(t, 4000.0, Efficiency(4.0, 0), 1e-9)
	require.InDelta(t, 2.5/2.001, Efficiency(2.5, 2), 1e-12)
	require.InDelta(t, 70.0, PercentSaved(30), 1e-12)
}

func TestDeriveUsesZeroForAbsentTime(t *testing.T) {
	s := &MetricSeries{Records: []LevelRecord{
		{CompressionRatio: 4, CompressedPercentage: 25, CompressionTime: Duration{}},
		{CompressionRatio: 2, CompressedPercentage: 50, CompressionTime: Seconds(1)},
	}}
	Derive(s)

	require.True(t, s.Derived())
	require.InDelta(t, 4000.0, s.Records[0].Efficiency, 1e-9)
	require.InDelta(t, 75.0, s.Records[0].PercentSaved, 1e-12)
	require.InDelta(t, 2/1.001, s.Records[1].Efficiency, 1e-12)
	require.InDelta(t, 50.0, s.Records[1].PercentSaved, 1e-12)
}
