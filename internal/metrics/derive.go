// internal/metrics/derive.go
package metrics

// Epsilon is added to the compression time before dividing so that a
// measured time of exactly zero does not fault. Reports depend on this exact
// value.
const Epsilon = 0.001

// Efficiency returns ratio / (seconds + Epsilon).
func Efficiency(ratio, seconds float64) float64 {
	return ratio / (seconds + Epsilon)
}

// PercentSaved returns the complement of the retained-size percentage.
func PercentSaved(compressedPercentage float64) float64 {
	return 100 - compressedPercentage
}

// Derive fills Efficiency and PercentSaved on every record of s. Absent
// compression times count as zero here, matching historical reports.
func Derive(s *MetricSeries) {
	for i := range s.Records {
		rec := &s.Records[i]
		rec.Efficiency = Efficiency(rec.CompressionRatio, rec.CompressionTime.Legacy())
		rec.PercentSaved = PercentSaved(rec.CompressedPercentage)
	}
	s.derived = true
}
