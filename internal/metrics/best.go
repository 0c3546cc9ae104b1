// internal/metrics/best.go
package metrics

// Attainment names the (algorithm, level) pair at which a value was measured.
type Attainment struct {
	Algorithm string   `json:"algorithm"`
	Level     LevelKey `json:"level"`
}

// Extremum is the best value of one metric across every algorithm of a file.
// Winners lists every pair attaining Value, so cross-algorithm ties are
// visible. NoPositiveSample is set for the time metrics when no algorithm has
// a usable positive measurement; Value is then meaningless.
type Extremum struct {
	Value            float64      `json:"value"`
	Winners          []Attainment `json:"winners"`
	NoPositiveSample bool         `json:"no_positive_sample,omitempty"`
}

// Defined reports whether at least one pair attains the extremum.
func (e Extremum) Defined() bool { return len(e.Winners) > 0 }

// Tied reports whether more than one algorithm attains the extremum.
func (e Extremum) Tied() bool {
	if len(e.Winners) < 2 {
		return false
	}
	first := e.Winners[0].Algorithm
	for _, w := range e.Winners[1:] {
		if w.Algorithm != first {
			return true
		}
	}
	return false
}

// Best is one algorithm's own best value for a metric. Overall is set when
// the value also wins across algorithms.
type Best struct {
	Value            float64  `json:"value"`
	Level            LevelKey `json:"level"`
	Found            bool     `json:"found"`
	Overall          bool     `json:"overall"`
	NoPositiveSample bool     `json:"no_positive_sample,omitempty"`
}

// AlgorithmBest holds an algorithm's own best level per metric.
type AlgorithmBest struct {
	Algorithm         string `json:"algorithm"`
	Ratio             Best   `json:"ratio"`
	CompressionTime   Best   `json:"compression_time"`
	DecompressionTime Best   `json:"decompression_time"`
	Memory            Best   `json:"memory"`
}

// FileSummary aggregates the best values of every algorithm for one file.
type FileSummary struct {
	BestRatio            Extremum        `json:"best_ratio"`
	FastestCompression   Extremum        `json:"fastest_compression"`
	FastestDecompression Extremum        `json:"fastest_decompression"`
	LowestMemory         Extremum        `json:"lowest_memory"`
	Algorithms           []AlgorithmBest `json:"algorithms"`
}

// Algorithm returns the per-algorithm best entry.
func (f FileSummary) Algorithm(name string) (AlgorithmBest, bool) {
	for _, a := range f.Algorithms {
		if a.Algorithm == name {
			return a, true
		}
	}
	return AlgorithmBest{}, false
}

type direction int

const (
	maximize direction = iota
	minimize
)

func (d direction) better(a, b float64) bool {
	if d == maximize {
		return a > b
	}
	return a < b
}

// metric extracts one value from a record. ok=false skips the record.
type metric struct {
	dir      direction
	value    func(r *LevelRecord) (v float64, ok bool)
	positive bool
}

var (
	ratioMetric = metric{dir: maximize, value: func(r *LevelRecord) (float64, bool) {
		return r.CompressionRatio, true
	}}
	compressionTimeMetric = metric{dir: minimize, positive: true, value: func(r *LevelRecord) (float64, bool) {
		return r.CompressionTime.Seconds, r.CompressionTime.Present
	}}
	decompressionTimeMetric = metric{dir: minimize, positive: true, value: func(r *LevelRecord) (float64, bool) {
		return r.DecompressionTime.Seconds, r.DecompressionTime.Present
	}}
	memoryMetric = metric{dir: minimize, value: func(r *LevelRecord) (float64, bool) {
		return float64(r.PeakMemoryKB), true
	}}
)

// seriesExtreme returns the series' own extreme over every present sample.
func (m metric) seriesExtreme(s *MetricSeries) (float64, bool) {
	var best float64
	found := false
	for i := range s.Records {
		v, ok := m.value(&s.Records[i])
		if !ok {
			continue
		}
		if !found || m.dir.better(v, best) {
			best, found = v, true
		}
	}
	return best, found
}

// eligible reports whether a series takes part in the cross-algorithm
// comparison. For time metrics a series whose fastest sample is not strictly
// positive is dropped entirely: a zero there is a parsing artifact.
func (m metric) eligible(s *MetricSeries) (float64, bool) {
	v, ok := m.seriesExtreme(s)
	if !ok {
		return 0, false
	}
	if m.positive && v <= 0 {
		return 0, false
	}
	return v, true
}

// own finds an algorithm's own best level. Time metrics only consider
// strictly positive samples; ties resolve to the lowest level.
func (m metric) own(s *MetricSeries) Best {
	var b Best
	for i := range s.Records {
		rec := &s.Records[i]
		v, ok := m.value(rec)
		if !ok || (m.positive && v <= 0) {
			continue
		}
		if !b.Found || m.dir.better(v, b.Value) {
			b = Best{Value: v, Level: rec.Level, Found: true}
		}
	}
	b.NoPositiveSample = m.positive && !b.Found
	return b
}

func (m metric) across(series []*MetricSeries) Extremum {
	var ext Extremum
	found := false
	included := make([]*MetricSeries, 0, len(series))
	for _, s := range series {
		v, ok := m.eligible(s)
		if !ok {
			continue
		}
		included = append(included, s)
		if !found || m.dir.better(v, ext.Value) {
			ext.Value, found = v, true
		}
	}
	if !found {
		ext.NoPositiveSample = m.positive
		return ext
	}
	for _, s := range included {
		for i := range s.Records {
			rec := &s.Records[i]
			if v, ok := m.value(rec); ok && v == ext.Value {
				ext.Winners = append(ext.Winners, Attainment{Algorithm: s.AlgorithmName, Level: rec.Level})
			}
		}
	}
	return ext
}

func winnerIncludes(ext Extremum, algorithm string) bool {
	for _, w := range ext.Winners {
		if w.Algorithm == algorithm {
			return true
		}
	}
	return false
}

// SelectBest computes the FileSummary for all series of one file. The input
// series must be finalized; they are not modified.
func SelectBest(series []*MetricSeries) FileSummary {
	summary := FileSummary{
		BestRatio:            ratioMetric.across(series),
		FastestCompression:   compressionTimeMetric.across(series),
		FastestDecompression: decompressionTimeMetric.across(series),
		LowestMemory:         memoryMetric.across(series),
	}

	for _, s := range series {
		ab := AlgorithmBest{
			Algorithm:         s.AlgorithmName,
			Ratio:             ratioMetric.own(s),
			CompressionTime:   compressionTimeMetric.own(s),
			DecompressionTime: decompressionTimeMetric.own(s),
			Memory:            memoryMetric.own(s),
		}
		ab.Ratio.Overall = ab.Ratio.Found && winnerIncludes(summary.BestRatio, s.AlgorithmName)
		ab.CompressionTime.Overall = ab.CompressionTime.Found && winnerIncludes(summary.FastestCompression, s.AlgorithmName)
		ab.DecompressionTime.Overall = ab.DecompressionTime.Found && winnerIncludes(summary.FastestDecompression, s.AlgorithmName)
		ab.Memory.Overall = ab.Memory.Found && winnerIncludes(summary.LowestMemory, s.AlgorithmName)
		summary.Algorithms = append(summary.Algorithms, ab)
	}
	return summary
}
