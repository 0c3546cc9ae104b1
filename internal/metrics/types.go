// internal/metrics/types.go
package metrics

// LevelRecord holds one compression level's measurements for a series.
type LevelRecord struct {
	Level                     LevelKey `json:"level"`
	CompressionRatio          float64  `json:"compression_ratio"`
	CompressedPercentage      float64  `json:"compressed_percentage"`
	CompressedSize            int64    `json:"compressed_size"`
	CompressionTime           Duration `json:"compression_time_seconds"`
	DecompressionTime         Duration `json:"decompression_time_seconds"`
	PeakMemoryKB              int64    `json:"peak_memory_kb"`
	DecompressionPeakMemoryKB *int64   `json:"decompression_peak_memory_kb,omitempty"`

	// Derived by Derive.
	Efficiency   float64 `json:"efficiency"`
	PercentSaved float64 `json:"percent_saved"`
}

// MetricSeries is the ordered set of measurements for one (file, algorithm)
// pair. It is built by the Normalizer, enriched by Derive and read-only after.
type MetricSeries struct {
	FileName      string        `json:"file_name"`
	AlgorithmName string        `json:"algorithm_name"`
	OriginalSize  int64         `json:"original_size"`
	Records       []LevelRecord `json:"records"`

	sizeSet   bool
	finalized bool
	derived   bool
}

// Len returns the number of level records.
func (s *MetricSeries) Len() int { return len(s.Records) }

// Levels returns the level keys in series order.
func (s *MetricSeries) Levels() []LevelKey {
	out := make([]LevelKey, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Level
	}
	return out
}

// Finalized reports whether the series has been sorted.
func (s *MetricSeries) Finalized() bool { return s.finalized }

// Derived reports whether Derive has populated the derived fields.
func (s *MetricSeries) Derived() bool { return s.derived }

// FileResult groups every algorithm's series for one input file.
type FileResult struct {
	Name       string          `json:"name"`
	Algorithms []*MetricSeries `json:"algorithms"`
	Summary    FileSummary     `json:"summary"`
}

// OriginalSize returns the original size reported by the first algorithm, the
// value shown in per-file headings.
func (f *FileResult) OriginalSize() int64 {
	if len(f.Algorithms) == 0 {
		return 0
	}
	return f.Algorithms[0].OriginalSize
}

// Series looks up an algorithm's series within the file.
func (f *FileResult) Series(algorithm string) (*MetricSeries, bool) {
	for _, s := range f.Algorithms {
		if s.AlgorithmName == algorithm {
			return s, true
		}
	}
	return nil, false
}

// Warning is a recoverable data-integrity issue surfaced next to the model.
type Warning struct {
	Kind      string `json:"kind"`
	File      string `json:"file"`
	Algorithm string `json:"algorithm"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message"`
}

// Model is the normalized, enriched result handed to renderers. Files and
// algorithms keep input order.
type Model struct {
	Files    []*FileResult `json:"files"`
	Warnings []Warning     `json:"warnings,omitempty"`
}

// File looks up a file by name.
func (m *Model) File(name string) (*FileResult, bool) {
	for _, f := range m.Files {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Series looks up the series for (file, algorithm).
func (m *Model) Series(file, algorithm string) (*MetricSeries, bool) {
	f, ok := m.File(file)
	if !ok {
		return nil, false
	}
	return f.Series(algorithm)
}

// SeriesByFile returns file -> algorithm -> series.
func (m *Model) SeriesByFile() map[string]map[string]*MetricSeries {
	out := make(map[string]map[string]*MetricSeries, len(m.Files))
	for _, f := range m.Files {
		algs := make(map[string]*MetricSeries, len(f.Algorithms))
		for _, s := range f.Algorithms {
			algs[s.AlgorithmName] = s
		}
		out[f.Name] = algs
	}
	return out
}

// Summaries returns file -> summary.
func (m *Model) Summaries() map[string]FileSummary {
	out := make(map[string]FileSummary, len(m.Files))
	for _, f := range m.Files {
		out[f.Name] = f.Summary
	}
	return out
}
