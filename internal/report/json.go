// internal/report/json.go
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mwiater/compbench/internal/metrics"
)

// Analysis is the document written by WriteAnalysisJSON: the full model with
// every file's summary, plus provenance.
type Analysis struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Source      string                `json:"source,omitempty"`
	Epsilon     float64               `json:"efficiency_epsilon"`
	Files       []*metrics.FileResult `json:"files"`
	Warnings    []metrics.Warning     `json:"warnings,omitempty"`
}

// NewAnalysis wraps model for export.
func NewAnalysis(source string, model *metrics.Model, generatedAt time.Time) Analysis {
	return Analysis{
		GeneratedAt: generatedAt.UTC(),
		Source:      source,
		Epsilon:     metrics.Epsilon,
		Files:       model.Files,
		Warnings:    model.Warnings,
	}
}

// WriteAnalysisJSON writes analysis to path, creating parent directories.
func WriteAnalysisJSON(path string, analysis Analysis) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "unable to create directory for %s", path)
		}
	}

	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to marshal analysis JSON")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "unable to write analysis JSON %s", path)
	}
	return nil
}
