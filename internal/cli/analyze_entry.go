// internal/cli/analyze_entry.go
package compbench

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mwiater/compbench/internal/appconfig"
	"github.com/mwiater/compbench/internal/logging"
	"github.com/mwiater/compbench/internal/report"
)

const (
	analysisFileName = "analysis.json"
	markdownFileName = "results.md"
	summaryFileName  = "summary.html"
	chartsDirName    = "charts"
)

// runAnalyze writes every report for input into the configured output
// directory and returns the paths written.
func runAnalyze(ctx context.Context, out io.Writer, cfg appconfig.Config, input string, now time.Time) ([]string, error) {
	model, err := loadResults(ctx, cfg, input)
	if err != nil {
		return nil, err
	}

	dir := cfg.OutputDirectory(now)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "unable to create output directory %s", dir)
	}

	var written []string

	analysisPath := filepath.Join(dir, analysisFileName)
	if err := report.WriteAnalysisJSON(analysisPath, report.NewAnalysis(input, model, now)); err != nil {
		return written, err
	}
	written = append(written, analysisPath)

	markdownPath := filepath.Join(dir, markdownFileName)
	if err := writeMarkdownFile(markdownPath, model); err != nil {
		return written, err
	}
	written = append(written, markdownPath)

	palette := report.NewPalette(cfg.Colors)
	summaryPath := filepath.Join(dir, summaryFileName)
	if err := report.WriteSummaryHTML(summaryPath, model, palette, now); err != nil {
		return written, err
	}
	written = append(written, summaryPath)

	chartPaths, err := report.WriteCharts(filepath.Join(dir, chartsDirName), model, chartOptions(cfg))
	written = append(written, chartPaths...)
	if err != nil {
		return written, err
	}

	logging.LogStage("REPORT", input, map[string]any{"dir": dir, "files": len(written)})
	for _, path := range written {
		fmt.Fprintf(out, "Written %s\n", path)
	}
	if n := len(model.Warnings); n > 0 {
		fmt.Fprintf(out, "%d warning(s) recorded; see %s\n", n, analysisPath)
	}
	return written, nil
}
