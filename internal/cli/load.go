// internal/cli/load.go
package compbench

import (
	"context"

	"github.com/mwiater/compbench/internal/appconfig"
	"github.com/mwiater/compbench/internal/logging"
	"github.com/mwiater/compbench/internal/metrics"
	"github.com/mwiater/compbench/internal/report"
)

// loadResults analyzes the benchmark file at input with the options derived
// from cfg. Recoverable issues are logged as warnings.
func loadResults(ctx context.Context, cfg appconfig.Config, input string) (*metrics.Model, error) {
	opts, err := cfg.MetricsOptions()
	if err != nil {
		return nil, err
	}
	opts.Logger = logging.EngineLogger{}

	logging.LogStage("LOAD", input, map[string]any{
		"mismatch":   opts.MismatchPolicy.String(),
		"fractional": opts.AllowFractionalLevels,
		"lenient":    opts.LenientDurations,
		"workers":    opts.Workers,
	})
	model, err := metrics.AnalyzeFile(ctx, input, opts)
	if err != nil {
		return nil, err
	}
	logging.LogStage("ANALYZED", input, map[string]any{
		"files":    len(model.Files),
		"warnings": len(model.Warnings),
	})
	return model, nil
}

func chartOptions(cfg appconfig.Config) report.ChartOptions {
	width, height := cfg.ChartSize()
	return report.ChartOptions{Width: width, Height: height, Palette: report.NewPalette(cfg.Colors)}
}
