// internal/cli/summary.go
package compbench

import (
	"context"
	"io"

	"github.com/mwiater/compbench/internal/appconfig"
	"github.com/mwiater/compbench/internal/report"
	"github.com/spf13/cobra"
)

type summaryOptions struct {
	plots      bool
	plotWidth  int
	plotHeight int
}

var summaryOpts summaryOptions

// summaryCmd prints the best values per file to the terminal.
var summaryCmd = &cobra.Command{
	Use:   "summary <results.json>",
	Short: "Print the best values per file, optionally with ASCII plots",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummary(cmd.Context(), cmd.OutOrStdout(), getConfig(), args[0], summaryOpts)
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryOpts.plots, "plots", false, "append ASCII plots of ratio, time and efficiency per algorithm")
	summaryCmd.Flags().IntVar(&summaryOpts.plotWidth, "plot-width", 60, "plot width in columns")
	summaryCmd.Flags().IntVar(&summaryOpts.plotHeight, "plot-height", 10, "plot height in rows")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(ctx context.Context, out io.Writer, cfg appconfig.Config, input string, opts summaryOptions) error {
	model, err := loadResults(ctx, cfg, input)
	if err != nil {
		return err
	}
	if err := report.WriteTerminalSummary(out, model, report.NewPalette(cfg.Colors)); err != nil {
		return err
	}
	if !opts.plots {
		return nil
	}
	return report.WritePlots(out, model, report.PlotOptions{Width: opts.plotWidth, Height: opts.plotHeight})
}
