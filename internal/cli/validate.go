// internal/cli/validate.go
package compbench

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mwiater/compbench/internal/appconfig"
	"github.com/spf13/cobra"
)

// validateCmd checks a results file without writing any report.
var validateCmd = &cobra.Command{
	Use:   "validate <results.json>",
	Short: "Check a results file and list recoverable warnings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.Context(), cmd.OutOrStdout(), getConfig(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(ctx context.Context, out io.Writer, cfg appconfig.Config, input string) error {
	model, err := loadResults(ctx, cfg, input)
	if err != nil {
		return err
	}

	series, levels := 0, 0
	for _, f := range model.Files {
		series += len(f.Algorithms)
		for _, s := range f.Algorithms {
			levels += s.Len()
		}
	}
	color.New(color.FgGreen).Fprintf(out, "OK: %s\n", input)
	fmt.Fprintf(out, "  %d file(s), %d series, %d level record(s), %d warning(s)\n",
		len(model.Files), series, levels, len(model.Warnings))
	for _, w := range model.Warnings {
		fmt.Fprintf(out, "  - %s %s/%s level %s: %s\n", w.Kind, w.File, w.Algorithm, w.Level, w.Message)
	}
	return nil
}
