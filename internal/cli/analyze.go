// internal/cli/analyze.go
package compbench

import (
	"time"

	"github.com/spf13/cobra"
)

// analyzeCmd turns a benchmark results file into every report at once.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <results.json>",
	Short: "Generate analysis JSON, Markdown, HTML summary and charts",
	Long: `Read a compression benchmark results file, normalize and enrich it, and
write the analysis JSON, the Markdown tables, the HTML summary and the
per-file chart pages into the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runAnalyze(cmd.Context(), cmd.OutOrStdout(), getConfig(), args[0], time.Now())
		return err
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
