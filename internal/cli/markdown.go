// internal/cli/markdown.go
package compbench

import (
	"github.com/spf13/cobra"
)

var markdownOutput string

// markdownCmd prints the per-level Markdown tables.
var markdownCmd = &cobra.Command{
	Use:   "markdown <results.json>",
	Short: "Render results as Markdown tables",
	Long:  `Render one Markdown table per file with a row for every algorithm and level. Use -o to write to a file; "-" or no value prints to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMarkdown(cmd.Context(), cmd.OutOrStdout(), getConfig(), args[0], markdownOutput)
	},
}

func init() {
	markdownCmd.Flags().StringVarP(&markdownOutput, "output", "o", "-", `destination file ("-" for stdout)`)
	rootCmd.AddCommand(markdownCmd)
}
