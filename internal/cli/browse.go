// internal/cli/browse.go
package compbench

import (
	"github.com/mwiater/compbench/internal/report"
	"github.com/mwiater/compbench/internal/tui"
	"github.com/spf13/cobra"
)

// startBrowser is swapped out in tests.
var startBrowser = tui.Run

// browseCmd opens the interactive results browser.
var browseCmd = &cobra.Command{
	Use:   "browse <results.json>",
	Short: "Browse results interactively in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		model, err := loadResults(cmd.Context(), cfg, args[0])
		if err != nil {
			return err
		}
		return startBrowser(cmd.Context(), model, report.NewPalette(cfg.Colors))
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
