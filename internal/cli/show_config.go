// internal/cli/show_config.go
package compbench

import (
	"github.com/spf13/cobra"
)

// showConfigCmd implements 'show config', which prints the merged settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		runShowConfig(cmd.OutOrStdout())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
