// internal/cli/show_config_entry.go
package compbench

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
	"github.com/mwiater/compbench/internal/appconfig"
	"github.com/spf13/viper"
)

func runShowConfig(out io.Writer) {
	appconfig.ShowConfig(out, viper.ConfigFileUsed(), currentConfig, appconfig.Default())

	if currentConfig != nil && currentConfig.Debug {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Merged configuration:")
		_, _ = pp.Fprintln(out, *currentConfig)
	}
}
