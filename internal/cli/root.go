// internal/cli/root.go
package compbench

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/mwiater/compbench/internal/appconfig"
	"github.com/mwiater/compbench/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:           "compbench",
	Short:         "compbench: normalize and summarize compression benchmark results",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		for _, name := range []string{"debug", "allowFractionalLevels", "lenientDurations"} {
			if flag := cmd.Flags().Lookup(name); flag != nil && !flag.Changed {
				_ = cmd.Flags().Set(name, strconv.FormatBool(viper.GetBool(name)))
			}
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults).
		cfg := appconfig.Default()
		if err := viper.Unmarshal(&cfg); err != nil {
			return errors.Wrap(err, "unmarshal config")
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "invalid configuration")
		}
		currentConfig = &cfg

		// 4) Logs go to the log file only, unless debugging, so command output
		//    stays clean.
		initLog := logging.InitFileOnly
		if cfg.Debug {
			initLog = logging.Init
		}
		if err := initLog(cfg.LogFilePath()); err != nil {
			return errors.Wrapf(err, "unable to open log file %s", cfg.LogFilePath())
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Close()
	},
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		_ = logging.Close()
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := appconfig.Default()
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/compbench.json)")

	// Persistent flags available to all commands
	flags.Bool("debug", false, "enable debug logging")
	flags.String("logFile", "", "path of the log file (default compbench.log)")
	flags.String("profile", "", "normalization profile: default, strict or lenient")
	flags.String("originalSizeMismatch", defaults.OriginalSizeMismatch, "on differing originalSize within a series: warn or error")
	flags.Bool("allowFractionalLevels", defaults.AllowFractionalLevels, "accept decimal compression levels such as 1.5")
	flags.Bool("lenientDurations", false, "treat malformed durations as unmeasured instead of failing")
	flags.Int("workers", 0, "files enriched concurrently (0 = one per CPU)")
	flags.String("outputDir", "", "directory for generated reports (default results/analysis/<timestamp>)")

	// Bind flags to Viper keys (flags override config)
	for _, name := range []string{
		"debug", "logFile", "profile", "originalSizeMismatch",
		"allowFractionalLevels", "lenientDurations", "workers", "outputDir",
	} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	defaults := appconfig.Default()
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("originalSizeMismatch", defaults.OriginalSizeMismatch)
	viper.SetDefault("allowFractionalLevels", defaults.AllowFractionalLevels)
	viper.SetDefault("lenientDurations", defaults.LenientDurations)
	viper.SetDefault("chartWidth", defaults.ChartWidth)
	viper.SetDefault("chartHeight", defaults.ChartHeight)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		return errors.Wrap(err, "failed to load config")
	}
	return nil
}

// getConfig returns the merged configuration, falling back to defaults when
// a command runs outside the root pre-run.
func getConfig() appconfig.Config {
	if currentConfig == nil {
		return appconfig.Default()
	}
	return *currentConfig
}

// SetVersionInfo sets the string printed by --version.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
