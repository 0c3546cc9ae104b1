package appconfig

import (
	"fmt"
	"io"
	"sort"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &fallback
	}

	width, height := cfg.ChartSize()
	profile := cfg.Profile
	if profile == "" {
		profile = "(none)"
	}
	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = "(timestamped under results/analysis)"
	}
	fmt.Fprintf(out, "  Debug:                   %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:                %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Profile:                 %s\n", profile)
	fmt.Fprintf(out, "  Original Size Mismatch:  %s\n", cfg.OriginalSizeMismatch)
	fmt.Fprintf(out, "  Fractional Levels:       %v\n", cfg.AllowFractionalLevels)
	fmt.Fprintf(out, "  Lenient Durations:       %v\n", cfg.LenientDurations)
	fmt.Fprintf(out, "  Workers:                 %d\n", cfg.WorkerCount())
	fmt.Fprintf(out, "  Output Dir:              %s\n", outputDir)
	fmt.Fprintf(out, "  Chart Size:              %s x %s\n", width, height)
	if len(cfg.Colors) > 0 {
		fmt.Fprintln(out, "  Colors:")
		algs := make([]string, 0, len(cfg.Colors))
		for alg := range cfg.Colors {
			algs = append(algs, alg)
		}
		sort.Strings(algs)
		for _, alg := range algs {
			fmt.Fprintf(out, "    %-8s %s\n", alg, cfg.Colors[alg])
		}
	}
}
