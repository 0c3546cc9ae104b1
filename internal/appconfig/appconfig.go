// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mwiater/compbench/internal/metrics"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/compbench.json"
	// legacyConfigPath is the path checked when DefaultConfigPath does not exist.
	legacyConfigPath = "compbench.json"
	// defaultLogFile is used when the config does not name a log file.
	defaultLogFile = "compbench.log"
	// defaultOutputRoot is where timestamped analysis directories are created.
	defaultOutputRoot = "results/analysis"
	// outputStampLayout names the per-run output directory.
	outputStampLayout = "2006-01-02-15-04-05"
	// defaultChartWidth and defaultChartHeight size chart pages in pixels.
	defaultChartWidth  = 900
	defaultChartHeight = 500
)

// Config represents the top-level application configuration.
type Config struct {
	Debug                 bool              `json:"debug"`
	LogFile               string            `json:"logFile,omitempty"`
	Profile               string            `json:"profile,omitempty"`
	OriginalSizeMismatch  string            `json:"originalSizeMismatch,omitempty"`
	AllowFractionalLevels bool              `json:"allowFractionalLevels"`
	LenientDurations      bool              `json:"lenientDurations"`
	Workers               int               `json:"workers,omitempty"`
	OutputDir             string            `json:"outputDir,omitempty"`
	Colors                map[string]string `json:"colors,omitempty"`
	ChartWidth            int               `json:"chartWidth,omitempty"`
	ChartHeight           int               `json:"chartHeight,omitempty"`
	ConfigPath            string            `json:"-"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		OriginalSizeMismatch:  metrics.MismatchWarn.String(),
		AllowFractionalLevels: true,
		ChartWidth:            defaultChartWidth,
		ChartHeight:           defaultChartHeight,
	}
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// OutputDirectory returns the configured output directory or a timestamped
// directory under results/analysis.
func (c Config) OutputDirectory(now time.Time) string {
	if dir := strings.TrimSpace(c.OutputDir); dir != "" {
		return dir
	}
	return filepath.Join(defaultOutputRoot, now.Format(outputStampLayout))
}

// WorkerCount returns how many files are enriched concurrently. Zero means
// one per CPU.
func (c Config) WorkerCount() int {
	switch {
	case c.Workers < 0:
		return 1
	case c.Workers == 0:
		return runtime.GOMAXPROCS(0)
	default:
		return c.Workers
	}
}

// ChartSize returns the chart dimensions as CSS pixel strings.
func (c Config) ChartSize() (width, height string) {
	w, h := c.ChartWidth, c.ChartHeight
	if w <= 0 {
		w = defaultChartWidth
	}
	if h <= 0 {
		h = defaultChartHeight
	}
	return fmt.Sprintf("%dpx", w), fmt.Sprintf("%dpx", h)
}

// MetricsOptions translates the configuration into engine options. A named
// profile takes precedence over the individual normalization settings.
func (c Config) MetricsOptions() (metrics.Options, error) {
	if profile, ok := LookupProfile(c.Profile); ok {
		opts := profile.Options
		opts.Workers = c.WorkerCount()
		return opts, nil
	} else if strings.TrimSpace(c.Profile) != "" {
		return metrics.Options{}, errors.Newf("unknown profile %q (want one of %s)", c.Profile, strings.Join(ProfileNames(), ", "))
	}

	policy, err := metrics.ParseMismatchPolicy(c.OriginalSizeMismatch)
	if err != nil {
		return metrics.Options{}, err
	}
	return metrics.Options{
		MismatchPolicy:        policy,
		AllowFractionalLevels: c.AllowFractionalLevels,
		LenientDurations:      c.LenientDurations,
		Workers:               c.WorkerCount(),
	}, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if _, err := c.MetricsOptions(); err != nil {
		return err
	}
	for alg, color := range c.Colors {
		if strings.TrimSpace(alg) == "" {
			return errors.New("colors: algorithm name must not be empty")
		}
		if strings.TrimSpace(color) == "" {
			return errors.Newf("colors: no colour given for %q", alg)
		}
	}
	return nil
}

// Load reads the application configuration from the specified path, with fallback to a legacy path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		if err := config.Validate(); err != nil {
			return Config{}, errors.Wrapf(err, "invalid config file %q", path)
		}
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, config.Validate()
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, errors.Newf("no configuration file found (searched %q and %q)", DefaultConfigPath, legacyConfigPath)
			}
			return Config{}, errors.Wrapf(legacyErr, "could not read config file %q", legacyConfigPath)
		}
		return Config{}, errors.Newf("no configuration file found at %q", path)
	}

	return Config{}, errors.Wrapf(err, "could not read config file %q", path)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	config := Default()
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
