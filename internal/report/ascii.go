// internal/report/ascii.go
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/mwiater/compbench/internal/metrics"
)

// PlotOptions sizes the terminal plots.
type PlotOptions struct {
	Width  int
	Height int
}

// asciiMetrics are the per-level series plotted for each algorithm.
var asciiMetrics = []struct {
	title string
	value levelValue
}{
	{"compression ratio", ratioValue},
	{"compression time (s)", compressionTimeValue},
	{"efficiency", efficiencyValue},
}

// PlotSeries renders one metric of s over its levels. Unmeasured samples
// are skipped; an empty string means nothing could be plotted.
func PlotSeries(s *metrics.MetricSeries, title string, value levelValue, o PlotOptions) string {
	var (
		values []float64
		levels []string
	)
	for _, rec := range s.Records {
		v, ok := value(rec)
		if !ok {
			continue
		}
		values = append(values, v)
		levels = append(levels, rec.Level.Raw)
	}
	if len(values) == 0 {
		return ""
	}

	height := o.Height
	if height <= 0 {
		height = 8
	}
	options := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("%s %s by level [%s]", s.AlgorithmName, title, strings.Join(levels, " "))),
	}
	if o.Width > 0 && len(values) > 1 {
		options = append(options, asciigraph.Width(o.Width))
	}
	return asciigraph.Plot(values, options...)
}

// WritePlots writes ASCII plots of ratio, compression time and efficiency
// for every series in model.
func WritePlots(w io.Writer, model *metrics.Model, o PlotOptions) error {
	var b strings.Builder
	for _, file := range model.Files {
		fmt.Fprintf(&b, "== %s ==\n\n", file.Name)
		for _, s := range file.Algorithms {
			for _, m := range asciiMetrics {
				plot := PlotSeries(s, m.title, m.value, o)
				if plot == "" {
					fmt.Fprintf(&b, "%s %s: %s\n\n", s.AlgorithmName, m.title, NotAvailable)
					continue
				}
				b.WriteString(plot)
				b.WriteString("\n\n")
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
