// internal/report/charts.go
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mwiater/compbench/internal/metrics"
)

// ChartOptions sizes and colours the generated chart pages.
type ChartOptions struct {
	Width   string
	Height  string
	Palette Palette
}

// DefaultChartOptions matches the go-echarts defaults with the historical
// palette.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: "900px", Height: "500px", Palette: NewPalette(nil)}
}

// levelValue extracts the plotted y value of a record; ok=false leaves a gap.
type levelValue func(rec metrics.LevelRecord) (float64, bool)

func ratioValue(rec metrics.LevelRecord) (float64, bool) { return rec.CompressionRatio, true }

func efficiencyValue(rec metrics.LevelRecord) (float64, bool) { return rec.Efficiency, true }

func sizeValue(rec metrics.LevelRecord) (float64, bool) { return float64(rec.CompressedSize), true }

func memoryValue(rec metrics.LevelRecord) (float64, bool) { return float64(rec.PeakMemoryKB), true }

func compressionTimeValue(rec metrics.LevelRecord) (float64, bool) {
	return rec.CompressionTime.Seconds, rec.CompressionTime.Present
}

func decompressionTimeValue(rec metrics.LevelRecord) (float64, bool) {
	return rec.DecompressionTime.Seconds, rec.DecompressionTime.Present
}

func (o ChartOptions) global(title, subtitle, xName, yName string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{Width: o.Width, Height: o.Height}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value"}),
	}
}

// levelChart plots one value per level for every algorithm of file.
func levelChart(file *metrics.FileResult, o ChartOptions, title, yName string, value levelValue) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(o.global(title, file.Name, "Compression Level", yName)...)
	for _, s := range file.Algorithms {
		data := make([]opts.LineData, 0, s.Len())
		for _, rec := range s.Records {
			v, ok := value(rec)
			if !ok {
				continue
			}
			data = append(data, opts.LineData{Name: rec.Level.Raw, Value: []any{rec.Level.Value, v}})
		}
		color := o.Palette.Color(s.AlgorithmName)
		line.AddSeries(s.AlgorithmName, data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: color}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		)
	}
	return line
}

// timeVsRatioChart places each level at (time, ratio) and labels the point
// with its level.
func timeVsRatioChart(file *metrics.FileResult, o ChartOptions) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(o.global("Compression Time vs Ratio", file.Name, "Compression Time (s)", "Compression Ratio")...)
	for _, s := range file.Algorithms {
		data := make([]opts.ScatterData, 0, s.Len())
		for _, rec := range s.Records {
			if !rec.CompressionTime.Present {
				continue
			}
			data = append(data, opts.ScatterData{
				Name:       rec.Level.Raw,
				Value:      []any{rec.CompressionTime.Seconds, rec.CompressionRatio},
				SymbolSize: 10,
			})
		}
		scatter.AddSeries(s.AlgorithmName, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: o.Palette.Color(s.AlgorithmName)}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top", Formatter: "{b}"}),
		)
	}
	return scatter
}

// FileCharts returns the per-file chart set in page order.
func FileCharts(file *metrics.FileResult, o ChartOptions) []components.Charter {
	return []components.Charter{
		levelChart(file, o, "Compression Ratio by Level", "Ratio (higher is better)", ratioValue),
		timeVsRatioChart(file, o),
		levelChart(file, o, "Compression Efficiency by Level", "Ratio / Time (higher is better)", efficiencyValue),
		levelChart(file, o, "Compressed Size by Level", "Size (bytes)", sizeValue),
		levelChart(file, o, "Peak Memory by Level", "Memory (KB, lower is better)", memoryValue),
	}
}

// ComparisonCharts returns the four-panel algorithm comparison for file.
func ComparisonCharts(file *metrics.FileResult, o ChartOptions) []components.Charter {
	return []components.Charter{
		levelChart(file, o, "Compression Ratio", "Ratio (higher is better)", ratioValue),
		levelChart(file, o, "Compression Time", "Time (s, lower is better)", compressionTimeValue),
		levelChart(file, o, "Decompression Time", "Time (s, lower is better)", decompressionTimeValue),
		levelChart(file, o, "Memory Usage", "Memory (KB, lower is better)", memoryValue),
	}
}

// RenderPage writes the given charts as one standalone HTML page.
func RenderPage(w io.Writer, chartSet []components.Charter) error {
	page := components.NewPage()
	page.AddCharts(chartSet...)
	return page.Render(w)
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ChartFileName turns a benchmarked file name into a safe page file name.
func ChartFileName(file, suffix string) string {
	return fmt.Sprintf("%s_%s.html", unsafeFileChars.ReplaceAllString(file, "_"), suffix)
}

// WriteCharts renders, for every file of model, a metrics page and an
// algorithm comparison page into dir. It returns the written paths.
func WriteCharts(dir string, model *metrics.Model, o ChartOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "unable to create chart directory %s", dir)
	}

	var written []string
	for _, file := range model.Files {
		pages := []struct {
			suffix string
			charts []components.Charter
		}{
			{"metrics", FileCharts(file, o)},
			{"algorithm_comparison", ComparisonCharts(file, o)},
		}
		for _, p := range pages {
			path := filepath.Join(dir, ChartFileName(file.Name, p.suffix))
			if err := writePage(path, p.charts); err != nil {
				return written, err
			}
			written = append(written, path)
		}
	}
	return written, nil
}

func writePage(path string, chartSet []components.Charter) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create chart page %s", path)
	}
	if err := RenderPage(f, chartSet); err != nil {
		f.Close()
		return errors.Wrapf(err, "unable to render chart page %s", path)
	}
	return f.Close()
}
