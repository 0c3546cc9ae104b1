// internal/report/report_test.go
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mwiater/compbench/internal/metrics"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `[
  {"fileA": {
    "zstd": {
      "1": {"compression": {"originalSize": 1000, "compressedSize": 600, "compressionRatio": 1.67,
                            "compressedPercentage": "60", "real": "0:01", "max": 500},
            "decompression": {"real": "0:00.1", "max": 100}},
      "3": {"compression": {"originalSize": 1000, "compressedSize": 400, "compressionRatio": 2.5,
                            "compressedPercentage": "40", "real": "0:02", "max": 600},
            "decompression": {"real": "0:00.2"}}
    },
    "brotli": {
      "5": {"compression": {"originalSize": 1000, "compressedSize": 500, "compressionRatio": 2,
                            "compressedPercentage": "50", "real": "0:00", "max": 700},
            "decompression": {"real": "0:00.3"}}
    }
  }},
  {"empty.bin": {}}
]`

func sampleModel(t *testing.T) *metrics.Model {
	t.Helper()
	model, err := metrics.Analyze(context.Background(), []byte(sampleDocument), metrics.DefaultOptions())
	require.NoError(t, err)
	return model
}

func TestPalette(t *testing.T) {
	p := NewPalette(nil)
	require.Equal(t, "#1f77b4", p.Color("bz2"))
	require.Equal(t, "#d62728", p.Color("ZSTD"))
	require.Equal(t, FallbackColor, p.Color("brotli"))

	p = NewPalette(map[string]string{"brotli": "#123456", "gz": "#000000"})
	require.Equal(t, "#123456", p.Color("brotli"))
	require.Equal(t, "#000000", p.Color("gz"))
	require.Equal(t, "#2ca02c", p.Color("lz4"))
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleModel(t)))
	out := buf.String()

	require.Contains(t, out, "## fileA (original size: 1000 bytes)")
	require.Contains(t, out, "Compression Memory (KB)")
	require.Contains(t, out, "Decompression Memory (KB)")
	require.Contains(t, out, "## empty.bin (original size: 0 bytes)")
	require.Contains(t, out, "_No results._")

	var zstdRows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "| zstd") {
			zstdRows = append(zstdRows, line)
		}
	}
	require.Len(t, zstdRows, 2)
	require.Contains(t, zstdRows[0], "1.67")
	require.Contains(t, zstdRows[0], "40.0%")
	require.Contains(t, zstdRows[0], "100")
	require.Contains(t, zstdRows[1], "2.50")
	require.Contains(t, zstdRows[1], NotAvailable)
}

func TestGenerateSummaryHTML(t *testing.T) {
	model := sampleModel(t)
	html, err := GenerateSummaryHTML(model, NewPalette(nil), time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Contains(t, html, "File: fileA")
	require.Contains(t, html, "Original size: 1000 bytes")
	require.Contains(t, html, `class="best">2.50</td>`)
	require.Contains(t, html, `class="best">1.000s</td>`)
	require.Contains(t, html, "60.0%")
	require.Contains(t, html, "Detailed Results by Compression Level")

	data := BuildSummary(model, NewPalette(nil), time.Now())
	require.Len(t, data.Files, 2)
	brotli := data.Files[0].Algorithms[1]
	require.Equal(t, "brotli", brotli.Algorithm)
	require.Equal(t, NotAvailable, brotli.CompressionTime.Text)
	require.Equal(t, NotAvailable, brotli.CompressionTimeLevel)
	require.False(t, brotli.Ratio.Best)
	require.Equal(t, NotAvailable, data.Files[1].FastestCompression)
}

func TestWriteSummaryHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "compression_summary.html")
	require.NoError(t, WriteSummaryHTML(path, sampleModel(t), NewPalette(nil), time.Now()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
}

func TestWriteAnalysisJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "analysis.json")
	model := sampleModel(t)
	require.NoError(t, WriteAnalysisJSON(path, NewAnalysis("results.json", model, time.Now())))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded struct {
		Source  string  `json:"source"`
		Epsilon float64 `json:"efficiency_epsilon"`
		Files   []struct {
			Name       string `json:"name"`
			Algorithms []struct {
				AlgorithmName string `json:"algorithm_name"`
				OriginalSize  int64  `json:"original_size"`
				Records       []struct {
					Efficiency      float64  `json:"efficiency"`
					CompressionTime *float64 `json:"compression_time_seconds"`
				} `json:"records"`
			} `json:"algorithms"`
			Summary struct {
				FastestCompression struct {
					Value float64 `json:"value"`
				} `json:"fastest_compression"`
			} `json:"summary"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "results.json", decoded.Source)
	require.Equal(t, metrics.Epsilon, decoded.Epsilon)
	require.Equal(t, "fileA", decoded.Files[0].Name)
	require.Equal(t, "zstd", decoded.Files[0].Algorithms[0].AlgorithmName)
	require.Equal(t, int64(1000), decoded.Files[0].Algorithms[0].OriginalSize)
	require.InDelta(t, 2.5/2.001, decoded.Files[0].Algorithms[0].Records[1].Efficiency, 1e-12)
	require.Equal(t, 1.0, decoded.Files[0].Summary.FastestCompression.Value)
}

func TestWriteCharts(t *testing.T) {
	dir := t.TempDir()
	o := DefaultChartOptions()
	written, err := WriteCharts(dir, sampleModel(t), o)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "fileA_metrics.html"),
		filepath.Join(dir, "fileA_algorithm_comparison.html"),
		filepath.Join(dir, "empty.bin_metrics.html"),
		filepath.Join(dir, "empty.bin_algorithm_comparison.html"),
	}, written)

	page, err := os.ReadFile(written[0])
	require.NoError(t, err)
	require.Contains(t, string(page), "Compression Ratio by Level")
	require.Contains(t, string(page), "#d62728")

	require.Equal(t, "my_file_txt.gz_metrics.html", ChartFileName("my file/txt.gz", "metrics"))
}

func TestWritePlots(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlots(&buf, sampleModel(t), PlotOptions{Height: 5}))
	out := buf.String()
	require.Contains(t, out, "== fileA ==")
	require.Contains(t, out, "zstd compression ratio by level [1 3]")
	require.Contains(t, out, "brotli efficiency by level [5]")
}

func TestWriteTerminalSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTerminalSummary(&buf, sampleModel(t), NewPalette(nil)))
	out := buf.String()
	require.Contains(t, out, "File: fileA")
	require.Contains(t, out, "best ratio:            2.50 (zstd 3)")
	require.Contains(t, out, "fastest compression:   1.000s (zstd 1)")
	require.Contains(t, out, "lowest memory:         500 KB (zstd 1)")
	require.Contains(t, out, "brotli")

	empty := strings.SplitN(out, "File: empty.bin", 2)
	require.Len(t, empty, 2)
	require.Contains(t, empty[1], "fastest compression:   N/A")
}
