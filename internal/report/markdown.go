// internal/report/markdown.go
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mwiater/compbench/internal/metrics"
	"github.com/olekukonko/tablewriter"
)

// LevelColumns are the column titles of the per-level detail table.
var LevelColumns = []string{
	"Algorithm",
	"Level",
	"Ratio",
	"Saved",
	"Compressed Size (bytes)",
	"Compression Time (s)",
	"Decompression Time (s)",
	"Compression Memory (KB)",
	"Decompression Memory (KB)",
	"Efficiency",
}

// WriteMarkdown writes one Markdown section per file: a heading carrying the
// original size and a table with one row per (algorithm, level).
func WriteMarkdown(w io.Writer, model *metrics.Model) error {
	var buf bytes.Buffer
	buf.WriteString("# Compression Benchmark Results\n")

	for _, file := range model.Files {
		fmt.Fprintf(&buf, "\n## %s (original size: %d bytes)\n\n", file.Name, file.OriginalSize())
		if len(file.Algorithms) == 0 {
			buf.WriteString("_No results._\n")
			continue
		}

		table := tablewriter.NewWriter(&buf)
		table.SetHeader(LevelColumns)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")
		table.AppendBulk(LevelRows(file))
		table.Render()
	}

	if len(model.Warnings) > 0 {
		buf.WriteString("\n## Warnings\n\n")
		for _, warn := range model.Warnings {
			fmt.Fprintf(&buf, "- %s: %s/%s level %s: %s\n", warn.Kind, warn.File, warn.Algorithm, warn.Level, warn.Message)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// LevelRows formats one row per (algorithm, level) of file, matching
// LevelColumns.
func LevelRows(file *metrics.FileResult) [][]string {
	var rows [][]string
	for _, s := range file.Algorithms {
		for _, rec := range s.Records {
			rows = append(rows, []string{
				s.AlgorithmName,
				rec.Level.Raw,
				formatRatio(rec.CompressionRatio),
				formatPercent(rec.PercentSaved),
				fmt.Sprintf("%d", rec.CompressedSize),
				formatDuration(rec.CompressionTime),
				formatDuration(rec.DecompressionTime),
				fmt.Sprintf("%d", rec.PeakMemoryKB),
				formatOptionalKB(rec.DecompressionPeakMemoryKB),
				formatEfficiency(rec.Efficiency),
			})
		}
	}
	return rows
}
