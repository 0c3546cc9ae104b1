// internal/report/terminal.go
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/mwiater/compbench/internal/metrics"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Bold(true).Foreground(lipgloss.Color("#10B981"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#334155"))
)

var terminalHeaders = []string{
	"Algorithm",
	"Best Ratio",
	"Level",
	"Fastest Comp.",
	"Level",
	"Fastest Decomp.",
	"Level",
	"Lowest Memory",
	"Level",
}

// valueColumns maps header columns holding a value to the metric index used
// for highlighting.
var valueColumns = map[int]int{1: 0, 3: 1, 5: 2, 7: 3}

// WriteTerminalSummary prints, per file, the overall best values and a table
// of every algorithm's own bests. Values that are also the overall best are
// highlighted. Warnings follow in yellow.
func WriteTerminalSummary(w io.Writer, model *metrics.Model, palette Palette) error {
	var b strings.Builder
	for _, file := range model.Files {
		sum := file.Summary
		b.WriteString(titleStyle.Render("File: "+file.Name) + "\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("original size %d bytes", file.OriginalSize())) + "\n")
		for _, line := range OverallLines(sum) {
			b.WriteString("  " + line + "\n")
		}

		if len(sum.Algorithms) > 0 {
			b.WriteString(algorithmTable(sum, palette))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	warn := color.New(color.FgYellow)
	for _, wn := range model.Warnings {
		if _, err := warn.Fprintf(w, "warning: %s %s/%s level %s: %s\n", wn.Kind, wn.File, wn.Algorithm, wn.Level, wn.Message); err != nil {
			return err
		}
	}
	return nil
}

// OverallLines describes the cross-algorithm bests of a file summary, one
// metric per line.
func OverallLines(sum metrics.FileSummary) []string {
	return []string{
		"best ratio:            " + formatExtremum(sum.BestRatio, formatRatio),
		"fastest compression:   " + formatExtremum(sum.FastestCompression, formatSeconds),
		"fastest decompression: " + formatExtremum(sum.FastestDecompression, formatSeconds),
		"lowest memory:         " + formatExtremum(sum.LowestMemory, formatKB),
	}
}

func algorithmTable(sum metrics.FileSummary, palette Palette) string {
	rows := make([][]string, 0, len(sum.Algorithms))
	overall := make([][4]bool, 0, len(sum.Algorithms))
	for _, ab := range sum.Algorithms {
		rows = append(rows, []string{
			ab.Algorithm,
			formatBest(ab.Ratio, formatRatio), bestLevel(ab.Ratio),
			formatBest(ab.CompressionTime, formatSeconds), bestLevel(ab.CompressionTime),
			formatBest(ab.DecompressionTime, formatSeconds), bestLevel(ab.DecompressionTime),
			formatBest(ab.Memory, formatKB), bestLevel(ab.Memory),
		})
		overall = append(overall, [4]bool{
			ab.Ratio.Overall, ab.CompressionTime.Overall, ab.DecompressionTime.Overall, ab.Memory.Overall,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(terminalHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(rows) {
				return cellStyle
			}
			if col == 0 {
				return cellStyle.Foreground(lipgloss.Color(palette.Color(rows[row][0])))
			}
			if idx, ok := valueColumns[col]; ok && overall[row][idx] {
				return bestStyle
			}
			return cellStyle
		})
	return t.String()
}
