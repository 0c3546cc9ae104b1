// internal/report/format.go
package report

import (
	"fmt"
	"strings"

	"github.com/mwiater/compbench/internal/metrics"
)

// NotAvailable is printed for unmeasured values and for metrics without a
// usable positive sample.
const NotAvailable = "N/A"

func formatRatio(v float64) string { return fmt.Sprintf("%.2f", v) }

func formatPercent(v float64) string { return fmt.Sprintf("%.1f%%", v) }

func formatEfficiency(v float64) string { return fmt.Sprintf("%.2f", v) }

func formatSeconds(v float64) string { return fmt.Sprintf("%.3fs", v) }

func formatKB(v float64) string { return fmt.Sprintf("%.0f KB", v) }

func formatDuration(d metrics.Duration) string {
	if !d.Present {
		return NotAvailable
	}
	return fmt.Sprintf("%.3f", d.Seconds)
}

func formatOptionalKB(v *int64) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%d", *v)
}

func formatBest(b metrics.Best, format func(float64) string) string {
	if !b.Found {
		return NotAvailable
	}
	return format(b.Value)
}

func bestLevel(b metrics.Best) string {
	if !b.Found {
		return NotAvailable
	}
	return b.Level.Raw
}

// formatExtremum renders "value (alg level, ...)"; ties list every winner.
func formatExtremum(e metrics.Extremum, format func(float64) string) string {
	if e.NoPositiveSample || !e.Defined() {
		return NotAvailable
	}
	winners := make([]string, 0, len(e.Winners))
	for _, w := range e.Winners {
		winners = append(winners, w.Algorithm+" "+w.Level.Raw)
	}
	return fmt.Sprintf("%s (%s)", format(e.Value), strings.Join(winners, ", "))
}
