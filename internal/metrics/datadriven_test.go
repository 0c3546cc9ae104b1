// internal/metrics/datadriven_test.go
package metrics

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestAnalyzeDataDriven runs the documents in testdata/analyze through the
// full pipeline. Supported commands:
//
//	analyze [policy=<warn|error>] [strict-levels] [lenient] [workers=<n>]
//	levels  [same arguments]
func TestAnalyzeDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/analyze", func(t *testing.T, d *datadriven.TestData) string {
		opts := DefaultOptions()
		var policy string
		if d.MaybeScanArgs(t, "policy", &policy) {
			p, err := ParseMismatchPolicy(policy)
			if err != nil {
				d.Fatalf(t, "%v", err)
			}
			opts.MismatchPolicy = p
		}
		opts.AllowFractionalLevels = !d.HasArg("strict-levels")
		opts.LenientDurations = d.HasArg("lenient")
		d.MaybeScanArgs(t, "workers", &opts.Workers)

		model, err := Analyze(context.Background(), []byte(d.Input), opts)
		if err != nil {
			return fmt.Sprintf("error: %v\n", err)
		}

		switch d.Cmd {
		case "analyze":
			return dumpModel(model)
		case "levels":
			var b strings.Builder
			for _, f := range model.Files {
				for _, s := range f.Algorithms {
					raws := make([]string, 0, s.Len())
					for _, k := range s.Levels() {
						raws = append(raws, k.Raw)
					}
					fmt.Fprintf(&b, "%s/%s: %s\n", f.Name, s.AlgorithmName, strings.Join(raws, " "))
				}
			}
			return b.String()
		default:
			d.Fatalf(t, "unknown command %q", d.Cmd)
			return ""
		}
	})
}

func fmtF(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func fmtExtremum(e Extremum) string {
	if e.NoPositiveSample || !e.Defined() {
		return "N/A"
	}
	winners := make([]string, 0, len(e.Winners))
	for _, w := range e.Winners {
		winners = append(winners, w.Algorithm+"@"+w.Level.Raw)
	}
	return fmtF(e.Value) + " " + strings.Join(winners, ",")
}

func fmtBest(b Best) string {
	if !b.Found {
		return "N/A"
	}
	s := fmtF(b.Value) + "@" + b.Level.Raw
	if b.Overall {
		s += "*"
	}
	return s
}

func dumpModel(m *Model) string {
	var b strings.Builder
	for _, f := range m.Files {
		fmt.Fprintf(&b, "file %s\n", f.Name)
		for _, s := range f.Algorithms {
			fmt.Fprintf(&b, "  %s original=%d\n", s.AlgorithmName, s.OriginalSize)
			for _, r := range s.Records {
				fmt.Fprintf(&b, "    level=%s ratio=%s pct=%s size=%d ctime=%s dtime=%s mem=%d eff=%.4f saved=%s\n",
					r.Level.Raw, fmtF(r.CompressionRatio), fmtF(r.CompressedPercentage), r.CompressedSize,
					r.CompressionTime, r.DecompressionTime, r.PeakMemoryKB, r.Efficiency, fmtF(r.PercentSaved))
			}
		}
		sum := f.Summary
		fmt.Fprintf(&b, "  best-ratio: %s\n", fmtExtremum(sum.BestRatio))
		fmt.Fprintf(&b, "  fastest-compression: %s\n", fmtExtremum(sum.FastestCompression))
		fmt.Fprintf(&b, "  fastest-decompression: %s\n", fmtExtremum(sum.FastestDecompression))
		fmt.Fprintf(&b, "  lowest-memory: %s\n", fmtExtremum(sum.LowestMemory))
		for _, a := range sum.Algorithms {
			fmt.Fprintf(&b, "  own %s: ratio=%s ctime=%s dtime=%s mem=%s\n", a.Algorithm,
				fmtBest(a.Ratio), fmtBest(a.CompressionTime), fmtBest(a.DecompressionTime), fmtBest(a.Memory))
		}
	}
	for _, w := range m.Warnings {
		fmt.Fprintf(&b, "warning %s %s/%s@%s: %s\n", w.Kind, w.File, w.Algorithm, w.Level, w.Message)
	}
	return b.String()
}
