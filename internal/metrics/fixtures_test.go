// internal/metrics/fixtures_test.go
package metrics

import (
	"fmt"
	"strings"
)

// levelJSON renders one level record the way the benchmark harness emits it.
func levelJSON(original, compressed int, ratio, pct float64, ctime string, cmax int, dtime string) string {
	return fmt.Sprintf(`{"compression":{"originalSize":%d,"compressedSize":%d,"compressionRatio":%v,`+
		`"compressedPercentage":"%v","real":%q,"max":%d},"decompression":{"real":%q,"max":%d}}`,
		original, compressed, ratio, pct, ctime, cmax, dtime, cmax/2)
}

// documentJSON wraps name -> algorithm -> levels into a one-entry document.
// levels alternates id and record JSON.
func documentJSON(file string, algorithms ...string) string {
	return fmt.Sprintf(`[{%q:{%s}}]`, file, strings.Join(algorithms, ","))
}

func algorithmJSON(name string, levels ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(levels); i += 2 {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%q:%s", levels[i], levels[i+1])
	}
	return fmt.Sprintf("%q:{%s}", name, b.String())
}

// scenarioDocument is the two-level zstd run used across the engine tests.
const scenarioDocument = `[
  {"fileA": {"zstd": {
    "1": {"compression": {"originalSize": 1000, "compressedSize": 600, "compressionRatio": 1.67,
                          "compressedPercentage": "60", "real": "0:01", "max": 500},
          "decompression": {"real": "0:00.1", "max": 100}},
    "3": {"compression": {"originalSize": 1000, "compressedSize": 400, "compressionRatio": 2.5,
                          "compressedPercentage": "40", "real": "0:02", "max": 600},
          "decompression": {"real": "0:00.2", "max": 120}}
  }}}
]`
