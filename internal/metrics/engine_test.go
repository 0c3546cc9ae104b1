// internal/metrics/engine_test.go
package metrics

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeScenario(t *testing.T) {
	model, err := Analyze(context.Background(), []byte(scenarioDocument), DefaultOptions())
	require.NoError(t, err)

	s, ok := model.Series("fileA", "zstd")
	require.True(t, ok)
	require.True(t, s.Derived())
	require.Equal(t, int64(1000), s.OriginalSize)
	require.InDelta(t, 1.67/1.001, s.Records[0].Efficiency, 1e-12)
	require.InDelta(t, 2.5/2.001, s.Records[1].Efficiency, 1e-12)
	require.InDelta(t, 1.2494, s.Records[1].Efficiency, 1e-4)
	require.InDelta(t, 60.0, s.Records[1].PercentSaved, 1e-12)

	summary := model.Summaries()["fileA"]
	require.Equal(t, 2.5, summary.BestRatio.Value)
	require.Equal(t, "3", summary.BestRatio.Winners[0].Level.Raw)
	require.Equal(t, 1.0, summary.FastestCompression.Value)
	require.Equal(t, 0.1, summary.FastestDecompression.Value)
	require.Equal(t, 500.0, summary.LowestMemory.Value)

	file, ok := model.File("fileA")
	require.True(t, ok)
	require.Equal(t, int64(1000), file.OriginalSize())
	require.Contains(t, model.SeriesByFile()["fileA"], "zstd")
}

func TestAnalyzeRejectsShape(t *testing.T) {
	_, err := Analyze(context.Background(), []byte(`{"fileA": {}}`), DefaultOptions())
	require.True(t, errors.Is(err, ErrMalformedJSONShape), "got %v", err)
}

func TestAnalyzeParallelMatchesSequential(t *testing.T) {
	var entries []string
	for i := 0; i < 12; i++ {
		doc := documentJSON(fmt.Sprintf("file%02d", i),
			algorithmJSON("gz",
				"1", levelJSON(1000+i, 600, 1.6, 60, "0:01", 100+i, "0:00.5"),
				"9", levelJSON(1000+i, 400, 2.5, 40, "0:03", 90+i, "0:00.4")),
			algorithmJSON("lz4",
				"1", levelJSON(1000+i, 700, 1.4, 70, "0:00.2", 50, "0:00.1")))
		entries = append(entries, strings.TrimSuffix(strings.TrimPrefix(doc, "["), "]"))
	}
	raw := []byte("[" + strings.Join(entries, ",") + "]")

	seq, err := Analyze(context.Background(), raw, DefaultOptions())
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Workers = 4
	par, err := Analyze(context.Background(), raw, opts)
	require.NoError(t, err)
	require.Equal(t, seq, par)
}

func TestEnrichHonoursCancellation(t *testing.T) {
	raw, err := DecodeDocument([]byte(scenarioDocument))
	require.NoError(t, err)
	model, err := NewNormalizer(DefaultOptions()).Normalize(raw)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, Enrich(ctx, model, 1), context.Canceled)
}

func TestAnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte(scenarioDocument), 0o644))

	model, err := AnalyzeFile(context.Background(), path, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, model.Files, 1)

	_, err = AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"), DefaultOptions())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unable to read benchmark file")
}
