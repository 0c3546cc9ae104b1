// internal/metrics/engine.go
package metrics

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Analyze runs the whole pipeline over a benchmark document: shape check,
// order-preserving decode, normalization, then derivation and best-value
// selection for every file.
func Analyze(ctx context.Context, raw []byte, opts Options) (*Model, error) {
	if err := ValidateShape(raw); err != nil {
		return nil, err
	}
	doc, err := DecodeDocument(raw)
	if err != nil {
		return nil, err
	}
	model, err := NewNormalizer(opts).Normalize(doc)
	if err != nil {
		return nil, err
	}
	if err := Enrich(ctx, model, opts.Workers); err != nil {
		return nil, err
	}
	return model, nil
}

// AnalyzeFile reads path and runs Analyze on its contents.
func AnalyzeFile(ctx context.Context, path string, opts Options) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read benchmark file %s", path)
	}
	model, err := Analyze(ctx, raw, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to analyze %s", path)
	}
	return model, nil
}

// Enrich derives per-level fields and computes each file's summary. Files are
// independent, so with workers > 1 each file runs in its own goroutine; a
// task only ever touches its own file.
func Enrich(ctx context.Context, model *Model, workers int) error {
	if workers < 2 {
		for _, file := range model.Files {
			if err := ctx.Err(); err != nil {
				return err
			}
			enrichFile(file)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, file := range model.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			enrichFile(file)
			return nil
		})
	}
	return g.Wait()
}

func enrichFile(file *FileResult) {
	for _, s := range file.Algorithms {
		if !s.finalized {
			s.finalize()
		}
		Derive(s)
	}
	file.Summary = SelectBest(file.Algorithms)
}
