// internal/cli/markdown_entry.go
package compbench

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/mwiater/compbench/internal/appconfig"
	"github.com/mwiater/compbench/internal/metrics"
	"github.com/mwiater/compbench/internal/report"
)

func runMarkdown(ctx context.Context, out io.Writer, cfg appconfig.Config, input, dest string) error {
	model, err := loadResults(ctx, cfg, input)
	if err != nil {
		return err
	}
	if dest == "" || dest == "-" {
		return report.WriteMarkdown(out, model)
	}
	if err := writeMarkdownFile(dest, model); err != nil {
		return err
	}
	fmt.Fprintf(out, "Markdown written to %s\n", dest)
	return nil
}

func writeMarkdownFile(path string, model *metrics.Model) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "unable to create directory for %s", path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create Markdown file %s", path)
	}
	if err := report.WriteMarkdown(f, model); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "unable to write Markdown file %s", path)
	}
	return f.Close()
}
