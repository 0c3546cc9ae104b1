// internal/report/html.go
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mwiater/compbench/internal/metrics"
)

// SummaryData is the view model behind the HTML summary page.
type SummaryData struct {
	Title       string
	GeneratedAt string
	Files       []FileView
	Warnings    []metrics.Warning
}

// FileView is one file's section of the summary page.
type FileView struct {
	Name                 string
	OriginalSize         int64
	BestRatio            string
	FastestCompression   string
	FastestDecompression string
	LowestMemory         string
	Algorithms           []AlgorithmRow
	Levels               []LevelRow
}

// Cell is a table value that may be highlighted as the overall best.
type Cell struct {
	Text string
	Best bool
}

// AlgorithmRow lists an algorithm's own best values and the levels that
// reach them.
type AlgorithmRow struct {
	Algorithm              string
	Color                  string
	Ratio                  Cell
	RatioLevel             string
	CompressionTime        Cell
	CompressionTimeLevel   string
	DecompressionTime      Cell
	DecompressionTimeLevel string
	Memory                 Cell
	MemoryLevel            string
}

// LevelRow is one line of the detailed per-level table.
type LevelRow struct {
	Algorithm           string
	Color               string
	Level               string
	Ratio               string
	CompressedSize      int64
	Saved               string
	CompressionTime     string
	DecompressionTime   string
	Memory              int64
	DecompressionMemory string
	Efficiency          string
}

// BuildSummary turns the model into the summary view model. No value is
// recomputed; every number comes from the model.
func BuildSummary(model *metrics.Model, palette Palette, generatedAt time.Time) SummaryData {
	data := SummaryData{
		Title:       "Compression Algorithm Comparison Summary",
		GeneratedAt: generatedAt.Format(time.RFC1123),
		Warnings:    model.Warnings,
	}

	for _, file := range model.Files {
		sum := file.Summary
		view := FileView{
			Name:                 file.Name,
			OriginalSize:         file.OriginalSize(),
			BestRatio:            formatExtremum(sum.BestRatio, formatRatio),
			FastestCompression:   formatExtremum(sum.FastestCompression, formatSeconds),
			FastestDecompression: formatExtremum(sum.FastestDecompression, formatSeconds),
			LowestMemory:         formatExtremum(sum.LowestMemory, formatKB),
		}

		for _, ab := range sum.Algorithms {
			view.Algorithms = append(view.Algorithms, AlgorithmRow{
				Algorithm:              ab.Algorithm,
				Color:                  palette.Color(ab.Algorithm),
				Ratio:                  Cell{Text: formatBest(ab.Ratio, formatRatio), Best: ab.Ratio.Overall},
				RatioLevel:             bestLevel(ab.Ratio),
				CompressionTime:        Cell{Text: formatBest(ab.CompressionTime, formatSeconds), Best: ab.CompressionTime.Overall},
				CompressionTimeLevel:   bestLevel(ab.CompressionTime),
				DecompressionTime:      Cell{Text: formatBest(ab.DecompressionTime, formatSeconds), Best: ab.DecompressionTime.Overall},
				DecompressionTimeLevel: bestLevel(ab.DecompressionTime),
				Memory:                 Cell{Text: formatBest(ab.Memory, formatKB), Best: ab.Memory.Overall},
				MemoryLevel:            bestLevel(ab.Memory),
			})
		}

		for _, s := range file.Algorithms {
			for _, rec := range s.Records {
				view.Levels = append(view.Levels, LevelRow{
					Algorithm:           s.AlgorithmName,
					Color:               palette.Color(s.AlgorithmName),
					Level:               rec.Level.Raw,
					Ratio:               formatRatio(rec.CompressionRatio),
					CompressedSize:      rec.CompressedSize,
					Saved:               formatPercent(rec.PercentSaved),
					CompressionTime:     formatDuration(rec.CompressionTime),
					DecompressionTime:   formatDuration(rec.DecompressionTime),
					Memory:              rec.PeakMemoryKB,
					DecompressionMemory: formatOptionalKB(rec.DecompressionPeakMemoryKB),
					Efficiency:          formatEfficiency(rec.Efficiency),
				})
			}
		}
		data.Files = append(data.Files, view)
	}
	return data
}

// GenerateSummaryHTML renders the standalone HTML summary page.
func GenerateSummaryHTML(model *metrics.Model, palette Palette, generatedAt time.Time) (string, error) {
	var buf bytes.Buffer
	if err := summaryTemplate.Execute(&buf, BuildSummary(model, palette, generatedAt)); err != nil {
		return "", errors.Wrap(err, "render summary template")
	}
	return buf.String(), nil
}

// WriteSummaryHTML renders the summary page to path.
func WriteSummaryHTML(path string, model *metrics.Model, palette Palette, generatedAt time.Time) error {
	html, err := GenerateSummaryHTML(model, palette, generatedAt)
	if err != nil {
		return errors.Wrap(err, "failed generating HTML summary")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "unable to create directory for %s", path)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return errors.Wrapf(err, "unable to write HTML summary %s", path)
	}
	return nil
}

var summaryTemplate = template.Must(template.New("summary").Funcs(template.FuncMap{
	"anchor": func(name string) string { return fmt.Sprintf("file-%x", name) },
}).Parse(summaryTemplateHTML))

const summaryTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <style>
    :root {
      --primary: #334155;
      --secondary: #64748B;
      --light: #F1F5F9;
      --background: #FFFFFF;
      --text: #0F172A;
      --success: #10B981;
      --border: #E2E8F0;
    }
    body {
      background-color: var(--light);
      color: var(--text);
    }
    .navbar-dark {
      background-color: var(--primary) !important;
    }
    .card {
      border: 1px solid var(--border);
      background-color: var(--background);
    }
    .table td, .table th { text-align: center; }
    .table td.best {
      color: var(--success);
      font-weight: 700;
    }
    .swatch {
      display: inline-block;
      width: 12px;
      height: 12px;
      border-radius: 2px;
      margin-right: 0.4rem;
    }
    .overall dt { color: var(--secondary); font-weight: 500; }
  </style>
</head>
<body>
  <nav class="navbar navbar-dark mb-4">
    <div class="container-fluid">
      <span class="navbar-brand">{{ .Title }}</span>
      <span class="text-light small">Generated {{ .GeneratedAt }}</span>
    </div>
  </nav>
  <main class="container-fluid">
    {{- if .Warnings }}
    <div class="alert alert-warning">
      <strong>Warnings</strong>
      <ul class="mb-0">
        {{- range .Warnings }}
        <li>{{ .Kind }}: {{ .File }}/{{ .Algorithm }}{{ if .Level }} level {{ .Level }}{{ end }}: {{ .Message }}</li>
        {{- end }}
      </ul>
    </div>
    {{- end }}
    {{- range .Files }}
    <section class="card mb-4" id="{{ anchor .Name }}">
      <div class="card-body">
        <h2 class="h4">File: {{ .Name }}</h2>
        <p class="text-muted">Original size: {{ .OriginalSize }} bytes</p>
        <dl class="row overall">
          <dt class="col-sm-3">Best compression ratio</dt><dd class="col-sm-9">{{ .BestRatio }}</dd>
          <dt class="col-sm-3">Fastest compression</dt><dd class="col-sm-9">{{ .FastestCompression }}</dd>
          <dt class="col-sm-3">Fastest decompression</dt><dd class="col-sm-9">{{ .FastestDecompression }}</dd>
          <dt class="col-sm-3">Lowest memory</dt><dd class="col-sm-9">{{ .LowestMemory }}</dd>
        </dl>
        <table class="table table-striped table-bordered">
          <thead>
            <tr>
              <th>Algorithm</th>
              <th>Best Compression Ratio</th>
              <th>Best Level for Ratio</th>
              <th>Fastest Compression</th>
              <th>Level for Fast Comp.</th>
              <th>Fastest Decompression</th>
              <th>Level for Fast Decomp.</th>
              <th>Lowest Memory</th>
              <th>Level for Low Memory</th>
            </tr>
          </thead>
          <tbody>
            {{- range .Algorithms }}
            <tr>
              <td><span class="swatch" style="background-color: {{ .Color }}"></span>{{ .Algorithm }}</td>
              <td{{ if .Ratio.Best }} class="best"{{ end }}>{{ .Ratio.Text }}</td>
              <td>{{ .RatioLevel }}</td>
              <td{{ if .CompressionTime.Best }} class="best"{{ end }}>{{ .CompressionTime.Text }}</td>
              <td>{{ .CompressionTimeLevel }}</td>
              <td{{ if .DecompressionTime.Best }} class="best"{{ end }}>{{ .DecompressionTime.Text }}</td>
              <td>{{ .DecompressionTimeLevel }}</td>
              <td{{ if .Memory.Best }} class="best"{{ end }}>{{ .Memory.Text }}</td>
              <td>{{ .MemoryLevel }}</td>
            </tr>
            {{- end }}
          </tbody>
        </table>
        <h3 class="h5">Detailed Results by Compression Level</h3>
        <table class="table table-sm table-striped table-bordered">
          <thead>
            <tr>
              <th>Algorithm</th>
              <th>Level</th>
              <th>Compression Ratio</th>
              <th>Compressed Size (bytes)</th>
              <th>Saved</th>
              <th>Compression Time (s)</th>
              <th>Decompression Time (s)</th>
              <th>Memory Usage (KB)</th>
              <th>Decompression Memory (KB)</th>
              <th>Efficiency</th>
            </tr>
          </thead>
          <tbody>
            {{- range .Levels }}
            <tr>
              <td><span class="swatch" style="background-color: {{ .Color }}"></span>{{ .Algorithm }}</td>
              <td>{{ .Level }}</td>
              <td>{{ .Ratio }}</td>
              <td>{{ .CompressedSize }}</td>
              <td>{{ .Saved }}</td>
              <td>{{ .CompressionTime }}</td>
              <td>{{ .DecompressionTime }}</td>
              <td>{{ .Memory }}</td>
              <td>{{ .DecompressionMemory }}</td>
              <td>{{ .Efficiency }}</td>
            </tr>
            {{- end }}
          </tbody>
        </table>
      </div>
    </section>
    {{- else }}
    <p class="text-muted">No benchmark results.</p>
    {{- end }}
  </main>
</body>
</html>
`
