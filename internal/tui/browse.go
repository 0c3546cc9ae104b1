// internal/tui/browse.go
// Package tui provides an interactive terminal browser for analyzed
// benchmark results.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/mwiater/compbench/internal/metrics"
	"github.com/mwiater/compbench/internal/report"
)

// viewState represents the current screen of the browser.
type viewState int

const (
	// viewFiles lists every file in the analysis.
	viewFiles viewState = iota
	// viewDetail shows the per-level table of one file.
	viewDetail
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// item is a file entry in the file list.
type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// model is the Bubble Tea model for the results browser.
type model struct {
	analysis *metrics.Model
	palette  report.Palette

	state    viewState
	files    list.Model
	levels   table.Model
	selected *metrics.FileResult

	width  int
	height int
}

func fileItems(analysis *metrics.Model) []list.Item {
	items := make([]list.Item, 0, len(analysis.Files))
	for _, f := range analysis.Files {
		desc := "no results"
		if n := len(f.Algorithms); n > 0 {
			desc = fmt.Sprintf("%d algorithm(s), original size %d bytes", n, f.OriginalSize())
		}
		items = append(items, item{title: f.Name, desc: desc})
	}
	return items
}

func levelColumns(width int) []table.Column {
	cols := make([]table.Column, len(report.LevelColumns))
	for i, title := range report.LevelColumns {
		w := len(title)
		if i == 0 {
			w = 12
		}
		cols[i] = table.Column{Title: title, Width: w}
	}
	if width > 0 {
		// Shrink the wide memory and size headers first when the screen is narrow.
		total := 0
		for _, c := range cols {
			total += c.Width + 2
		}
		for i := len(cols) - 1; total > width && i > 0; i-- {
			if cols[i].Width > 10 {
				total -= cols[i].Width - 10
				cols[i].Width = 10
			}
		}
	}
	return cols
}

func initialModel(analysis *metrics.Model, palette report.Palette) *model {
	files := list.New(fileItems(analysis), list.NewDefaultDelegate(), 0, 0)
	files.Title = "Benchmark Files"

	levels := table.New(
		table.WithColumns(levelColumns(0)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	levels.SetStyles(styles)

	return &model{
		analysis: analysis,
		palette:  palette,
		state:    viewFiles,
		files:    files,
		levels:   levels,
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		filtering := m.state == viewFiles && m.files.FilterState() == list.Filtering
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !filtering {
				return m, tea.Quit
			}
		case "esc", "backspace":
			if m.state == viewDetail {
				m.state = viewFiles
				m.selected = nil
				return m, nil
			}
		case "enter":
			if m.state == viewFiles && !filtering {
				m.openSelected()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.files.SetSize(msg.Width-4, msg.Height-2)
		m.levels.SetColumns(levelColumns(msg.Width - 4))
		m.levels.SetWidth(msg.Width - 4)
		m.levels.SetHeight(max(msg.Height-12, 3))
		return m, nil
	}

	switch m.state {
	case viewFiles:
		m.files, cmd = m.files.Update(msg)
	case viewDetail:
		m.levels, cmd = m.levels.Update(msg)
	}
	return m, cmd
}

func (m *model) openSelected() {
	it, ok := m.files.SelectedItem().(item)
	if !ok {
		return
	}
	file, ok := m.analysis.File(it.title)
	if !ok {
		return
	}
	rows := report.LevelRows(file)
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row(r)
	}
	m.levels.SetRows(tableRows)
	m.levels.GotoTop()
	m.selected = file
	m.state = viewDetail
}

// View renders the current screen.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewFiles:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.files.View())
	case viewDetail:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.detailView())
	default:
		return "Unknown state"
	}
}

func (m *model) detailView() string {
	file := m.selected
	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("%s (original size: %d bytes)", file.Name, file.OriginalSize())))
	b.WriteString("\n\n")

	if len(file.Algorithms) == 0 {
		b.WriteString("No results.\n")
	} else {
		names := make([]string, 0, len(file.Algorithms))
		for _, s := range file.Algorithms {
			names = append(names, lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Color(s.AlgorithmName))).Render(s.AlgorithmName))
		}
		b.WriteString("algorithms: " + strings.Join(names, ", ") + "\n")
		for _, line := range report.OverallLines(file.Summary) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
		b.WriteString(m.levels.View())
		b.WriteString("\n")
	}

	for _, w := range m.analysis.Warnings {
		if w.File == file.Name {
			b.WriteString(warningStyle.Render(fmt.Sprintf("warning: %s %s level %s: %s", w.Kind, w.Algorithm, w.Level, w.Message)))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("esc: back  q: quit"))
	return b.String()
}

// Run starts the browser on analysis and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, analysis *metrics.Model, palette report.Palette) error {
	if analysis == nil {
		return errors.New("no analysis to browse")
	}
	p := tea.NewProgram(initialModel(analysis, palette), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "error running results browser")
	}
	return nil
}
